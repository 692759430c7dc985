package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/static"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Backend for a personal portfolio site: contact form pipeline and read-only catalog.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Mail Transport
	// Misconfiguration kills the process at boot rather than failing on
	// every contact submission.
	mailer, err := email.NewService(cfg)
	if err != nil {
		logger.Log.Error("Mail transport configuration invalid", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	portfolioRepo := static.NewPortfolioRepository()

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(mailer, cfg.MailTimeout)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
