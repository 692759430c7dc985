package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/internal/domain"
)

type portfolioUsecase struct {
	repo domain.PortfolioRepository
}

// NewPortfolioUsecase creates the read-only catalog usecase.
func NewPortfolioUsecase(repo domain.PortfolioRepository) domain.PortfolioUsecase {
	return &portfolioUsecase{repo: repo}
}

// ListProjects returns the gallery, optionally filtered by category.
// Category matching is case-insensitive to keep URLs forgiving.
func (uc *portfolioUsecase) ListProjects(ctx context.Context, category string) ([]domain.Project, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		return projects, nil
	}

	filtered := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		for _, c := range p.Category {
			if strings.EqualFold(c, category) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

func (uc *portfolioUsecase) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	return uc.repo.GetProject(ctx, id)
}

func (uc *portfolioUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return uc.repo.GetProfile(ctx)
}
