package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/static"
	"go-portfolio-backend/internal/usecase"
)

// stubMailer lets each test choose the transport outcome.
type stubMailer struct {
	err   error
	calls int
}

func (m *stubMailer) Send(ctx context.Context, msg *domain.NotificationMessage) error {
	m.calls++
	return m.err
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Kind    string            `json:"kind"`
	Errors  map[string]string `json:"errors"`
}

func newTestRouter(mailer domain.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{FrontendURL: "http://localhost:3000"}
	return v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactUsecase(mailer, time.Second),
		PortfolioUC: usecase.NewPortfolioUsecase(static.NewPortfolioRepository()),
		Config:      cfg,
	})
}

func postContact(t *testing.T, router *gin.Engine, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(p)
		assert.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSubmitContactSuccess(t *testing.T) {
	mailer := &stubMailer{}
	router := newTestRouter(mailer)

	w, env := postContact(t, router, domain.ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "1234567890",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "sent successfully")
	assert.Equal(t, 1, mailer.calls)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSubmitContactSpam(t *testing.T) {
	mailer := &stubMailer{}
	router := newTestRouter(mailer)

	// Invalid fields plus honeypot: spam wins and delivery never happens.
	w, env := postContact(t, router, domain.ContactRequest{
		Name:     "",
		Email:    "bad",
		Honeypot: "bot",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "spam", env.Kind)
	assert.Empty(t, env.Errors)
	assert.Equal(t, 0, mailer.calls)
}

func TestSubmitContactValidationErrors(t *testing.T) {
	mailer := &stubMailer{}
	router := newTestRouter(mailer)

	w, env := postContact(t, router, domain.ContactRequest{
		Name:    "",
		Email:   "bad",
		Subject: "",
		Message: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation", env.Kind)
	assert.Len(t, env.Errors, 4)
	assert.Equal(t, "Name is required", env.Errors["name"])
	assert.Equal(t, "Please enter a valid email", env.Errors["email"])
	assert.Equal(t, "Subject is required", env.Errors["subject"])
	assert.Equal(t, "Message must be at least 10 characters", env.Errors["message"])
	assert.Equal(t, 0, mailer.calls)
}

func TestSubmitContactTransportFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp: connection refused")}
	router := newTestRouter(mailer)

	w, env := postContact(t, router, domain.ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "1234567890",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", env.Kind)
	// Generic retry-later message, no transport internals.
	assert.NotContains(t, env.Message, "smtp")
	assert.Contains(t, env.Message, "try again later")
	assert.Equal(t, 1, mailer.calls)
}

func TestSubmitContactMalformedPayload(t *testing.T) {
	mailer := &stubMailer{}
	router := newTestRouter(mailer)

	w, env := postContact(t, router, `{"name": `)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", env.Kind)
	assert.Equal(t, 0, mailer.calls)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubMailer{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
