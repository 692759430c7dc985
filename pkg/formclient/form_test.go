package formclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/static"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/formclient"
)

type stubMailer struct {
	err   error
	calls int
}

func (m *stubMailer) Send(ctx context.Context, msg *domain.NotificationMessage) error {
	m.calls++
	return m.err
}

// newBackend spins up the real submission endpoint for end-to-end tests.
func newBackend(t *testing.T, mailer domain.Mailer) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactUsecase(mailer, time.Second),
		PortfolioUC: usecase.NewPortfolioUsecase(static.NewPortfolioRepository()),
		Config:      &config.Config{FrontendURL: "http://localhost:3000"},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(d)
}

func fillValid(ctrl *formclient.Controller) {
	ctrl.UpdateField(formclient.FieldName, "Jane")
	ctrl.UpdateField(formclient.FieldEmail, "jane@x.com")
	ctrl.UpdateField(formclient.FieldSubject, "Hi")
	ctrl.UpdateField(formclient.FieldMessage, "1234567890")
}

func TestSubmitSuccessClearsFormAndShowsBanner(t *testing.T) {
	mailer := &stubMailer{}
	srv := newBackend(t, mailer)

	clock := &fakeClock{cur: time.Now()}
	ctrl := formclient.New(srv.URL+"/v1/contact",
		formclient.WithClock(clock.Now),
		formclient.WithSuccessWindow(5*time.Second),
	)

	fillValid(ctrl)
	ctrl.Submit(context.Background())

	state := ctrl.State()
	assert.True(t, state.Success)
	assert.False(t, state.InFlight)
	assert.Empty(t, state.Errors)
	assert.Empty(t, state.GeneralError)
	for field, value := range state.Values {
		assert.Empty(t, value, "field %s should be cleared", field)
	}
	assert.Equal(t, 1, mailer.calls)

	// Banner auto-hides once the display window passes.
	clock.Advance(6 * time.Second)
	assert.False(t, ctrl.State().Success)
}

func TestSubmitInvalidFormMakesNoNetworkCall(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctrl := formclient.New(srv.URL)
	ctrl.UpdateField(formclient.FieldEmail, "bad")
	ctrl.UpdateField(formclient.FieldMessage, "short")
	ctrl.Submit(context.Background())

	state := ctrl.State()
	assert.Equal(t, 0, requests)
	assert.Len(t, state.Errors, 4)
	assert.False(t, state.Success)
}

func TestSubmitMergesServerValidationErrors(t *testing.T) {
	// Simulate rule drift: the server rejects a form the client accepted.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"kind":    "validation",
			"errors":  map[string]string{"email": "Please enter a valid email"},
		})
	}))
	defer srv.Close()

	ctrl := formclient.New(srv.URL)
	fillValid(ctrl)
	ctrl.Submit(context.Background())

	state := ctrl.State()
	assert.Equal(t, "Please enter a valid email", state.Errors["email"])
	assert.Empty(t, state.GeneralError)
	assert.False(t, state.Success)
	// The form is preserved for correction.
	assert.Equal(t, "Jane", state.Values[formclient.FieldName])
}

func TestSubmitTransportFailureShowsGeneralError(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp: connection refused")}
	srv := newBackend(t, mailer)

	ctrl := formclient.New(srv.URL + "/v1/contact")
	fillValid(ctrl)
	ctrl.Submit(context.Background())

	state := ctrl.State()
	assert.Equal(t, formclient.ErrGeneral, state.GeneralError)
	assert.Empty(t, state.Errors)
	assert.False(t, state.Success)
	assert.Equal(t, "Jane", state.Values[formclient.FieldName])
}

func TestSubmitNetworkErrorShowsGeneralError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	ctrl := formclient.New(srv.URL)
	fillValid(ctrl)
	ctrl.Submit(context.Background())

	state := ctrl.State()
	assert.Equal(t, formclient.ErrGeneral, state.GeneralError)
	assert.False(t, state.Success)
}

func TestDoubleSubmitIsSingleFlight(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		close(arrived)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Message sent successfully!",
		})
	}))
	defer srv.Close()

	ctrl := formclient.New(srv.URL)
	fillValid(ctrl)

	done := make(chan struct{})
	go func() {
		ctrl.Submit(context.Background())
		close(done)
	}()

	<-arrived
	assert.True(t, ctrl.State().InFlight)

	// Second submit while the first is outstanding: suppressed, not queued.
	ctrl.Submit(context.Background())
	assert.Equal(t, 1, requests)

	close(release)
	<-done

	state := ctrl.State()
	assert.Equal(t, 1, requests)
	assert.True(t, state.Success)
	assert.False(t, state.InFlight)
}

func TestUpdateFieldClearsOnlyThatError(t *testing.T) {
	ctrl := formclient.New("http://example.invalid")

	errs := ctrl.Validate()
	assert.Len(t, errs, 4)

	ctrl.UpdateField(formclient.FieldName, "Jane")

	state := ctrl.State()
	assert.NotContains(t, state.Errors, formclient.FieldName)
	assert.Contains(t, state.Errors, formclient.FieldEmail)
	assert.Contains(t, state.Errors, formclient.FieldSubject)
	assert.Contains(t, state.Errors, formclient.FieldMessage)
}

func TestValidateIsIdempotent(t *testing.T) {
	ctrl := formclient.New("http://example.invalid")
	ctrl.UpdateField(formclient.FieldEmail, "a@b")

	first := ctrl.Validate()
	second := ctrl.Validate()
	assert.Equal(t, first, second)
}
