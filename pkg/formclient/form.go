// Package formclient implements the contact form controller consumed by
// the site shell. It owns the field state, runs the shared validation
// rules before any network call, submits at most one request at a time
// and turns every outcome into view state instead of propagating errors.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

// Field names accepted by UpdateField. They match the wire payload keys.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldSubject  = "subject"
	FieldMessage  = "message"
	FieldHoneypot = "honeypot"
)

// ErrGeneral is the single catch-all message shown for network errors,
// server errors and spam rejections alike.
const ErrGeneral = "Sorry, there was an error sending your message. Please try again later."

const defaultSuccessWindow = 5 * time.Second

// State is the snapshot the view renders from.
type State struct {
	Values       map[string]string
	Errors       domain.FieldErrors
	GeneralError string
	InFlight     bool
	Success      bool
}

// Controller drives one contact form. It is built for cooperative
// single-goroutine UI scheduling; the mutex only enforces the
// single-flight guarantee, it does not make concurrent use meaningful.
type Controller struct {
	endpoint      string
	client        *http.Client
	successWindow time.Duration
	now           func() time.Time

	mu           sync.Mutex
	form         domain.ContactRequest
	errors       domain.FieldErrors
	generalError string
	inFlight     bool
	successUntil time.Time
}

type Option func(*Controller)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) { c.client = client }
}

// WithSuccessWindow sets how long the success banner stays visible.
func WithSuccessWindow(d time.Duration) Option {
	return func(c *Controller) { c.successWindow = d }
}

// WithClock injects the time source, used by tests to step past the
// success window without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a controller posting to the given submission endpoint URL.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint:      endpoint,
		client:        &http.Client{Timeout: 10 * time.Second},
		successWindow: defaultSuccessWindow,
		now:           time.Now,
		errors:        domain.FieldErrors{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField sets a field value and clears that field's error, giving
// immediate feedback while the user corrects a single input. Other
// errors are left in place.
func (c *Controller) UpdateField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case FieldName:
		c.form.Name = value
	case FieldEmail:
		c.form.Email = value
	case FieldSubject:
		c.form.Subject = value
	case FieldMessage:
		c.form.Message = value
	case FieldHoneypot:
		c.form.Honeypot = value
	default:
		return
	}
	delete(c.errors, name)
}

// Validate runs the shared rule set against the current values and
// records the result. The returned set is empty for a valid form.
func (c *Controller) Validate() domain.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := validation.Contact(&c.form)
	c.errors = errs
	return errs
}

// Submit validates and posts the form once. A call while a previous
// submission is still in flight is a no-op, so a double-click cannot
// produce a duplicate send. All outcomes, including network failures,
// are recorded as state; nothing escapes the controller.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return
	}

	// Start from a clean slate like a fresh attempt.
	c.errors = domain.FieldErrors{}
	c.generalError = ""
	c.successUntil = time.Time{}

	if errs := validation.Contact(&c.form); len(errs) > 0 {
		c.errors = errs
		c.mu.Unlock()
		return
	}

	c.inFlight = true
	payload := c.form
	c.mu.Unlock()

	result := c.post(ctx, &payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	switch {
	case result.ok:
		c.form = domain.ContactRequest{}
		c.errors = domain.FieldErrors{}
		c.successUntil = c.now().Add(c.successWindow)
	case result.kind == apperror.KindValidation && len(result.fieldErrors) > 0:
		// Server-side rejections merge into the error set; the form is
		// kept so the user can correct and resubmit.
		for field, msg := range result.fieldErrors {
			c.errors[field] = msg
		}
	default:
		c.generalError = ErrGeneral
	}
}

// State returns a copy of the current view state. The success flag
// auto-expires once the display window has passed.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := map[string]string{
		FieldName:     c.form.Name,
		FieldEmail:    c.form.Email,
		FieldSubject:  c.form.Subject,
		FieldMessage:  c.form.Message,
		FieldHoneypot: c.form.Honeypot,
	}
	errs := domain.FieldErrors{}
	for k, v := range c.errors {
		errs[k] = v
	}

	return State{
		Values:       values,
		Errors:       errs,
		GeneralError: c.generalError,
		InFlight:     c.inFlight,
		Success:      !c.successUntil.IsZero() && c.now().Before(c.successUntil),
	}
}

type submitResult struct {
	ok          bool
	kind        string
	fieldErrors map[string]string
}

type apiResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Kind    string            `json:"kind"`
	Errors  map[string]string `json:"errors"`
}

func (c *Controller) post(ctx context.Context, payload *domain.ContactRequest) submitResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return submitResult{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return submitResult{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return submitResult{}
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return submitResult{}
	}

	if resp.StatusCode == http.StatusOK && parsed.Success {
		return submitResult{ok: true}
	}
	return submitResult{kind: parsed.Kind, fieldErrors: parsed.Errors}
}
