package apperror

import "net/http"

// Kind discriminates error classes for clients. Spam and validation
// rejections share a 422 status, so the kind is what tells them apart.
const (
	KindSpam       = "spam"
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

type AppError struct {
	Code    int               `json:"code"`
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// SpamRejected is a terminal rejection based on the honeypot heuristic.
// It carries no field errors and is not a system error.
func SpamRejected() *AppError {
	return New(http.StatusUnprocessableEntity, KindSpam, "Spam detected", nil)
}

// ValidationFailed carries one message per offending field. The user can
// recover by editing and resubmitting.
func ValidationFailed(fields map[string]string) *AppError {
	e := New(http.StatusUnprocessableEntity, KindValidation, "Validation failed", nil)
	e.Fields = fields
	return e
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// DeliveryFailed wraps a mail transport error. The cause is kept for
// server-side logs only; the client sees a generic retry-later message.
func DeliveryFailed(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal,
		"Sorry, there was an error sending your message. Please try again later.", err)
}

// Malformed covers unparseable payloads. From the client's perspective it
// is indistinguishable from any other internal failure.
func Malformed(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal,
		"Sorry, there was an error sending your message. Please try again later.", err)
}
