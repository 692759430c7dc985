package domain

import (
	"context"
	"strings"
	"time"
)

// ContactRequest represents a contact form submission.
// Honeypot is a hidden field that stays empty for human visitors;
// bots tend to fill every field, so any value flags the request as spam.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot,omitempty"`
}

// IsSpam reports whether the honeypot was filled in. Spam-flagged
// requests are rejected before validation or delivery is attempted.
func (r *ContactRequest) IsSpam() bool {
	return r.Honeypot != ""
}

// FieldErrors maps a field name to a single human-readable error.
// An empty map means the request is valid.
type FieldErrors map[string]string

// NotificationMessage is the email derived from a validated submission.
// It exists only for the duration of one request and is never persisted.
type NotificationMessage struct {
	SenderName  string
	SenderEmail string // used as Reply-To
	Subject     string
	Body        string
	ReceivedAt  time.Time
}

// NewNotificationMessage builds the outbound message from a validated
// request. Fields are trimmed here so the transport never sees padding.
func NewNotificationMessage(req *ContactRequest, receivedAt time.Time) *NotificationMessage {
	return &NotificationMessage{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Body:        strings.TrimSpace(req.Message),
		ReceivedAt:  receivedAt,
	}
}

// Mailer is the outbound mail transport collaborator. Implementations
// must honor ctx cancellation and deadlines.
type Mailer interface {
	Send(ctx context.Context, msg *NotificationMessage) error
}

// ContactUsecase defines the contact form submission pipeline.
type ContactUsecase interface {
	// SubmitContact runs spam check, validation, composition and delivery
	// in that order. Failures are returned as *apperror.AppError values.
	SubmitContact(ctx context.Context, req *ContactRequest) error
}
