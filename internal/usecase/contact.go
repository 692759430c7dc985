package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type contactUsecase struct {
	mailer  domain.Mailer
	timeout time.Duration
	now     func() time.Time
}

// NewContactUsecase creates the submission pipeline. timeout bounds the
// mail transport call; expiry is treated as a delivery failure.
func NewContactUsecase(mailer domain.Mailer, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		mailer:  mailer,
		timeout: timeout,
		now:     time.Now,
	}
}

// SubmitContact decides spam / invalid / accept in strict order.
// Spam and validation rejections are terminal and never reach the
// transport; only a transport error counts as a system failure.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	// Honeypot first: a flagged request is rejected before validation,
	// and its field contents are never inspected or logged.
	if req.IsSpam() {
		return apperror.SpamRejected()
	}

	// Server-side validation runs regardless of what the client checked.
	if errs := validation.Contact(req); len(errs) > 0 {
		return apperror.ValidationFailed(errs)
	}

	msg := domain.NewNotificationMessage(req, uc.now())

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	// Synchronous delivery: the response depends on the outcome, so there
	// is no fire-and-forget path. No retry either; the sender resubmits.
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return apperror.DeliveryFailed(err)
	}

	return nil
}
