// Package validation holds the single source of truth for contact form
// rules. Both the HTTP endpoint and the form client run the same checks,
// so the two layers cannot drift apart.
package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/internal/domain"
)

// emailRegex matches a minimal local-part@domain.tld shape. Intentionally
// loose: the goal is catching typos, not RFC 5322 compliance.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactRules mirrors domain.ContactRequest with the rule tags attached.
// The honeypot is deliberately absent: spam checking happens before
// validation and must not produce a field error.
type contactRules struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,contact_email"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank,trimmed_min=10"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the json field name so the error set matches the
	// wire payload keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("contact_email", contactEmail)
	_ = v.RegisterValidation("trimmed_min", trimmedMin)
	return v
}

// notBlank rejects values that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func contactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// trimmedMin checks the trimmed length against the tag parameter, so
// leading and trailing whitespace cannot pad a message over the minimum.
func trimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= min
}

// fieldLabels maps json field names to the labels used in messages.
var fieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"subject": "Subject",
	"message": "Message",
}

// Contact validates a submission and returns at most one error per field.
// An empty result means the request is valid. The function is pure:
// the same input always yields the same error set.
func Contact(req *domain.ContactRequest) domain.FieldErrors {
	rules := contactRules{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	err := validate.Struct(rules)
	if err == nil {
		return domain.FieldErrors{}
	}

	errs := domain.FieldErrors{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failures cannot happen with string fields, but never
		// let a stray error pass as "valid".
		errs["message"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = formatRuleError(field, e)
	}
	return errs
}

func formatRuleError(field string, e validator.FieldError) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}

	switch e.Tag() {
	case "notblank":
		return label + " is required"
	case "contact_email":
		return "Please enter a valid email"
	case "trimmed_min":
		return label + " must be at least " + e.Param() + " characters"
	default:
		return label + " is invalid"
	}
}
