package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
)

// Service delivers contact notifications over SMTP. It implements
// domain.Mailer.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// NewService validates the SMTP configuration up front and fails fast,
// so a misconfigured deployment dies at boot instead of erroring on
// every submission.
func NewService(cfg *config.Config) (*Service, error) {
	var missing []string
	if cfg.SMTPHost == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.SMTPUsername == "" {
		missing = append(missing, "SMTP_USERNAME")
	}
	if cfg.SMTPPassword == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if cfg.ContactEmailTo == "" {
		missing = append(missing, "CONTACT_EMAIL_TO")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("mail transport not configured, missing: %s", strings.Join(missing, ", "))
	}

	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
	}, nil
}

// notificationTemplate is the HTML body for contact notifications.
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2d3748; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f7fafc; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #4a5568; margin-top: 10px; white-space: pre-line; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Submission</h1>
            <p>Portfolio Contact Form</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Body}}</div>
            </div>
            <div class="field">
                <div class="label">Received:</div>
                <div class="value">{{.ReceivedAt.Format "Jan 2, 2006 15:04:05 MST"}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This message was sent through your portfolio contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

var tmpl = template.Must(template.New("notification").Parse(notificationTemplate))

// Send delivers the notification. The blocking SMTP exchange runs in a
// goroutine so the context deadline is honored; on expiry the send is
// abandoned and reported as a transport failure.
func (s *Service) Send(ctx context.Context, msg *domain.NotificationMessage) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Subject)

	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		msg.SenderEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail delivery aborted: %w", ctx.Err())
	}
}
