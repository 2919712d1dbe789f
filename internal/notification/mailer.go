package notification

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/config"
	"gopkg.in/gomail.v2"
)

// Notifier delivers out-of-band messages to account holders.
type Notifier interface {
	SendPasswordResetCode(email, code string) error
}

const resetSubject = "Reset Your Password"

// Mailer sends notification emails over SMTP. When no SMTP host is
// configured it logs the message instead of sending, so the reset flow
// stays usable in development.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    zerolog.Logger
}

// NewMailer creates a Mailer from SMTP configuration.
func NewMailer(cfg *config.Config, log zerolog.Logger) *Mailer {
	m := &Mailer{from: cfg.SMTPFrom, log: log}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return m
}

// SendPasswordResetCode emails a password-reset code to the recipient.
func (m *Mailer) SendPasswordResetCode(email, code string) error {
	if m.dialer == nil {
		m.log.Info().
			Str("to", email).
			Str("subject", resetSubject).
			Msg("SMTP not configured, logging reset code instead of sending")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", resetSubject)
	msg.SetBody("text/plain", fmt.Sprintf("Your password reset code is: %s\nIt expires in 3 minutes.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}
