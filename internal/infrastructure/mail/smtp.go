// Package mail delivers transactional email over SMTP using gomail.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures the SMTP settings for the mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends password-reset mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset mails the reset link to the given address. The send is
// synchronous; ctx cancellation aborts before dialing.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for this address.\n\n"+
			"Open the link below within 10 minutes to choose a new password:\n\n%s\n\n"+
			"If you did not request this, ignore this message.\n", resetLink))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}
