package mailer

import (
	"context"
	"log"
)

// Mailer delivers account emails. Delivery is best-effort: callers log
// failures and carry on, they never fail the request over it.
type Mailer interface {
	SendVerificationLink(ctx context.Context, email, token string) error
	SendOTP(ctx context.Context, email, code string) error
}

// DevConsoleMailer prints outgoing mail to the log instead of sending
// it. Used everywhere real SMTP is out of scope.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendVerificationLink(_ context.Context, email, token string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] verification link email=%s token=%s", email, token)
	}
	return nil
}

func (m *DevConsoleMailer) SendOTP(_ context.Context, email, code string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] login otp email=%s code=%s", email, code)
	}
	return nil
}
