package mailer

import (
	"github.com/sirupsen/logrus"
)

// Mailer delivers outbound account emails. Delivery is fire-and-forget;
// callers do not block a request on it.
type Mailer interface {
	SendPasswordReset(email, token string) error
}

// LogMailer writes outbound mail to the log instead of delivering it.
// Stands in for a real transport in development and tests.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendPasswordReset logs the reset token for the given address.
func (LogMailer) SendPasswordReset(email, token string) error {
	logrus.WithFields(logrus.Fields{
		"email": email,
		"token": token,
	}).Info("password reset mail (log transport)")
	return nil
}
