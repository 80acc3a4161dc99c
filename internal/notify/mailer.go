package notify

import (
	"context"
	"log/slog"
)

// Mailer delivers account emails. The default implementation only logs;
// a real SMTP or API-backed mailer plugs in behind the same interface.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordResetCode(ctx context.Context, email, code string) error
}

// LogMailer writes outbound mail to the structured log instead of sending it.
// Useful in development and as a stand-in until a provider is configured.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log.With("mailer", "log")}
}

// SendWelcome logs the welcome mail.
func (m *LogMailer) SendWelcome(ctx context.Context, email, name string) error {
	m.log.InfoContext(ctx, "welcome mail",
		slog.String("email", email),
		slog.String("name", name),
	)
	return nil
}

// SendPasswordResetCode logs the reset code. The code appears in the log on
// purpose: with no real mailer configured this is the only way to complete a
// reset locally.
func (m *LogMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	m.log.InfoContext(ctx, "password reset mail",
		slog.String("email", email),
		slog.String("code", code),
	)
	return nil
}
