// Package account implements registration, login, session verification and
// the password reset flow.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukedan/consensus-backend/internal/auth"
	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
)

// userRepo defines the user repository interface needed by the account service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// resetCodeRepo defines the reset code repository interface needed by the account service.
type resetCodeRepo interface {
	Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.PasswordResetCode, error)
	GetActiveByCode(ctx context.Context, code string) (*domain.PasswordResetCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// sessionManager defines the token operations needed by the account service.
type sessionManager interface {
	Issue(s auth.Session) (string, error)
	Verify(token string) (auth.Session, error)
}

// txManager defines the transaction manager interface needed by the account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	codes    resetCodeRepo
	sessions sessionManager
	tx       txManager
	mailer   notify.Mailer

	hashCost     int
	resetCodeTTL time.Duration
	now          func() time.Time
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	codes resetCodeRepo,
	sessions sessionManager,
	tx txManager,
	mailer notify.Mailer,
	hashCost int,
	resetCodeTTL time.Duration,
) *Service {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &Service{
		log:          logger.With("service", "account"),
		users:        users,
		codes:        codes,
		sessions:     sessions,
		tx:           tx,
		mailer:       mailer,
		hashCost:     hashCost,
		resetCodeTTL: resetCodeTTL,
		now:          time.Now,
	}
}
