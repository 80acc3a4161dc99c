package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukedan/consensus-backend/internal/auth"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Login authenticates a user with email + password and returns a fresh
// session. Unknown email and wrong password are indistinguishable to the
// caller: both come back as ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.sessions.Issue(auth.Session{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("account.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user.Identity()}, nil
}

// VerifySession validates a session token and resolves the current identity.
// The user row is re-read so a renamed user sees the fresh name even though
// the token payload is stale.
func (s *Service) VerifySession(ctx context.Context, token string) (domain.Identity, error) {
	session, err := s.sessions.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Valid token for a deleted account.
			return domain.Identity{}, domain.ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("account.VerifySession get user: %w", err)
	}

	return user.Identity(), nil
}
