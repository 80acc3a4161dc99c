package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukedan/consensus-backend/internal/domain"
)

const resetCodeBytes = 16

// ForgotPassword generates a single-use reset code for the account behind the
// email and hands it to the mailer. Returns ErrNotFound for an unknown email.
func (s *Service) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("account.ForgotPassword: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("account.ForgotPassword get user: %w", err)
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("account.ForgotPassword generate code: %w", err)
	}

	if _, err := s.codes.Create(ctx, user.ID, code, s.now().Add(s.resetCodeTTL)); err != nil {
		return fmt.Errorf("account.ForgotPassword store code: %w", err)
	}

	if err := s.mailer.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		return fmt.Errorf("account.ForgotPassword send mail: %w", err)
	}

	s.log.InfoContext(ctx, "password reset code issued",
		slog.String("user_id", user.ID.String()))

	return nil
}

// ResetPassword consumes a reset code and replaces the account's password.
// The code burn and the password update commit together, so a code can never
// be spent without the password actually changing.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Code = strings.TrimSpace(input.Code)

	if err := input.Validate(); err != nil {
		return err
	}

	rc, err := s.codes.GetActiveByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("account.ResetPassword: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("account.ResetPassword get code: %w", err)
	}

	if rc.IsExpired(s.now()) {
		return domain.NewValidationError("code", "expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("account.ResetPassword hash password: %w", err)
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// MarkUsed loses to a concurrent reset with the same code; the
		// NotFound it returns then aborts this transaction.
		if err := s.codes.MarkUsed(txCtx, rc.ID); err != nil {
			return fmt.Errorf("mark code used: %w", err)
		}
		if err := s.users.UpdatePasswordHash(txCtx, rc.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("account.ResetPassword: %w", txErr)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("user_id", rc.UserID.String()))

	return nil
}

func generateResetCode() (string, error) {
	buf := make([]byte, resetCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
