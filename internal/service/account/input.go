package account

import (
	"net/mail"
	"strings"

	"github.com/dukedan/consensus-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
	maxNameLen     = 100
	maxEmailLen    = 254
)

// ---------------------------------------------------------------------------
// RegisterInput
// ---------------------------------------------------------------------------

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}

	errs = append(errs, validatePassword(i.Password)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// LoginInput
// ---------------------------------------------------------------------------

// LoginInput holds the parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ForgotPasswordInput
// ---------------------------------------------------------------------------

// ForgotPasswordInput holds the parameters for requesting a reset code.
type ForgotPasswordInput struct {
	Email string
}

// Validate checks all fields and collects all errors.
func (i ForgotPasswordInput) Validate() error {
	if errs := validateEmail(i.Email); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ResetPasswordInput
// ---------------------------------------------------------------------------

// ResetPasswordInput holds the parameters for consuming a reset code.
type ResetPasswordInput struct {
	Code        string
	NewPassword string
}

// Validate checks all fields and collects all errors.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}

	errs = append(errs, validatePasswordField(i.NewPassword, "new_password")...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateEmail(email string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(email) == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	return errs
}

func validatePassword(password string) []domain.FieldError {
	return validatePasswordField(password, "password")
}

func validatePasswordField(password, field string) []domain.FieldError {
	var errs []domain.FieldError

	if password == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: field, Message: "too short (min 8)"})
	}
	if len(password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long (max 72)"})
	}

	return errs
}
