package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The debate core only ever exposes the
// id / name / email triple to callers; PasswordHash never leaves the auth service.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the minimal user payload resolved into topic bundles and
// embedded in session tokens.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// UnknownCreatorName is the fallback display name when a creator record is missing.
const UnknownCreatorName = "Unknown"

// Identity returns the public identity of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}

// PasswordResetCode is a single-use, time-bounded code mailed to a user who
// requested a password reset.
type PasswordResetCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the code has expired relative to now.
func (c *PasswordResetCode) IsExpired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}
