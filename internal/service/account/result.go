package account

import "github.com/dukedan/consensus-backend/internal/domain"

// AuthResult is returned by Register and Login: a signed session token and
// the public identity it asserts.
type AuthResult struct {
	Token string
	User  domain.Identity
}
