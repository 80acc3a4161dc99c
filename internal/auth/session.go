// Package auth implements the stateless session token protocol: compact,
// HS256-signed, time-bounded tokens binding a user identity to a request.
// There is no revocation list — tokens stay valid until natural expiration
// and logout is client-side cookie deletion only.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// Session is the identity payload asserted by a token.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// SessionManager issues and verifies session tokens. It performs no I/O and is
// safe for concurrent use; the only inputs are the payload, the secret and the clock.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// sessionClaims extends standard JWT claims with the user's email.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issue produces a signed HS256 token asserting the session payload,
// stamped with issuance time and a fixed expiration horizon.
func (m *SessionManager) Issue(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: s.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify validates signature integrity and expiration, returning the embedded
// identity payload unchanged. Failure kinds:
//   - domain.ErrTokenExpired when the embedded expiration has passed
//   - domain.ErrInvalidSignature when the signature does not match
//   - domain.ErrMalformedToken when the token cannot be parsed
func (m *SessionManager) Verify(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, domain.ErrMalformedToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		return Session{}, mapTokenError(err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, domain.ErrMalformedToken
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return Session{}, fmt.Errorf("issuer %q: %w", claims.Issuer, domain.ErrMalformedToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, fmt.Errorf("subject: %w", domain.ErrMalformedToken)
	}

	return Session{UserID: userID, Email: claims.Email}, nil
}

// mapTokenError translates jwt/v5 parse errors into the domain taxonomy.
// When both expiration and signature fail, jwt/v5 reports expiration first.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrInvalidSignature
	default:
		return fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
}
