package auth

import (
	"fmt"
	"time"

	"storefront-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a verified token proves about the caller.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenCodec issues and verifies HMAC-signed tokens with a fixed TTL.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec around a server-held symmetric secret.
// A zero ttl falls back to 24 hours.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token encoding the user's id, email and role.
func (c *TokenCodec) Issue(u *domain.User) (string, error) {
	now := time.Now()
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: u.Email,
		Role:  string(u.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
}

// Verify decodes a token. Expiry, signature mismatch and malformed
// input all fail uniformly with ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	role := domain.Role(cl.Role)
	if cl.Subject == "" || !role.Valid() {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: cl.Subject, Email: cl.Email, Role: role}, nil
}

// TTLSeconds exposes the token lifetime in seconds.
func (c *TokenCodec) TTLSeconds() int {
	return int(c.ttl.Seconds())
}
