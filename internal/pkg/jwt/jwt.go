package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin marks tokens minted by the admin OTP flow.
	RoleAdmin = "admin"
	// RoleSupporter marks tokens minted by supporter signup/login.
	RoleSupporter = "supporter"
)

var (
	// ErrInvalidSigningMethod is returned when a token uses an unexpected algorithm.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 key is under 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// JWT mints and verifies session tokens.
type JWT interface {
	// Generate creates a signed token for the identity with the given role.
	Generate(email, role string) (string, error)
	// Verify parses and validates the token and returns its claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// Audiences are the accepted token audiences.
	Audiences []string
	// TTLByRole maps a role to its token lifetime. Non-positive entries
	// are treated as unset.
	TTLByRole map[string]time.Duration
	// DefaultTTL applies to roles missing from TTLByRole.
	DefaultTTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Claims wraps the registered claims with the authenticated identity.
type Claims struct {
	jwt.RegisteredClaims
	// Email is the authenticated identity.
	Email string `json:"email"`
	// Role is the access level carried by the token.
	Role string `json:"role"`
}

// GetAuth returns the claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}
	return &clm
}

// SetAuth stores claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
