package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned for an unsupported algorithm name.
	ErrInvalidSigningMethod = errors.New("jwt: invalid signing method")

	// ErrSigningKeyTooShort is returned when the secret is shorter than the hash output.
	ErrSigningKeyTooShort = errors.New("jwt: signing key is shorter than the algorithm hash size")

	// ErrTokenExpired is returned for a well-formed, correctly signed token past its exp.
	ErrTokenExpired = errors.New("jwt: token has expired")

	// ErrTokenMalformed covers bad encoding, bad signature, wrong issuer or
	// audience and a missing or unexpected kind.
	ErrTokenMalformed = errors.New("jwt: token is malformed or has an invalid signature")
)

// Kind discriminates access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Issuer is the credential issuer used by the login flows and the auth middleware.
type Issuer interface {
	IssueAccess(sub Subject) (string, error)
	IssueRefresh(sub Subject) (string, error)
	Verify(token string, want Kind) (Claims, error)
}

// Verifier is the subset of Issuer needed to authenticate requests.
type Verifier interface {
	Verify(token string, want Kind) (Claims, error)
}

// Subject identifies who a token is minted for.
type Subject struct {
	UserID      string
	PhoneNumber string
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

// Config defines the inputs for building an Issuer.
type Config struct {
	// Algorithm is HS256, HS384 or HS512. Empty means HS512.
	Algorithm  string
	Secret     []byte
	Issuer     string
	Audiences  []string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Clock      clocker
	UUID       generator
}

// Claims are the registered claims plus the account identity and token kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Kind        Kind   `json:"type"`
}

type authContextKey struct{}

// GetAuth returns the claims stored by the auth middleware, or nil.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(authContextKey{}).(Claims)
	if !ok {
		return nil
	}
	return &clm
}

func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, authContextKey{}, clm)
}
