package jwt

import (
	"errors"
	"fmt"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// Symmetric signs and verifies tokens with an HMAC secret.
type Symmetric struct {
	method     *libJWT.SigningMethodHMAC
	secret     []byte
	issuer     string
	audiences  []string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clocker
	uuid       generator
}

// NewHMAC validates cfg and returns a Symmetric issuer.
func NewHMAC(cfg Config) (*Symmetric, error) {
	var method *libJWT.SigningMethodHMAC
	switch cfg.Algorithm {
	case "", "HS512":
		method = libJWT.SigningMethodHS512
	case "HS384":
		method = libJWT.SigningMethodHS384
	case "HS256":
		method = libJWT.SigningMethodHS256
	default:
		return nil, ErrInvalidSigningMethod
	}

	if len(cfg.Secret) < method.Hash.Size() {
		return nil, ErrSigningKeyTooShort
	}

	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("jwt: access and refresh ttl must be positive")
	}

	return &Symmetric{
		method:     method,
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		audiences:  cfg.Audiences,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
	}, nil
}

func (s *Symmetric) IssueAccess(sub Subject) (string, error) {
	return s.sign(sub, KindAccess, s.accessTTL)
}

// IssueRefresh omits the phone number; refresh only needs the account id.
func (s *Symmetric) IssueRefresh(sub Subject) (string, error) {
	return s.sign(Subject{UserID: sub.UserID}, KindRefresh, s.refreshTTL)
}

func (s *Symmetric) sign(sub Subject, kind Kind, ttl time.Duration) (string, error) {
	now := s.clock.Now()

	return libJWT.NewWithClaims(s.method, Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			ID:        s.uuid.Generate(),
			Subject:   sub.UserID,
			Issuer:    s.issuer,
			Audience:  s.audiences,
			IssuedAt:  libJWT.NewNumericDate(now),
			NotBefore: libJWT.NewNumericDate(now),
			ExpiresAt: libJWT.NewNumericDate(now.Add(ttl)),
		},
		UserID:      sub.UserID,
		PhoneNumber: sub.PhoneNumber,
		Kind:        kind,
	}).SignedString(s.secret)
}

// Verify checks signature, issuer, audience, iat, exp and kind.
func (s *Symmetric) Verify(tokenStr string, want Kind) (Claims, error) {
	var claims Claims

	token, err := libJWT.ParseWithClaims(tokenStr, &claims,
		func(*libJWT.Token) (any, error) { return s.secret, nil },
		libJWT.WithValidMethods([]string{s.method.Alg()}),
		libJWT.WithIssuer(s.issuer),
		libJWT.WithAudience(s.audiences...),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
		libJWT.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if !token.Valid {
		return Claims{}, ErrTokenMalformed
	}

	if claims.Kind != want {
		return Claims{}, fmt.Errorf("%w: got kind %q, want %q", ErrTokenMalformed, claims.Kind, want)
	}

	if claims.UserID == "" || claims.UserID != claims.Subject {
		return Claims{}, fmt.Errorf("%w: subject mismatch", ErrTokenMalformed)
	}

	return claims, nil
}
