package jwt

import (
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/tgauth/internal/pkg/clock"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
)

var testSecret = []byte(strings.Repeat("k", 64))

func newTestIssuer(t *testing.T, clk *clock.Fixed) *Symmetric {
	t.Helper()

	iss, err := NewHMAC(Config{
		Secret:     testSecret,
		Issuer:     "tgauth",
		Audiences:  []string{"tgauth-api"},
		AccessTTL:  7 * 24 * time.Hour,
		RefreshTTL: 30 * 24 * time.Hour,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)
	return iss
}

func TestSymmetric_AccessRoundTrip(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	iss := newTestIssuer(t, clk)

	token, err := iss.IssueAccess(Subject{UserID: "0190a3c5-0000-7000-8000-000000000001", PhoneNumber: "998931159963"})
	require.NoError(t, err)

	claims, err := iss.Verify(token, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, KindAccess, claims.Kind)
	assert.Equal(t, "0190a3c5-0000-7000-8000-000000000001", claims.Subject)
	assert.Equal(t, "998931159963", claims.PhoneNumber)
	assert.Equal(t, clk.Now().Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestSymmetric_RefreshRoundTrip(t *testing.T) {
	clk := clock.NewFixed(time.Now())
	iss := newTestIssuer(t, clk)

	token, err := iss.IssueRefresh(Subject{UserID: "user-1", PhoneNumber: "998931159963"})
	require.NoError(t, err)

	claims, err := iss.Verify(token, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, KindRefresh, claims.Kind)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.PhoneNumber)
	assert.Equal(t, clk.Now().Add(30*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestSymmetric_KindMismatch(t *testing.T) {
	iss := newTestIssuer(t, clock.NewFixed(time.Now()))

	access, err := iss.IssueAccess(Subject{UserID: "user-1"})
	require.NoError(t, err)
	refresh, err := iss.IssueRefresh(Subject{UserID: "user-1"})
	require.NoError(t, err)

	_, err = iss.Verify(refresh, KindAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = iss.Verify(access, KindRefresh)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestSymmetric_MissingKind(t *testing.T) {
	clk := clock.NewFixed(time.Now())
	iss := newTestIssuer(t, clk)

	token, err := libJWT.NewWithClaims(libJWT.SigningMethodHS512, libJWT.MapClaims{
		"sub":     "user-1",
		"user_id": "user-1",
		"iss":     "tgauth",
		"aud":     []string{"tgauth-api"},
		"iat":     clk.Now().Unix(),
		"exp":     clk.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	_, err = iss.Verify(token, KindAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestSymmetric_ExpiredVsMalformed(t *testing.T) {
	clk := clock.NewFixed(time.Now())
	iss := newTestIssuer(t, clk)

	token, err := iss.IssueAccess(Subject{UserID: "user-1"})
	require.NoError(t, err)

	clk.Advance(7*24*time.Hour + time.Minute)
	_, err = iss.Verify(token, KindAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenMalformed)

	_, err = iss.Verify("not.a.token", KindAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	other, err := NewHMAC(Config{
		Secret:     []byte(strings.Repeat("x", 64)),
		Issuer:     "tgauth",
		Audiences:  []string{"tgauth-api"},
		AccessTTL:  time.Hour,
		RefreshTTL: time.Hour,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)
	forged, err := other.IssueAccess(Subject{UserID: "user-1"})
	require.NoError(t, err)

	_, err = iss.Verify(forged, KindAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestNewHMAC_Config(t *testing.T) {
	base := Config{AccessTTL: time.Hour, RefreshTTL: time.Hour, Clock: clock.New(), UUID: uid.NewUUID()}

	cfg := base
	cfg.Secret = []byte("short")
	_, err := NewHMAC(cfg)
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)

	cfg.Algorithm = "RS256"
	_, err = NewHMAC(cfg)
	assert.ErrorIs(t, err, ErrInvalidSigningMethod)

	cfg.Algorithm = "HS256"
	cfg.Secret = []byte(strings.Repeat("s", 32))
	iss, err := NewHMAC(cfg)
	require.NoError(t, err)
	assert.Equal(t, "HS256", iss.method.Alg())

	cfg.AccessTTL = 0
	_, err = NewHMAC(cfg)
	assert.Error(t, err)
}
