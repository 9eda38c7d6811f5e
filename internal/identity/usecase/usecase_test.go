package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shandysiswandi/tgauth/internal/identity/outbound/cache"
	"github.com/shandysiswandi/tgauth/internal/pkg/clock"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/hash"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
	"github.com/shandysiswandi/tgauth/internal/pkg/otp"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

const testConfig = `
modules:
  identity:
    otp:
      length: 6
      ttl_seconds: 120
`

type fixture struct {
	uc    *Usecase
	db    *MockrepoDB
	mq    *MockrepoMessaging
	store *ephemeral.Memory
	clk   *clock.Fixed
	jwt   *jwt.Symmetric
}

// newFixture wires the usecase with a memory-backed cache. Pass a non-nil
// repoCache to replace it.
func newFixture(t *testing.T, rc repoCache) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	clk := clock.NewFixed(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	require.NoError(t, err)

	gen, err := otp.NewNumeric(cfg.GetInt("modules.identity.otp.length"))
	require.NoError(t, err)

	iss, err := jwt.NewHMAC(jwt.Config{
		Secret:     []byte(strings.Repeat("s", 64)),
		Issuer:     "tgauth",
		Audiences:  []string{"tgauth-api"},
		AccessTTL:  7 * 24 * time.Hour,
		RefreshTTL: 30 * 24 * time.Hour,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)

	store := ephemeral.NewMemory(clk)
	if rc == nil {
		rc = cache.NewCache(store, v, instrument.NewNoop())
	}

	f := &fixture{
		db:    NewMockrepoDB(ctrl),
		mq:    NewMockrepoMessaging(ctrl),
		store: store,
		clk:   clk,
		jwt:   iss,
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoCache:     rc,
		RepoMessaging: f.mq,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        hash.NewBcrypt(4, ""),
		UUID:          uid.NewUUID(),
		OTP:           gen,
		JWT:           iss,
		Instrument:    instrument.NewNoop(),
	})

	return f
}

func authContext(accountID string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: accountID, Kind: jwt.KindAccess})
}
