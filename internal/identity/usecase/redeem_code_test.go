package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
)

func requestCode(t *testing.T, f *fixture, phone string) string {
	t.Helper()

	tgID := int64(5511)
	out, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Profile: entity.PendingProfile{
		PhoneNumber: phone,
		FirstName:   "Aziz",
		LastName:    "Karimov",
		TgUserID:    &tgID,
	}})
	require.NoError(t, err)
	return out.Code
}

func existingAccount() *entity.Account {
	tgID := int64(5511)
	return &entity.Account{
		ID:          "0190a3c5-0000-7000-8000-000000000001",
		PhoneNumber: "998931159963",
		TgUserID:    &tgID,
		FirstName:   "Aziz",
		IsVerified:  true,
	}
}

func TestUsecase_RedeemCode_NewAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	code := requestCode(t, f, "998931159963")

	f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(nil, goerror.ErrNotFound)
	f.db.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.NewAccount) (*entity.Account, error) {
			assert.NotEmpty(t, in.ID)
			assert.Equal(t, "998931159963", in.PhoneNumber)
			assert.Equal(t, "Aziz", in.FirstName)
			assert.Equal(t, "Karimov", in.LastName)
			assert.True(t, in.IsVerified)
			return &entity.Account{ID: in.ID, PhoneNumber: in.PhoneNumber, TgUserID: in.TgUserID, FirstName: in.FirstName, IsVerified: true}, nil
		})
	f.mq.EXPECT().PublishAccountRegistered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev AccountRegisteredEvent) error {
			assert.Equal(t, "998931159963", ev.PhoneNumber)
			require.NotNil(t, ev.TgUserID)
			assert.Equal(t, int64(5511), *ev.TgUserID)
			return nil
		})

	out, err := f.uc.RedeemCode(ctx, RedeemCodeInput{OTP: code})
	require.NoError(t, err)
	assert.True(t, out.IsNewAccount)

	clm, err := f.jwt.Verify(out.AccessToken, jwt.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, out.Account.ID, clm.Subject)

	clm, err = f.jwt.Verify(out.RefreshToken, jwt.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, jwt.KindRefresh, clm.Kind)

	_, err = f.store.Get(ctx, "user_data:998931159963")
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	_, err = f.uc.RedeemCode(ctx, RedeemCodeInput{OTP: code})
	assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
}

func TestUsecase_RedeemCode_ExistingAccount(t *testing.T) {
	f := newFixture(t, nil)
	code := requestCode(t, f, "998931159963")

	f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(existingAccount(), nil)

	out, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: code})
	require.NoError(t, err)
	assert.False(t, out.IsNewAccount)
	assert.Equal(t, existingAccount().ID, out.Account.ID)
}

func TestUsecase_RedeemCode_CreateConflict(t *testing.T) {
	f := newFixture(t, nil)
	code := requestCode(t, f, "998931159963")

	gomock.InOrder(
		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(nil, goerror.ErrNotFound),
		f.db.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, goerror.ErrConflict),
		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(existingAccount(), nil),
	)

	out, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: code})
	require.NoError(t, err)
	assert.False(t, out.IsNewAccount)
	assert.Equal(t, existingAccount().ID, out.Account.ID)
}

func TestUsecase_RedeemCode_Expired(t *testing.T) {
	f := newFixture(t, nil)
	code := requestCode(t, f, "998931159963")

	f.clk.Advance(121 * time.Second)

	_, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: code})
	assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
}

func TestUsecase_RedeemCode_ProfileMissing(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	code := requestCode(t, f, "998931159963")

	require.NoError(t, f.store.Delete(ctx, "user_data:998931159963"))

	_, err := f.uc.RedeemCode(ctx, RedeemCodeInput{OTP: code})
	require.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Msg(), "request a new code")

	// The code was consumed by the failed attempt.
	_, err = f.store.Get(ctx, "otp:"+code)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestUsecase_RedeemCode_InvalidInput(t *testing.T) {
	f := newFixture(t, nil)

	for _, code := range []string{"", "12", "abcdef", "12ab56", "12345", "1234567", "+12345", "12.345", "-12345", " 12345"} {
		_, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: code})
		assert.Equal(t, goerror.CodeInvalidInput, goerror.CodeOf(err), "code %q", code)

		var ge *goerror.Error
		if assert.ErrorAs(t, err, &ge, "code %q", code) {
			assert.Equal(t, http.StatusBadRequest, ge.StatusCode(), "code %q", code)
		}
	}
}

func TestUsecase_RedeemCode_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc := NewMockrepoCache(ctrl)
	f := newFixture(t, rc)

	unavailable := fmt.Errorf("%w: redis getdel: i/o timeout", goerror.ErrUnavailable)
	rc.EXPECT().TakePendingOTP(gomock.Any(), "482913").Return(nil, unavailable)

	_, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: "482913"})
	assert.Equal(t, goerror.CodeUnavailable, goerror.CodeOf(err))

	rc.EXPECT().TakePendingOTP(gomock.Any(), "482913").
		Return(&entity.PendingOTP{Code: "482913", PhoneNumber: "998931159963"}, nil)
	rc.EXPECT().GetPendingProfile(gomock.Any(), "998931159963").Return(nil, unavailable)

	_, err = f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: "482913"})
	assert.Equal(t, goerror.CodeUnavailable, goerror.CodeOf(err))
}

func TestUsecase_RedeemCode_Concurrent(t *testing.T) {
	f := newFixture(t, nil)
	code := requestCode(t, f, "998931159963")

	f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(existingAccount(), nil).AnyTimes()

	var (
		wg           sync.WaitGroup
		successes    atomic.Int32
		unauthorized atomic.Int32
	)
	for range 16 {
		wg.Go(func() {
			_, err := f.uc.RedeemCode(context.Background(), RedeemCodeInput{OTP: code})
			switch goerror.CodeOf(err) {
			case goerror.CodeUnauthorized:
				unauthorized.Add(1)
			default:
				if err == nil {
					successes.Add(1)
				}
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(15), unauthorized.Load())
}

func TestUsecase_RedeemCode_SecondCycleReusesAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	var created *entity.Account
	gomock.InOrder(
		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(nil, goerror.ErrNotFound),
		f.db.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in entity.NewAccount) (*entity.Account, error) {
				created = &entity.Account{ID: in.ID, PhoneNumber: in.PhoneNumber, IsVerified: true}
				return created, nil
			}),
		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").
			DoAndReturn(func(context.Context, string) (*entity.Account, error) { return created, nil }),
	)
	f.mq.EXPECT().PublishAccountRegistered(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := f.uc.RedeemCode(ctx, RedeemCodeInput{OTP: requestCode(t, f, "998931159963")})
	require.NoError(t, err)
	assert.True(t, first.IsNewAccount)

	second, err := f.uc.RedeemCode(ctx, RedeemCodeInput{OTP: requestCode(t, f, "998931159963")})
	require.NoError(t, err)
	assert.False(t, second.IsNewAccount)
	assert.Equal(t, first.Account.ID, second.Account.ID)
}
