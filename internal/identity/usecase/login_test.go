package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/hash"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
)

func TestUsecase_Login(t *testing.T) {
	hashed, err := hash.NewBcrypt(4, "").Hash("s3cret-pass")
	require.NoError(t, err)

	withPassword := existingAccount()
	withPassword.PasswordHash = string(hashed)

	tests := []struct {
		name     string
		in       LoginInput
		mockFn   func(f *fixture)
		wantCode goerror.Code
		wantErr  bool
	}{
		{
			name: "success with plus prefix",
			in:   LoginInput{PhoneNumber: "+998931159963", Password: "s3cret-pass"},
			mockFn: func(f *fixture) {
				f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(withPassword, nil)
			},
		},
		{
			name:     "validation error",
			in:       LoginInput{PhoneNumber: "12", Password: ""},
			mockFn:   func(*fixture) {},
			wantCode: goerror.CodeInvalidInput,
			wantErr:  true,
		},
		{
			name: "unknown phone",
			in:   LoginInput{PhoneNumber: "998900000000", Password: "whatever1"},
			mockFn: func(f *fixture) {
				f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998900000000").Return(nil, goerror.ErrNotFound)
			},
			wantCode: goerror.CodeUnauthorized,
			wantErr:  true,
		},
		{
			name: "wrong password",
			in:   LoginInput{PhoneNumber: "998931159963", Password: "not-the-pass"},
			mockFn: func(f *fixture) {
				f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(withPassword, nil)
			},
			wantCode: goerror.CodeUnauthorized,
			wantErr:  true,
		},
		{
			name: "account created by bot has no password",
			in:   LoginInput{PhoneNumber: "998931159963", Password: "s3cret-pass"},
			mockFn: func(f *fixture) {
				f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(existingAccount(), nil)
			},
			wantCode: goerror.CodeUnauthorized,
			wantErr:  true,
		},
		{
			name: "database failure",
			in:   LoginInput{PhoneNumber: "998931159963", Password: "s3cret-pass"},
			mockFn: func(f *fixture) {
				f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(nil, errors.New("conn reset"))
			},
			wantCode: goerror.CodeInternal,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			tt.mockFn(f)

			out, err := f.uc.Login(context.Background(), tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, goerror.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, withPassword.ID, out.Account.ID)
			_, err = f.jwt.Verify(out.AccessToken, jwt.KindAccess)
			assert.NoError(t, err)
		})
	}
}

func TestUsecase_RefreshToken(t *testing.T) {
	acc := existingAccount()

	t.Run("issues a new access token", func(t *testing.T) {
		f := newFixture(t, nil)
		refresh, err := f.jwt.IssueRefresh(jwt.Subject{UserID: acc.ID})
		require.NoError(t, err)

		f.db.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(acc, nil)

		out, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: refresh})
		require.NoError(t, err)

		clm, err := f.jwt.Verify(out.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, acc.ID, clm.UserID)
		assert.Equal(t, acc.PhoneNumber, clm.PhoneNumber)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		access, err := f.jwt.IssueAccess(jwt.Subject{UserID: acc.ID})
		require.NoError(t, err)

		_, err = f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: access})
		assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
	})

	t.Run("expired refresh token", func(t *testing.T) {
		f := newFixture(t, nil)
		refresh, err := f.jwt.IssueRefresh(jwt.Subject{UserID: acc.ID})
		require.NoError(t, err)

		f.clk.Advance(31 * 24 * time.Hour)

		_, err = f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: refresh})
		assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
	})

	t.Run("account gone", func(t *testing.T) {
		f := newFixture(t, nil)
		refresh, err := f.jwt.IssueRefresh(jwt.Subject{UserID: acc.ID})
		require.NoError(t, err)

		f.db.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(nil, goerror.ErrNotFound)

		_, err = f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: refresh})
		assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
	})

	t.Run("empty token", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{})
		assert.Equal(t, goerror.CodeInvalidInput, goerror.CodeOf(err))

		var ge *goerror.Error
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, http.StatusBadRequest, ge.StatusCode())
	})
}

func TestUsecase_ProfileAndLogout(t *testing.T) {
	acc := existingAccount()
	f := newFixture(t, nil)

	_, err := f.uc.Profile(context.Background())
	assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(err))
	assert.Equal(t, goerror.CodeUnauthorized, goerror.CodeOf(f.uc.Logout(context.Background())))

	f.db.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(acc, nil)
	got, err := f.uc.Profile(authContext(acc.ID))
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	assert.NoError(t, f.uc.Logout(authContext(acc.ID)))
}

func TestUsecase_ContactEstablished(t *testing.T) {
	t.Run("links existing account", func(t *testing.T) {
		f := newFixture(t, nil)
		acc := existingAccount()
		acc.TgUserID = nil

		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(acc, nil)
		f.db.EXPECT().LinkTelegram(gomock.Any(), acc.ID, int64(5511)).Return(true, nil)

		out, err := f.uc.ContactEstablished(context.Background(), ContactEstablishedInput{
			PhoneNumber: "+998931159963",
			TgUserID:    5511,
			FirstName:   "Telegram Name",
		})
		require.NoError(t, err)
		assert.True(t, out.Registered)
		assert.Equal(t, acc.ID, out.Profile.AccountID)
		assert.Equal(t, "Aziz", out.Profile.FirstName)
		require.NotNil(t, out.Profile.TgUserID)
		assert.Equal(t, int64(5511), *out.Profile.TgUserID)

		_, err = f.store.Get(context.Background(), "user_data:998931159963")
		assert.NoError(t, err)
	})

	t.Run("keeps an existing link", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998931159963").Return(existingAccount(), nil)

		out, err := f.uc.ContactEstablished(context.Background(), ContactEstablishedInput{PhoneNumber: "998931159963", TgUserID: 9999})
		require.NoError(t, err)
		assert.Equal(t, int64(5511), *out.Profile.TgUserID)
	})

	t.Run("unknown phone uses telegram names", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.EXPECT().GetAccountByPhone(gomock.Any(), "998901112233").Return(nil, goerror.ErrNotFound)

		out, err := f.uc.ContactEstablished(context.Background(), ContactEstablishedInput{
			PhoneNumber: "998901112233",
			TgUserID:    42,
			FirstName:   "Dilnoza",
		})
		require.NoError(t, err)
		assert.False(t, out.Registered)
		assert.Equal(t, entity.PendingProfile{PhoneNumber: "998901112233", FirstName: "Dilnoza", TgUserID: out.Profile.TgUserID}, out.Profile)
		assert.Equal(t, int64(42), *out.Profile.TgUserID)
	})
}

func TestUsecase_ContactByTelegram(t *testing.T) {
	f := newFixture(t, nil)

	f.db.EXPECT().GetAccountByTgUserID(gomock.Any(), int64(5511)).Return(existingAccount(), nil)
	f.db.EXPECT().GetAccountByTgUserID(gomock.Any(), int64(42)).Return(nil, goerror.ErrNotFound)

	out, err := f.uc.ContactByTelegram(context.Background(), ContactByTelegramInput{TgUserID: 5511})
	require.NoError(t, err)
	assert.Equal(t, "998931159963", out.Profile.PhoneNumber)

	_, err = f.uc.ContactByTelegram(context.Background(), ContactByTelegramInput{TgUserID: 42})
	assert.Equal(t, goerror.CodeNotFound, goerror.CodeOf(err))
}
