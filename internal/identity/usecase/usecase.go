package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/hash"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
	"github.com/shandysiswandi/tgauth/internal/pkg/otp"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

//go:generate mockgen -source=usecase.go -destination=mock_usecase_test.go -package=usecase

const defaultOTPTTL = 120 * time.Second

type AccountRegisteredEvent struct {
	AccountID   string
	PhoneNumber string
	FirstName   string
	TgUserID    *int64
}

type repoMessaging interface {
	PublishAccountRegistered(ctx context.Context, msg AccountRegisteredEvent) error
}

type repoDB interface {
	GetAccountByPhone(ctx context.Context, phone string) (*entity.Account, error)
	GetAccountByID(ctx context.Context, id string) (*entity.Account, error)
	GetAccountByTgUserID(ctx context.Context, tgUserID int64) (*entity.Account, error)
	CreateAccount(ctx context.Context, in entity.NewAccount) (*entity.Account, error)
	LinkTelegram(ctx context.Context, accountID string, tgUserID int64) (bool, error)
}

type repoCache interface {
	PutPendingOTP(ctx context.Context, rec entity.PendingOTP, ttl time.Duration) error
	TakePendingOTP(ctx context.Context, code string) (*entity.PendingOTP, error)
	PutPendingProfile(ctx context.Context, rec entity.PendingProfile, ttl time.Duration) error
	GetPendingProfile(ctx context.Context, phone string) (*entity.PendingProfile, error)
	DeletePendingProfile(ctx context.Context, phone string) error
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hasher
	uuid          uid.StringID
	otp           otp.Generator
	jwt           jwt.Issuer
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hasher
	UUID          uid.StringID
	OTP           otp.Generator
	JWT           jwt.Issuer
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uuid:          dep.UUID,
		otp:           dep.OTP,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// otpTTL is read on every call so a config reload applies to the next code.
func (s *Usecase) otpTTL() time.Duration {
	if ttl := s.cfg.GetSecond("modules.identity.otp.ttl_seconds"); ttl > 0 {
		return ttl
	}
	return defaultOTPTTL
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// issueTokens mints the access and refresh pair for acc.
func (s *Usecase) issueTokens(ctx context.Context, acc *entity.Account) (access, refresh string, err error) {
	sub := jwt.Subject{UserID: acc.ID, PhoneNumber: acc.PhoneNumber}

	access, err = s.jwt.IssueAccess(sub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue access token", "account_id", acc.ID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	refresh, err = s.jwt.IssueRefresh(sub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue refresh token", "account_id", acc.ID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	return access, refresh, nil
}

// backendError keeps a transient store or database fault retryable for the client.
func backendError(err error) error {
	if errors.Is(err, goerror.ErrUnavailable) {
		return goerror.NewUnavailable(err)
	}
	return goerror.NewServer(err)
}

func profileFromAccount(acc *entity.Account) entity.PendingProfile {
	return entity.PendingProfile{
		AccountID:   acc.ID,
		PhoneNumber: acc.PhoneNumber,
		FirstName:   acc.FirstName,
		LastName:    acc.LastName,
		TgUserID:    acc.TgUserID,
		IsVerified:  acc.IsVerified,
	}
}
