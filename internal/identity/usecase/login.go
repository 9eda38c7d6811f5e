package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

type LoginInput struct {
	PhoneNumber string `validate:"required,phone"`
	Password    string `validate:"required"`
}

type LoginOutput struct {
	Account      *entity.Account
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.PhoneNumber = entity.NormalizePhone(in.PhoneNumber)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByPhone(ctx, in.PhoneNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "phone_number", in.PhoneNumber)
		return nil, goerror.NewBusiness("invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone_number", in.PhoneNumber, "error", err)
		return nil, backendError(err)
	}

	if !acc.HasPassword() || !s.bcrypt.Verify(acc.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "password account not match", "account_id", acc.ID)
		return nil, goerror.NewBusiness("invalid credentials", goerror.CodeUnauthorized)
	}

	access, refresh, err := s.issueTokens(ctx, acc)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Account:      acc,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
