package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken string
}

// RefreshToken trades a refresh token for a new access token. The refresh
// token itself is not rotated.
func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.jwt.Verify(in.RefreshToken, jwt.KindRefresh)
	if errors.Is(err, jwt.ErrTokenExpired) {
		slog.WarnContext(ctx, "refresh token is expired")
		return nil, goerror.NewBusiness("invalid refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.WarnContext(ctx, "refresh token is malformed", "error", err)
		return nil, goerror.NewBusiness("invalid refresh token", goerror.CodeUnauthorized)
	}

	acc, err := s.repoDB.GetAccountByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account of refresh token not found", "account_id", clm.UserID)
		return nil, goerror.NewBusiness("invalid refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", clm.UserID, "error", err)
		return nil, backendError(err)
	}

	access, err := s.jwt.IssueAccess(jwt.Subject{UserID: acc.ID, PhoneNumber: acc.PhoneNumber})
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue access token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RefreshTokenOutput{AccessToken: access}, nil
}
