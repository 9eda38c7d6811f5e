package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

func (s *Usecase) Profile(ctx context.Context) (*entity.Account, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.repoDB.GetAccountByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "account_id", clm.UserID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", clm.UserID, "error", err)
		return nil, backendError(err)
	}

	return acc, nil
}
