package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

type RedeemCodeInput struct {
	OTP string `validate:"required,number"`
}

type RedeemCodeOutput struct {
	Account      *entity.Account
	IsNewAccount bool
	AccessToken  string
	RefreshToken string
}

// RedeemCode consumes a code exactly once and signs the caller in, creating
// the account on first use.
func (s *Usecase) RedeemCode(ctx context.Context, in RedeemCodeInput) (*RedeemCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "RedeemCode")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if n := s.otp.Length(); len(in.OTP) != n {
		return nil, goerror.NewInvalidInput(nil, "otp", fmt.Sprintf("otp must be %d digits", n))
	}

	rec, err := s.repoCache.TakePendingOTP(ctx, in.OTP)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp not found or expired")
		return nil, goerror.NewBusiness("invalid or expired code", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to take pending otp", "error", err)
		return nil, backendError(err)
	}

	profile, err := s.repoCache.GetPendingProfile(ctx, rec.PhoneNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "pending profile not found for redeemed otp", "phone_number", rec.PhoneNumber)
		return nil, goerror.NewBusiness("profile data not found, please request a new code", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get pending profile", "phone_number", rec.PhoneNumber, "error", err)
		return nil, backendError(err)
	}

	acc, isNew, err := s.resolveAccount(ctx, rec.PhoneNumber, profile)
	if err != nil {
		return nil, err
	}

	if err := s.repoCache.DeletePendingProfile(ctx, rec.PhoneNumber); err != nil {
		slog.WarnContext(ctx, "failed to delete pending profile", "phone_number", rec.PhoneNumber, "error", err)
	}

	access, refresh, err := s.issueTokens(ctx, acc)
	if err != nil {
		return nil, err
	}

	if isNew {
		if err := s.repoMessaging.PublishAccountRegistered(ctx, AccountRegisteredEvent{
			AccountID:   acc.ID,
			PhoneNumber: acc.PhoneNumber,
			FirstName:   acc.FirstName,
			TgUserID:    acc.TgUserID,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish account registered", "account_id", acc.ID, "error", err)
		}
	}

	slog.InfoContext(ctx, "otp redeemed", "account_id", acc.ID, "is_new_account", isNew)

	return &RedeemCodeOutput{
		Account:      acc,
		IsNewAccount: isNew,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// resolveAccount finds the account for phone or creates it from the snapshot.
// A concurrent creation surfaces as ErrConflict and resolves to the winner's row.
func (s *Usecase) resolveAccount(ctx context.Context, phone string, p *entity.PendingProfile) (*entity.Account, bool, error) {
	acc, err := s.repoDB.GetAccountByPhone(ctx, phone)
	if err == nil {
		return acc, false, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone_number", phone, "error", err)
		return nil, false, backendError(err)
	}

	acc, err = s.repoDB.CreateAccount(ctx, entity.NewAccount{
		ID:          s.uuid.Generate(),
		PhoneNumber: phone,
		TgUserID:    p.TgUserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		IsVerified:  true,
	})
	if err == nil {
		return acc, true, nil
	}
	if !errors.Is(err, goerror.ErrConflict) {
		slog.ErrorContext(ctx, "failed to repo create account", "phone_number", phone, "error", err)
		return nil, false, backendError(err)
	}

	slog.InfoContext(ctx, "account created concurrently, using existing row", "phone_number", phone)
	acc, err = s.repoDB.GetAccountByPhone(ctx, phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo re-fetch account by phone", "phone_number", phone, "error", err)
		return nil, false, backendError(err)
	}

	return acc, false, nil
}
