package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

type ContactEstablishedInput struct {
	PhoneNumber string `validate:"required,phone"`
	TgUserID    int64  `validate:"required"`
	FirstName   string `validate:"max=150"`
	LastName    string `validate:"max=150"`
}

type ContactOutput struct {
	Profile entity.PendingProfile
	// Registered is true when an account already exists for the phone number.
	Registered bool
}

// ContactEstablished records a contact shared through the chat channel. An
// existing account without a Telegram id gets linked; the resulting snapshot
// is cached for the next code redemption.
func (s *Usecase) ContactEstablished(ctx context.Context, in ContactEstablishedInput) (*ContactOutput, error) {
	ctx, span := s.startSpan(ctx, "ContactEstablished")
	defer span.End()

	in.PhoneNumber = entity.NormalizePhone(in.PhoneNumber)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	out := &ContactOutput{}

	acc, err := s.repoDB.GetAccountByPhone(ctx, in.PhoneNumber)
	switch {
	case err == nil:
		if acc.TgUserID == nil {
			linked, err := s.repoDB.LinkTelegram(ctx, acc.ID, in.TgUserID)
			if err != nil {
				slog.WarnContext(ctx, "failed to link telegram account", "account_id", acc.ID, "error", err)
			} else if linked {
				acc.TgUserID = &in.TgUserID
			}
		}
		out.Profile = profileFromAccount(acc)
		out.Registered = true

	case errors.Is(err, goerror.ErrNotFound):
		out.Profile = entity.PendingProfile{
			PhoneNumber: in.PhoneNumber,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			TgUserID:    &in.TgUserID,
		}

	default:
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone_number", in.PhoneNumber, "error", err)
		return nil, backendError(err)
	}

	if err := s.repoCache.PutPendingProfile(ctx, out.Profile, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to cache pending profile", "phone_number", in.PhoneNumber, "error", err)
		return nil, backendError(err)
	}

	return out, nil
}

type ContactByTelegramInput struct {
	TgUserID int64 `validate:"required"`
}

// ContactByTelegram recovers the snapshot of an account already linked to a
// Telegram user, for chats that lost their conversation state.
func (s *Usecase) ContactByTelegram(ctx context.Context, in ContactByTelegramInput) (*ContactOutput, error) {
	ctx, span := s.startSpan(ctx, "ContactByTelegram")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByTgUserID(ctx, in.TgUserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("contact has not been shared yet", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by telegram id", "tg_user_id", in.TgUserID, "error", err)
		return nil, backendError(err)
	}

	return &ContactOutput{Profile: profileFromAccount(acc), Registered: true}, nil
}
