package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
)

type ConsumeAccountRegisteredInput struct {
	AccountID   string
	PhoneNumber string
	FirstName   string
	TgUserID    *int64
}

// ConsumeAccountRegistered greets a new account in its private chat.
// Accounts that are not linked to a Telegram user are skipped.
func (s *Usecase) ConsumeAccountRegistered(ctx context.Context, in ConsumeAccountRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeAccountRegistered")
	defer span.End()

	if in.TgUserID == nil || *in.TgUserID == 0 {
		slog.InfoContext(ctx, "skip welcome message, account has no telegram user", "account_id", in.AccountID)
		return nil
	}

	if err := s.reply(ctx, *in.TgUserID, entity.KeyboardNone, tplWelcome, in); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome message", "account_id", in.AccountID, "error", err)
		return err
	}

	return nil
}
