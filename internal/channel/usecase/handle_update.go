package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	identityEntity "github.com/shandysiswandi/tgauth/internal/identity/entity"
	identityuc "github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

const (
	CommandStart = "start"
	CommandLogin = "login"
	CommandHelp  = "help"
)

// HandleUpdate reacts to one chat message. A shared contact wins over any
// command text.
func (s *Usecase) HandleUpdate(ctx context.Context, upd entity.Update) error {
	ctx, span := s.startSpan(ctx, "HandleUpdate")
	defer span.End()

	if upd.Contact != nil {
		return s.handleContact(ctx, upd)
	}

	switch upd.Command {
	case CommandStart:
		return s.handleStart(ctx, upd)
	case CommandLogin:
		return s.handleLogin(ctx, upd)
	case CommandHelp:
		return s.reply(ctx, upd.ChatID, entity.KeyboardNone, tplHelp, nil)
	default:
		return s.handleFallback(ctx, upd)
	}
}

func (s *Usecase) handleStart(ctx context.Context, upd entity.Update) error {
	conv, err := s.conversation(ctx, upd.ChatID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load conversation state", "chat_id", upd.ChatID, "error", err)
	}

	conv.Step = entity.StepAwaitingContact
	s.saveConversation(ctx, upd.ChatID, conv)

	return s.reply(ctx, upd.ChatID, entity.KeyboardContact, tplStart, upd.From)
}

func (s *Usecase) handleContact(ctx context.Context, upd entity.Update) error {
	contact := upd.Contact
	if contact.UserID != upd.From.ID {
		slog.WarnContext(ctx, "rejected contact of another user", "chat_id", upd.ChatID, "from_id", upd.From.ID, "contact_user_id", contact.UserID)
		return s.reply(ctx, upd.ChatID, entity.KeyboardContact, tplForeignContact, nil)
	}

	firstName, lastName := contact.FirstName, contact.LastName
	if firstName == "" {
		firstName, lastName = upd.From.FirstName, upd.From.LastName
	}

	out, err := s.identity.ContactEstablished(ctx, identityuc.ContactEstablishedInput{
		PhoneNumber: contact.PhoneNumber,
		TgUserID:    upd.From.ID,
		FirstName:   firstName,
		LastName:    lastName,
	})
	if goerror.CodeOf(err) == goerror.CodeInvalidInput {
		slog.WarnContext(ctx, "contact rejected by identity", "chat_id", upd.ChatID, "error", err)
		return s.reply(ctx, upd.ChatID, entity.KeyboardContact, tplInvalidContact, nil)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to establish contact", "chat_id", upd.ChatID, "error", err)
		return s.replyFailure(ctx, upd.ChatID, err)
	}

	s.saveConversation(ctx, upd.ChatID, entity.Conversation{Step: entity.StepReady, Profile: &out.Profile})

	return s.reply(ctx, upd.ChatID, entity.KeyboardMain, tplContactSaved, out.Profile)
}

func (s *Usecase) handleLogin(ctx context.Context, upd entity.Update) error {
	conv, err := s.conversation(ctx, upd.ChatID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load conversation state", "chat_id", upd.ChatID, "error", err)
	}

	profile := conv.Profile
	if conv.Step != entity.StepReady || profile == nil {
		profile, err = s.linkedProfile(ctx, upd)
		if err != nil {
			return err
		}
		if profile == nil {
			s.saveConversation(ctx, upd.ChatID, entity.Conversation{Step: entity.StepAwaitingContact})
			return s.reply(ctx, upd.ChatID, entity.KeyboardContact, tplNeedContact, nil)
		}
		s.saveConversation(ctx, upd.ChatID, entity.Conversation{Step: entity.StepReady, Profile: profile})
	}

	out, err := s.identity.RequestCode(ctx, identityuc.RequestCodeInput{Profile: *profile})
	if err != nil {
		slog.ErrorContext(ctx, "failed to request code", "chat_id", upd.ChatID, "error", err)
		return s.replyFailure(ctx, upd.ChatID, err)
	}

	minutes := int(out.TTL.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	return s.reply(ctx, upd.ChatID, entity.KeyboardMain, tplCode, map[string]any{
		"PhoneNumber": profile.PhoneNumber,
		"Code":        out.Code,
		"Minutes":     minutes,
		"LoginURL":    s.cfg.GetString("modules.channel.login_url"),
	})
}

// linkedProfile recovers the profile of an account already linked to the
// sender. It returns nil without error when no account is linked.
func (s *Usecase) linkedProfile(ctx context.Context, upd entity.Update) (*identityEntity.PendingProfile, error) {
	out, err := s.identity.ContactByTelegram(ctx, identityuc.ContactByTelegramInput{TgUserID: upd.From.ID})
	if goerror.CodeOf(err) == goerror.CodeNotFound {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up linked account", "chat_id", upd.ChatID, "tg_user_id", upd.From.ID, "error", err)
		return nil, s.replyFailure(ctx, upd.ChatID, err)
	}
	return &out.Profile, nil
}

func (s *Usecase) handleFallback(ctx context.Context, upd entity.Update) error {
	conv, err := s.conversation(ctx, upd.ChatID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load conversation state", "chat_id", upd.ChatID, "error", err)
	}

	if conv.Step == entity.StepReady {
		return s.reply(ctx, upd.ChatID, entity.KeyboardMain, tplFallbackReady, nil)
	}
	return s.reply(ctx, upd.ChatID, entity.KeyboardContact, tplFallbackNew, nil)
}
