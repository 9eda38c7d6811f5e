package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/codes"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 200 * time.Millisecond
	maxDelay          = 5 * time.Second

	buttonShareContact = "Share phone number"
	buttonLogin        = "/login"
	buttonHelp         = "/help"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Config struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

// Sender delivers replies through the Bot API, retrying rate limits and
// server side failures.
type Sender struct {
	bot        botAPI
	ins        instrument.Instrumentation
	maxRetries uint64
	baseDelay  time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewSender(bot botAPI, cfg Config, ins instrument.Instrumentation) *Sender {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}

	return &Sender{
		bot:        bot,
		ins:        ins,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		sleep:      sleepContext,
	}
}

func (s *Sender) Send(ctx context.Context, reply entity.Reply) (err error) {
	ctx, span := s.ins.Tracer("channel.outbound.telegram").Start(ctx, "Send")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	msg := tgbotapi.NewMessage(reply.ChatID, reply.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup := keyboard(reply.Keyboard); markup != nil {
		msg.ReplyMarkup = markup
	}

	b := retry.NewFibonacci(s.baseDelay)
	b = retry.WithMaxRetries(s.maxRetries, b)
	b = retry.WithCappedDuration(maxDelay, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		_, err := s.bot.Send(msg)
		if err == nil {
			return nil
		}

		apiErr, ok := asAPIError(err)
		if !ok {
			slog.WarnContext(ctx, "telegram send failed, retrying", "chat_id", reply.ChatID, "error", err)
			return retry.RetryableError(err)
		}

		switch {
		case apiErr.RetryAfter > 0:
			slog.WarnContext(ctx, "telegram rate limited", "chat_id", reply.ChatID, "retry_after", apiErr.RetryAfter)
			if err := s.sleep(ctx, time.Duration(apiErr.RetryAfter)*time.Second); err != nil {
				return err
			}
			return retry.RetryableError(err)

		case apiErr.Code >= 500:
			return retry.RetryableError(err)

		case msg.ParseMode != "" && strings.Contains(apiErr.Message, "can't parse entities"):
			// user supplied names can break Markdown; fall back to plain text
			msg.ParseMode = ""
			return retry.RetryableError(err)

		default:
			return err
		}
	})
}

func asAPIError(err error) (*tgbotapi.Error, bool) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func keyboard(kb entity.Keyboard) any {
	switch kb {
	case entity.KeyboardContact:
		markup := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(buttonShareContact)),
		)
		markup.OneTimeKeyboard = true
		return markup
	case entity.KeyboardMain:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(buttonLogin)),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(buttonHelp)),
		)
	case entity.KeyboardRemove:
		return tgbotapi.NewRemoveKeyboard(true)
	default:
		return nil
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
