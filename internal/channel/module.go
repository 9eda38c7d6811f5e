package channel

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shandysiswandi/tgauth/internal/channel/inbound"
	"github.com/shandysiswandi/tgauth/internal/channel/outbound/state"
	"github.com/shandysiswandi/tgauth/internal/channel/outbound/telegram"
	"github.com/shandysiswandi/tgauth/internal/channel/usecase"
	identityuc "github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/tgauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/messaging"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context            `validate:"required"`
	Bot        *tgbotapi.BotAPI           `validate:"required"`
	Identity   *identityuc.Usecase        `validate:"required"`
	Store      ephemeral.Store            `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	// Idempotency deduplicates redelivered updates; nil disables it.
	Idempotency idempotency.Idempotency
}

// New wires the Telegram channel: the long polling loop and the welcome
// message consumer both run on dep.Goroutine until dep.Ctx is done.
func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	sender := telegram.NewSender(dep.Bot, telegram.Config{
		MaxRetries: uint64(max(dep.Config.GetInt("modules.channel.send.max_retries"), 0)),
		BaseDelay:  dep.Config.GetMillisecond("modules.channel.send.base_delay_ms"),
	}, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Identity:   dep.Identity,
		RepoState:  state.NewStore(dep.Store, dep.Instrument),
		Sender:     sender,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	poller := inbound.NewPoller(dep.Bot, uc, dep.Idempotency, dep.UUID, dep.Instrument, inbound.PollerConfig{
		Timeout:     dep.Config.GetInt("modules.channel.poll.timeout_seconds"),
		Limit:       dep.Config.GetInt("modules.channel.poll.limit"),
		Concurrency: dep.Config.GetInt("modules.channel.poll.concurrency"),
	})
	dep.Goroutine.Go(dep.Ctx, poller.Run)

	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	slog.InfoContext(dep.Ctx, "telegram channel started", "bot", dep.Bot.Self.UserName)

	return nil
}
