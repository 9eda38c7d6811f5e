package inbound

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"
	"go.uber.org/atomic"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/tgauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
)

const (
	defaultPollTimeout = 10
	defaultPollLimit   = 100
	defaultConcurrency = 8

	keyPrefixUpdate = "tg_update:"
	updateStateTTL  = 24 * time.Hour
)

var ErrPollerRunning = errors.New("channel: poller is already running")

type updatesAPI interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

type PollerConfig struct {
	// Timeout is the long polling timeout in seconds.
	Timeout int
	Limit   int
	// Concurrency bounds how many chats of one batch are served at once.
	Concurrency int
}

// Poller long-polls the Bot API. Updates of one chat are handled in order;
// different chats of a batch run concurrently. The next batch is requested
// only after the current one finished, so the acknowledged offset never runs
// ahead of the handled updates.
type Poller struct {
	bot     updatesAPI
	uc      uc
	idem    idempotency.Idempotency
	uuid    uid.StringID
	ins     instrument.Instrumentation
	cfg     PollerConfig
	offset  int
	running *atomic.Bool
}

// NewPoller builds a poller. idem may be nil, in which case redelivered
// updates are handled again.
func NewPoller(bot updatesAPI, u uc, idem idempotency.Idempotency, uuid uid.StringID, ins instrument.Instrumentation, cfg PollerConfig) *Poller {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultPollTimeout
	}
	if cfg.Limit <= 0 || cfg.Limit > 100 {
		cfg.Limit = defaultPollLimit
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}

	return &Poller{
		bot:     bot,
		uc:      u,
		idem:    idem,
		uuid:    uuid,
		ins:     ins,
		cfg:     cfg,
		running: atomic.NewBool(false),
	}
}

// Run polls until ctx is done. Failed polls back off and retry forever.
func (p *Poller) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrPollerRunning
	}
	defer p.running.Store(false)

	slog.InfoContext(ctx, "telegram poller started", "timeout", p.cfg.Timeout, "limit", p.cfg.Limit)

	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := p.poll(ctx); err != nil {
				slog.WarnContext(ctx, "telegram poll failed", "offset", p.offset, "error", err)
				return retry.RetryableError(err)
			}
		}
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.InfoContext(ctx, "telegram poller stopped")
		return nil
	}

	return err
}

func (p *Poller) poll(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(p.offset)
	cfg.Timeout = p.cfg.Timeout
	cfg.Limit = p.cfg.Limit
	cfg.AllowedUpdates = []string{"message"}

	updates, err := p.bot.GetUpdates(cfg)
	if err != nil {
		return err
	}

	p.dispatch(ctx, updates)

	for _, u := range updates {
		if u.UpdateID >= p.offset {
			p.offset = u.UpdateID + 1
		}
	}

	return nil
}

func (p *Poller) dispatch(ctx context.Context, updates []tgbotapi.Update) {
	var order []int64
	byChat := make(map[int64][]tgbotapi.Update)
	for _, u := range updates {
		if u.Message == nil || u.Message.Chat == nil {
			continue
		}
		id := u.Message.Chat.ID
		if _, ok := byChat[id]; !ok {
			order = append(order, id)
		}
		byChat[id] = append(byChat[id], u)
	}

	batch := goroutine.NewManager(p.cfg.Concurrency)
	for _, chatID := range order {
		work := func(ctx context.Context) error {
			for _, u := range byChat[chatID] {
				p.process(ctx, u)
			}
			return nil
		}
		if err := batch.TryGo(ctx, work); err != nil {
			_ = work(ctx)
		}
	}
	_ = batch.Wait()
}

func (p *Poller) process(ctx context.Context, u tgbotapi.Update) {
	upd, ok := toUpdate(u)
	if !ok {
		return
	}

	ctx = instrument.SetCorrelationID(ctx, p.uuid.Generate())
	ctx, span := p.ins.Tracer("channel.inbound.poller").Start(ctx, "HandleUpdate")
	defer span.End()

	handle := func(ctx context.Context) error { return p.uc.HandleUpdate(ctx, upd) }

	var err error
	if p.idem != nil {
		key := keyPrefixUpdate + strconv.Itoa(u.UpdateID)
		err = p.idem.Exec(ctx, key, handle, idempotency.WithStateTTL(updateStateTTL))
	} else {
		err = handle(ctx)
	}

	switch {
	case errors.Is(err, idempotency.ErrAlreadyCompleted), errors.Is(err, idempotency.ErrAlreadyInProgress):
		slog.DebugContext(ctx, "skip duplicate telegram update", "update_id", u.UpdateID)
	case err != nil:
		slog.ErrorContext(ctx, "failed to handle telegram update", "update_id", u.UpdateID, "chat_id", upd.ChatID, "error", err)
	}
}

// toUpdate keeps private messages from users. Channel posts, edits and
// service messages without a sender are ignored.
func toUpdate(u tgbotapi.Update) (entity.Update, bool) {
	msg := u.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return entity.Update{}, false
	}

	upd := entity.Update{
		ID:     u.UpdateID,
		ChatID: msg.Chat.ID,
		From: entity.User{
			ID:        msg.From.ID,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		},
		Text: msg.Text,
	}
	if msg.IsCommand() {
		upd.Command = msg.Command()
	}
	if c := msg.Contact; c != nil {
		upd.Contact = &entity.Contact{
			PhoneNumber: c.PhoneNumber,
			UserID:      c.UserID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
		}
	}

	return upd, true
}
