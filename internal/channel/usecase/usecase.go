package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"text/template"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	identityuc "github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
)

//go:generate mockgen -source=usecase.go -destination=mock_usecase_test.go -package=usecase

const defaultConversationTTL = 30 * 24 * time.Hour

type identityService interface {
	ContactEstablished(ctx context.Context, in identityuc.ContactEstablishedInput) (*identityuc.ContactOutput, error)
	ContactByTelegram(ctx context.Context, in identityuc.ContactByTelegramInput) (*identityuc.ContactOutput, error)
	RequestCode(ctx context.Context, in identityuc.RequestCodeInput) (*identityuc.RequestCodeOutput, error)
}

type repoState interface {
	GetConversation(ctx context.Context, chatID int64) (*entity.Conversation, error)
	PutConversation(ctx context.Context, chatID int64, conv entity.Conversation, ttl time.Duration) error
}

type repoSender interface {
	Send(ctx context.Context, reply entity.Reply) error
}

type Usecase struct {
	identity  identityService
	repoState repoState
	sender    repoSender
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	Identity   identityService
	RepoState  repoState
	Sender     repoSender
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		identity:  dep.Identity,
		repoState: dep.RepoState,
		sender:    dep.Sender,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("channel.usecase").Start(ctx, name)
}

func (s *Usecase) conversationTTL() time.Duration {
	if ttl := s.cfg.GetDay("modules.channel.state_ttl_days"); ttl > 0 {
		return ttl
	}
	return defaultConversationTTL
}

// conversation returns the stored state of a chat, or an empty one when the
// chat is unknown or its record expired.
func (s *Usecase) conversation(ctx context.Context, chatID int64) (entity.Conversation, error) {
	conv, err := s.repoState.GetConversation(ctx, chatID)
	if errors.Is(err, goerror.ErrNotFound) {
		return entity.Conversation{}, nil
	}
	if err != nil {
		return entity.Conversation{}, err
	}
	return *conv, nil
}

func (s *Usecase) saveConversation(ctx context.Context, chatID int64, conv entity.Conversation) {
	if err := s.repoState.PutConversation(ctx, chatID, conv, s.conversationTTL()); err != nil {
		slog.WarnContext(ctx, "failed to save conversation state", "chat_id", chatID, "step", conv.Step, "error", err)
	}
}

func (s *Usecase) reply(ctx context.Context, chatID int64, kb entity.Keyboard, tpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}

	return s.sender.Send(ctx, entity.Reply{ChatID: chatID, Text: buf.String(), Keyboard: kb})
}

// replyFailure tells the user something went wrong and hands the cause back
// to the caller for logging.
func (s *Usecase) replyFailure(ctx context.Context, chatID int64, cause error) error {
	tpl := tplServerError
	if goerror.CodeOf(cause) == goerror.CodeUnavailable {
		tpl = tplUnavailable
	}
	if err := s.reply(ctx, chatID, entity.KeyboardNone, tpl, nil); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
