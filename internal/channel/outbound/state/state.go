package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
)

const prefixState = "tg_state:"

// Store persists per-chat conversation state in the ephemeral store.
type Store struct {
	store ephemeral.Store
	ins   instrument.Instrumentation
}

func NewStore(store ephemeral.Store, ins instrument.Instrumentation) *Store {
	return &Store{store: store, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("channel.outbound.state").Start(ctx, name)
}

func key(chatID int64) string {
	return prefixState + strconv.FormatInt(chatID, 10)
}

func (s *Store) GetConversation(ctx context.Context, chatID int64) (*entity.Conversation, error) {
	ctx, span := s.startSpan(ctx, "GetConversation")
	defer span.End()

	raw, err := s.store.Get(ctx, key(chatID))
	if err != nil {
		return nil, err
	}

	var conv entity.Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		slog.WarnContext(ctx, "discarding undecodable conversation state", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("%w: %w", goerror.ErrNotFound, err)
	}

	return &conv, nil
}

func (s *Store) PutConversation(ctx context.Context, chatID int64, conv entity.Conversation, ttl time.Duration) error {
	ctx, span := s.startSpan(ctx, "PutConversation")
	defer span.End()

	raw, err := json.Marshal(conv)
	if err != nil {
		return err
	}

	return s.store.Put(ctx, key(chatID), raw, ttl)
}
