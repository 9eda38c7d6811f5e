package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/tgauth/internal/channel/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/messaging"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/shared/event"
)

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg messaging.Message) context.Context {
	if cID := msg.Header(messaging.HeaderCorrelationID); cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// AccountRegisteredWelcome drops messages it cannot parse; a failed send is
// returned so the broker redelivers.
func (h *MQHandler) AccountRegisteredWelcome(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("channel.inbound.mq").Start(ctx, "AccountRegisteredWelcome")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: account registered", "msg_body", string(body))

	var payload event.AccountRegisteredMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of account registered", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeAccountRegistered(ctx, usecase.ConsumeAccountRegisteredInput{
		AccountID:   payload.AccountID,
		PhoneNumber: payload.PhoneNumber,
		FirstName:   payload.FirstName,
		TgUserID:    payload.TgUserID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume account registered", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
