package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/messaging"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.channel.consumer_names")

	var consumers = []struct {
		name              string
		topic             string // destination where publisher sent message
		natsConsumerName  string // for nats
		kafkaConsumerName string // for kafka
		handler           messaging.Handler
	}{
		{
			name:              event.AccountRegisteredConsumerChannel,
			topic:             event.AccountRegisteredDestination,
			natsConsumerName:  event.AccountRegisteredConsumerChannel,
			kafkaConsumerName: event.AccountRegisteredConsumerChannel,
			handler:           mqHandler.AccountRegisteredWelcome,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithQueueGroup(consumer.natsConsumerName),
					messaging.WithGroup(consumer.kafkaConsumerName),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(4),
				)
			})
		}
	}
}
