package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNATSMessage(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	raw := nats.NewMsg("account.registered")
	raw.Data = []byte(`{"account_id":"acc-1"}`)
	raw.Header.Set(HeaderCorrelationID, "cid-1")
	raw.Header.Set(nats.MsgIdHdr, "evt-1")

	var msg Message = &natsMessage{msg: raw, receivedAt: at}

	assert.Equal(t, []byte(`{"account_id":"acc-1"}`), msg.Body())
	assert.Nil(t, msg.Key())
	assert.Equal(t, "cid-1", msg.Header(HeaderCorrelationID))
	assert.Empty(t, msg.Header("missing"))
	assert.Contains(t, msg.Headers(), Header{Key: HeaderCorrelationID, Value: []byte("cid-1")})
	assert.Equal(t, "evt-1", msg.ID())
	assert.Equal(t, "account.registered", msg.Topic())
	assert.Equal(t, at, msg.Timestamp())

	// core subjects have no reply inbox
	require.NoError(t, msg.Ack(context.Background()))
	require.NoError(t, msg.Nack(context.Background()))
}

func TestNATSMessage_NoHeaders(t *testing.T) {
	msg := &natsMessage{msg: &nats.Msg{Subject: "account.registered"}}

	assert.Empty(t, msg.Header(HeaderCorrelationID))
	assert.Empty(t, msg.Headers())
	assert.Empty(t, msg.ID())
}

func TestKafkaMessage(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	var msg Message = &kafkaMessage{msg: kafka.Message{
		Topic:     "account.registered",
		Partition: 2,
		Offset:    41,
		Key:       []byte("998931159963"),
		Value:     []byte(`{"account_id":"acc-1"}`),
		Time:      at,
		Headers: []kafka.Header{
			{Key: HeaderCorrelationID, Value: []byte("cid-1")},
			{Key: HeaderCorrelationID, Value: []byte("cid-2")},
		},
	}}

	assert.Equal(t, []byte("998931159963"), msg.Key())
	assert.Equal(t, []byte(`{"account_id":"acc-1"}`), msg.Body())
	assert.Equal(t, "cid-1", msg.Header(HeaderCorrelationID))
	assert.Len(t, msg.Headers(), 2)
	assert.Equal(t, "account.registered/2/41", msg.ID())
	assert.Equal(t, "account.registered", msg.Topic())
	assert.Equal(t, at, msg.Timestamp())

	// offset stays uncommitted; no reader is touched
	assert.NoError(t, msg.Nack(context.Background()))
}
