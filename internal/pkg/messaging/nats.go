package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	ErrNATSURLRequired     = errors.New("messaging: nats url is required")
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
)

const drainTimeout = 10 * time.Second

type NATSConfig struct {
	URL     string
	Options []nats.Option
}

// NATS publishes to subjects and consumes through queue subscriptions.
type NATS struct {
	conn   *nats.Conn
	closed atomic.Bool
}

func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains in-flight messages on every subscription, then closes the connection.
func (n *NATS) Close() error {
	if n.closed.Swap(true) {
		return nil
	}
	return n.conn.Drain()
}

func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}
	if n.closed.Load() {
		return PublishResult{}, ErrClosed
	}

	nmsg := nats.NewMsg(destination)
	nmsg.Data = msg.Body
	for _, h := range msg.Headers {
		if h.Key != "" {
			nmsg.Header.Add(h.Key, string(h.Value))
		}
	}

	if err := n.conn.PublishMsg(nmsg); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats flush: %w", err)
	}

	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return errors.New("messaging: nats handler is required")
	}
	if n.closed.Load() {
		return ErrClosed
	}

	co := newConsumeOptions(opts...)
	msgCh := make(chan *nats.Msg, co.concurrency)

	sub, err := n.conn.QueueSubscribe(source, co.queueGroup, func(m *nats.Msg) {
		select {
		case msgCh <- m:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range msgCh {
				dispatch(ctx, "nats", handler, &natsMessage{msg: m, receivedAt: time.Now()}, co.autoAck)
			}
		})
	}

	<-ctx.Done()

	// Drain returns before the pending callbacks run; wait for the close.
	done := sub.StatusChanged(nats.SubscriptionClosed)
	drainErr := sub.Drain()
	if drainErr == nil {
		select {
		case <-done:
		case <-time.After(drainTimeout):
		}
	}
	close(msgCh)
	wg.Wait()

	if errors.Is(drainErr, nats.ErrConnectionClosed) || errors.Is(drainErr, nats.ErrConnectionDraining) {
		drainErr = nil
	}
	return errors.Join(ctx.Err(), drainErr)
}

type natsMessage struct {
	msg        *nats.Msg
	receivedAt time.Time
}

func (m *natsMessage) Body() []byte { return m.msg.Data }
func (m *natsMessage) Key() []byte  { return nil }

func (m *natsMessage) Headers() []Header {
	var out []Header
	for k, values := range m.msg.Header {
		for _, v := range values {
			out = append(out, Header{Key: k, Value: []byte(v)})
		}
	}
	return out
}

func (m *natsMessage) Header(key string) string {
	if m.msg.Header == nil {
		return ""
	}
	return m.msg.Header.Get(key)
}

func (m *natsMessage) ID() string           { return m.msg.Header.Get(nats.MsgIdHdr) }
func (m *natsMessage) Topic() string        { return m.msg.Subject }
func (m *natsMessage) Timestamp() time.Time { return m.receivedAt }

// Ack and Nack are no-ops on core NATS subjects, which have no reply inbox.
func (m *natsMessage) Ack(context.Context) error {
	return ignoreNoReply(m.msg.Ack())
}

func (m *natsMessage) Nack(context.Context) error {
	return ignoreNoReply(m.msg.Nak())
}

func ignoreNoReply(err error) error {
	if errors.Is(err, nats.ErrMsgNoReply) || errors.Is(err, nats.ErrMsgNotBound) {
		return nil
	}
	return err
}
