package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// HeaderCorrelationID carries the request correlation id across the broker.
const HeaderCorrelationID = "X-Correlation-ID"

// ErrUnsupported is returned for features the selected broker lacks.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// ErrClosed is returned after Close.
var ErrClosed = errors.New("messaging: client is closed")

type Messaging interface {
	io.Closer
	Publisher
	Consumer
}

type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

type Consumer interface {
	// Consume blocks until ctx is done or the subscription fails.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes one message. With auto-ack enabled a nil error acks the
// message and a non-nil error nacks it.
type Handler func(ctx context.Context, msg Message) error

type OutgoingMessage struct {
	Body []byte
	// Key selects the Kafka partition; other brokers ignore it.
	Key     []byte
	Headers []Header
}

type Header struct {
	Key   string
	Value []byte
}

type PublishResult struct {
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
}

// Message is a received message.
type Message interface {
	Body() []byte
	Key() []byte
	Headers() []Header
	// Header returns the first value for key, or "".
	Header(key string) string
	ID() string
	Topic() string
	Timestamp() time.Time
	Ack(ctx context.Context) error
	Nack(ctx context.Context) error
}

func firstHeader(headers []Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
