package messaging

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Memory delivers published messages to in-process consumers. Each
// subscriber group receives every message once; consumers sharing a group
// compete for it. Nacked messages are redelivered up to maxRedeliveries times.
type Memory struct {
	mu     sync.Mutex
	groups map[string]map[string]chan *memoryMessage
	closed bool
	seq    atomic.Int64
}

const (
	memoryBuffer    = 256
	maxRedeliveries = 3
)

func NewMemory() *Memory {
	return &Memory{groups: map[string]map[string]chan *memoryMessage{}}
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Memory) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if destination == "" {
		return PublishResult{}, errors.New("messaging: memory topic is required")
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return PublishResult{}, ErrClosed
	}
	chans := make([]chan *memoryMessage, 0, len(m.groups[destination]))
	for _, ch := range m.groups[destination] {
		chans = append(chans, ch)
	}
	m.mu.Unlock()

	offset := m.seq.Add(1)
	now := time.Now()
	for _, ch := range chans {
		mm := &memoryMessage{
			topic:   destination,
			offset:  offset,
			body:    append([]byte(nil), msg.Body...),
			key:     msg.Key,
			headers: append([]Header(nil), msg.Headers...),
			at:      now,
			requeue: ch,
		}
		select {
		case ch <- mm:
		case <-ctx.Done():
			return PublishResult{}, ctx.Err()
		}
	}

	return PublishResult{Topic: destination, Offset: offset, Timestamp: now}, nil
}

// Consume joins the group named by WithGroup or WithQueueGroup; without one
// the call gets a private group.
func (m *Memory) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	co := newConsumeOptions(opts...)
	group := co.group
	if group == "" {
		group = co.queueGroup
	}
	if group == "" {
		group = "private-" + strconv.FormatInt(m.seq.Add(1), 10)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.groups[source] == nil {
		m.groups[source] = map[string]chan *memoryMessage{}
	}
	ch, ok := m.groups[source][group]
	if !ok {
		ch = make(chan *memoryMessage, memoryBuffer)
		m.groups[source][group] = ch
	}
	m.mu.Unlock()

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case mm := <-ch:
					dispatch(ctx, "memory", handler, mm, co.autoAck)
				}
			}
		})
	}
	wg.Wait()

	return ctx.Err()
}

type memoryMessage struct {
	topic      string
	offset     int64
	body       []byte
	key        []byte
	headers    []Header
	at         time.Time
	deliveries int
	requeue    chan *memoryMessage
}

func (mm *memoryMessage) Body() []byte             { return mm.body }
func (mm *memoryMessage) Key() []byte              { return mm.key }
func (mm *memoryMessage) Headers() []Header        { return mm.headers }
func (mm *memoryMessage) Header(key string) string { return firstHeader(mm.headers, key) }
func (mm *memoryMessage) ID() string               { return mm.topic + "/" + strconv.FormatInt(mm.offset, 10) }
func (mm *memoryMessage) Topic() string            { return mm.topic }
func (mm *memoryMessage) Timestamp() time.Time     { return mm.at }
func (mm *memoryMessage) Ack(context.Context) error {
	return nil
}

func (mm *memoryMessage) Nack(context.Context) error {
	if mm.deliveries >= maxRedeliveries {
		return nil
	}

	next := *mm
	next.deliveries++
	select {
	case mm.requeue <- &next:
		return nil
	default:
		return errors.New("messaging: memory queue is full")
	}
}
