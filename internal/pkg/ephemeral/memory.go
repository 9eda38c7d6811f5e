package ephemeral

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shandysiswandi/tgauth/internal/pkg/clock"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// sweepEvery is how many writes pass between full scans for expired keys.
const sweepEvery = 128

// Memory is a single-process Store for local runs and tests. Expired keys
// are dropped when touched and by a scan on every sweepEvery-th Put.
type Memory struct {
	mu     sync.Mutex
	m      map[string]entry
	clock  clock.Clocker
	writes int
}

func NewMemory(clk clock.Clocker) *Memory {
	if clk == nil {
		clk = clock.New()
	}
	return &Memory{m: make(map[string]entry), clock: clk}
}

func (s *Memory) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", goerror.ErrUnavailable, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ephemeral: ttl must be positive for key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.writes++
	if s.writes%sweepEvery == 0 {
		s.sweep(now)
	}
	s.m[key] = entry{value: append([]byte(nil), value...), expiresAt: now.Add(ttl)}
	return nil
}

// sweep must be called with mu held.
func (s *Memory) sweep(now time.Time) {
	for k, e := range s.m {
		if !e.expiresAt.After(now) {
			delete(s.m, k)
		}
	}
}

func (s *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	return s.lookup(ctx, key, false)
}

func (s *Memory) Take(ctx context.Context, key string) ([]byte, error) {
	return s.lookup(ctx, key, true)
}

func (s *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", goerror.ErrUnavailable, err)
	}

	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Memory) lookup(ctx context.Context, key string, remove bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", goerror.ErrUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	if !e.expiresAt.After(s.clock.Now()) {
		delete(s.m, key)
		return nil, goerror.ErrNotFound
	}

	if remove {
		delete(s.m, key)
	}
	return append([]byte(nil), e.value...), nil
}
