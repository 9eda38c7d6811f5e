package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/tgauth/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is multiplied by NumCPU when NewManager gets a non-positive limit.
const DefaultMaxGoroutine int = 100

// ErrLimitReached is returned by TryGo when every slot is taken.
var ErrLimitReached = errors.New("goroutine: maximum goroutine limit reached")

// ErrClosed is returned by TryGo after Wait has been called.
var ErrClosed = errors.New("goroutine: manager is closed")

// Manager runs background work with a concurrency cap and collects task errors.
//
// After Wait is called the manager refuses new work.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	stateMu sync.RWMutex
	closed  bool
}

func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go schedules f. Work that cannot be scheduled is dropped with a warning.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	if err := g.TryGo(ctx, f); err != nil {
		slog.WarnContext(ctx, "goroutine not started", "error", err)
	}
}

// TryGo schedules f or reports why it could not.
func (g *Manager) TryGo(ctx context.Context, f func(ctx context.Context) error) error {
	if g == nil {
		return ErrClosed
	}

	g.stateMu.RLock()
	defer g.stateMu.RUnlock()

	if g.closed {
		return ErrClosed
	}

	select {
	case g.sema <- struct{}{}:
	default:
		return ErrLimitReached
	}

	g.wg.Go(func() {
		defer func() {
			<-g.sema

			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", string(stack))
				}
			}
		}()

		if ctx.Err() != nil {
			slog.WarnContext(ctx, "goroutine canceled", "because", ctx.Err())
			return
		}

		if err := f(ctx); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
	})

	return nil
}

// Wait closes the manager, blocks until running work finishes and joins task errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.stateMu.Lock()
	g.closed = true
	g.stateMu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
