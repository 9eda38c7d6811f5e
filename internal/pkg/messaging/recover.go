package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/shandysiswandi/tgauth/internal/pkg/stacktrace"
)

// dispatch runs handler with panic recovery and applies auto-ack.
func dispatch(ctx context.Context, kind string, handler Handler, msg Message, autoAck bool) {
	err := func() (err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", string(stack))
				}
				err = fmt.Errorf("messaging: panic in %s handler: %v", kind, rvr)
			}
		}()
		return handler(ctx, msg)
	}()

	if !autoAck {
		return
	}

	settle := msg.Ack
	if err != nil {
		settle = msg.Nack
	}
	if ackErr := settle(ctx); ackErr != nil {
		slog.WarnContext(ctx, "failed to settle message", "kind", kind, "id", msg.ID(), "error", ackErr)
	}
}
