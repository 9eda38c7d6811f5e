package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

const (
	prefixOTP     = "otp:"
	prefixProfile = "user_data:"
)

// Cache keeps the pending handshake records in the ephemeral store as JSON.
type Cache struct {
	store     ephemeral.Store
	validator validator.Validator
	ins       instrument.Instrumentation
}

func NewCache(store ephemeral.Store, v validator.Validator, ins instrument.Instrumentation) *Cache {
	return &Cache{store: store, validator: v, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) PutPendingOTP(ctx context.Context, rec entity.PendingOTP, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "PutPendingOTP")
	defer func() { c.endSpan(span, err) }()

	return c.put(ctx, prefixOTP+rec.Code, rec, ttl)
}

// TakePendingOTP reads and removes the record in one step.
func (c *Cache) TakePendingOTP(ctx context.Context, code string) (_ *entity.PendingOTP, err error) {
	ctx, span := c.startSpan(ctx, "TakePendingOTP")
	defer func() { c.endSpan(span, err) }()

	raw, err := c.store.Take(ctx, prefixOTP+code)
	if err != nil {
		return nil, err
	}

	var rec entity.PendingOTP
	if err := c.decode(ctx, prefixOTP, raw, &rec); err != nil {
		return nil, err
	}
	if rec.Code != code {
		slog.WarnContext(ctx, "discarding pending record stored under another code", "namespace", prefixOTP)
		return nil, fmt.Errorf("%w: stored code does not match key", goerror.ErrNotFound)
	}

	return &rec, nil
}

func (c *Cache) PutPendingProfile(ctx context.Context, rec entity.PendingProfile, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "PutPendingProfile")
	defer func() { c.endSpan(span, err) }()

	return c.put(ctx, prefixProfile+rec.PhoneNumber, rec, ttl)
}

func (c *Cache) GetPendingProfile(ctx context.Context, phone string) (_ *entity.PendingProfile, err error) {
	ctx, span := c.startSpan(ctx, "GetPendingProfile")
	defer func() { c.endSpan(span, err) }()

	raw, err := c.store.Get(ctx, prefixProfile+phone)
	if err != nil {
		return nil, err
	}

	var rec entity.PendingProfile
	if err := c.decode(ctx, prefixProfile, raw, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (c *Cache) DeletePendingProfile(ctx context.Context, phone string) (err error) {
	ctx, span := c.startSpan(ctx, "DeletePendingProfile")
	defer func() { c.endSpan(span, err) }()

	return c.store.Delete(ctx, prefixProfile+phone)
}

func (c *Cache) put(ctx context.Context, key string, rec any, ttl time.Duration) error {
	if err := c.validator.Validate(rec); err != nil {
		return fmt.Errorf("cache: refusing to store invalid record: %w", err)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.store.Put(ctx, key, raw, ttl)
}

// decode treats an unreadable record as absent; it can never be redeemed.
func (c *Cache) decode(ctx context.Context, namespace string, raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.WarnContext(ctx, "discarding undecodable pending record", "namespace", namespace, "error", err)
		return fmt.Errorf("%w: %w", goerror.ErrNotFound, err)
	}

	if err := c.validator.Validate(dst); err != nil {
		slog.WarnContext(ctx, "discarding invalid pending record", "namespace", namespace, "error", err)
		return fmt.Errorf("%w: %w", goerror.ErrNotFound, err)
	}

	return nil
}
