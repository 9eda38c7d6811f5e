package inbound

import (
	"context"

	"github.com/shandysiswandi/tgauth/internal/channel/entity"
	"github.com/shandysiswandi/tgauth/internal/channel/usecase"
)

type uc interface {
	HandleUpdate(ctx context.Context, upd entity.Update) error
	ConsumeAccountRegistered(ctx context.Context, in usecase.ConsumeAccountRegisteredInput) error
}
