package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
)

type DB struct {
	query *queries
	ins   instrument.Instrumentation
}

func NewDB(conn DBTX, ins instrument.Instrumentation) *DB {
	return &DB{
		query: &queries{db: conn},
		ins:   ins,
	}
}

// - 23505 unique violation → goerror.ErrConflict
// - 08xxx connection exceptions → goerror.ErrUnavailable
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return goerror.ErrConflict
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			return errors.Join(goerror.ErrUnavailable, err)
		}
	}

	if pgconn.Timeout(err) {
		return errors.Join(goerror.ErrUnavailable, err)
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func toAccount(r accountRow) *entity.Account {
	acc := &entity.Account{
		ID:           r.ID,
		PhoneNumber:  r.PhoneNumber,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.TgUserID.Valid {
		acc.TgUserID = &r.TgUserID.Int64
	}
	if r.Email.Valid {
		acc.Email = &r.Email.String
	}
	return acc
}

func toInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
