package db

import (
	"context"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
)

func (s *DB) GetAccountByPhone(ctx context.Context, phone string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByPhone")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetAccountByPhone(ctx, phone)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toAccount(row), nil
}

func (s *DB) GetAccountByID(ctx context.Context, id string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetAccountByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toAccount(row), nil
}

func (s *DB) GetAccountByTgUserID(ctx context.Context, tgUserID int64) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByTgUserID")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetAccountByTgUserID(ctx, tgUserID)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toAccount(row), nil
}
