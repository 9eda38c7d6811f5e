package db

import (
	"context"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
)

// CreateAccount returns goerror.ErrConflict when the phone number is taken.
func (s *DB) CreateAccount(ctx context.Context, in entity.NewAccount) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.CreateAccount(ctx, createAccountParams{
		ID:          in.ID,
		PhoneNumber: in.PhoneNumber,
		TgUserID:    toInt8(in.TgUserID),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		IsVerified:  in.IsVerified,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toAccount(row), nil
}
