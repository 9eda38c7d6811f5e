package db

import (
	"context"
)

// LinkTelegram sets tg_user_id only when the account has none yet.
// It reports whether a row changed.
func (s *DB) LinkTelegram(ctx context.Context, accountID string, tgUserID int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "LinkTelegram")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.LinkAccountTelegram(ctx, accountID, tgUserID)
	if err != nil {
		return false, s.mapError(err)
	}

	return rows == 1, nil
}
