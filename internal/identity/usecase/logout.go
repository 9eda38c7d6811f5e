package usecase

import (
	"context"
	"log/slog"
)

// Logout only acknowledges the request; tokens are stateless and the client
// discards them.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "account logged out", "account_id", clm.UserID)
	return nil
}
