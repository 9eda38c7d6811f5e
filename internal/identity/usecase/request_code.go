package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

type RequestCodeInput struct {
	Profile entity.PendingProfile
}

type RequestCodeOutput struct {
	Code string
	TTL  time.Duration
}

// RequestCode mints a code for the profile's phone number and parks both the
// code and the profile snapshot in the ephemeral store. A live code with the
// same digits is overwritten.
func (s *Usecase) RequestCode(ctx context.Context, in RequestCodeInput) (*RequestCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "RequestCode")
	defer span.End()

	in.Profile.PhoneNumber = entity.NormalizePhone(in.Profile.PhoneNumber)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp", "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.otpTTL()
	phone := in.Profile.PhoneNumber

	if err := s.repoCache.PutPendingOTP(ctx, entity.PendingOTP{Code: code, PhoneNumber: phone}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to cache pending otp", "phone_number", phone, "error", err)
		return nil, backendError(err)
	}

	if err := s.repoCache.PutPendingProfile(ctx, in.Profile, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to cache pending profile", "phone_number", phone, "error", err)
		return nil, backendError(err)
	}

	slog.InfoContext(ctx, "otp issued", "phone_number", phone, "ttl", ttl.String())

	return &RequestCodeOutput{Code: code, TTL: ttl}, nil
}
