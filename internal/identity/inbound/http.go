package inbound

import (
	"context"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
	"github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/router"
)

type uc interface {
	RedeemCode(ctx context.Context, in usecase.RedeemCodeInput) (*usecase.RedeemCodeOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*entity.Account, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/otp", end.OTPLogin)
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/refresh", end.RefreshToken)
	r.POST("/api/v1/auth/logout", end.Logout) // need authenticated

	r.GET("/api/v1/profile", end.Profile) // need authenticated
}
