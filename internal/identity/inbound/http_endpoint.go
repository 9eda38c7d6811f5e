package inbound

import (
	"github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication and profile workflows.
type HTTPEndpoint struct {
	uc uc
}

// OTPLogin redeems a code minted by the Telegram bot.
// @Summary Login with a one-time code
// @Description Redeems a code delivered by the bot. The account is created on first use.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OTPLoginRequest true "OTP payload"
// @Success 200 {object} router.successResponse{data=OTPLoginResponse} "Tokens and account"
// @Failure 400 {object} router.errorResponse "Malformed request body or code"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 503 {object} router.errorResponse "Store unavailable, retry"
// @Router /api/v1/auth/otp [post]
func (h *HTTPEndpoint) OTPLogin(r *router.Request) (any, error) {
	var req OTPLoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RedeemCode(r.Context(), usecase.RedeemCodeInput{OTP: req.OTP})
	if err != nil {
		return nil, err
	}

	return OTPLoginResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Account:      toAccountResponse(resp.Account),
		IsNewAccount: resp.IsNewAccount,
	}, nil
}

// Login authenticates with phone number and password.
// @Summary Login with password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse}
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Account:      toAccountResponse(resp.Account),
	}, nil
}

// RefreshToken issues a new access token.
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token payload"
// @Success 200 {object} router.successResponse{data=RefreshTokenResponse}
// @Failure 401 {object} router.errorResponse "Invalid refresh token"
// @Router /api/v1/auth/refresh [post]
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return RefreshTokenResponse{AccessToken: resp.AccessToken}, nil
}

// Logout acknowledges a client-side logout.
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=LogoutResponse}
// @Router /api/v1/auth/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	if err := h.uc.Logout(r.Context()); err != nil {
		return nil, err
	}

	return LogoutResponse{}, nil
}

// Profile returns the authenticated account.
// @Summary Current account
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=AccountResponse}
// @Router /api/v1/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	acc, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return toAccountResponse(acc), nil
}
