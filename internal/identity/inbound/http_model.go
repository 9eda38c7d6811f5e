package inbound

import (
	"time"

	"github.com/shandysiswandi/tgauth/internal/identity/entity"
)

type OTPLoginRequest struct {
	OTP string `json:"otp"`
}

type OTPLoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
	IsNewAccount bool            `json:"is_new_account"`
}

func (OTPLoginResponse) Message() string {
	return "Login successful"
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
}

func (LoginResponse) Message() string {
	return "Login successful"
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type LogoutResponse struct{}

func (LogoutResponse) Message() string {
	return "Successfully logged out"
}

type AccountResponse struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		PhoneNumber: acc.PhoneNumber,
		FirstName:   acc.FirstName,
		LastName:    acc.LastName,
		Email:       acc.Email,
		IsVerified:  acc.IsVerified,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.UpdatedAt,
	}
}
