package entity

// PendingOTP binds an issued code to the phone number it was minted for.
// It lives in the ephemeral store under "otp:<code>".
type PendingOTP struct {
	Code        string `json:"otp" validate:"required,number"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

// PendingProfile is the snapshot the channel collected before a code was
// redeemed. It lives under "user_data:<phone>" with the same TTL as the code.
type PendingProfile struct {
	AccountID   string `json:"id,omitempty"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TgUserID    *int64 `json:"tg_user_id,omitempty"`
	IsVerified  bool   `json:"is_verified"`
}
