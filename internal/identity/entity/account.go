package entity

import (
	"strings"
	"time"
)

// Account is a registered user, identified by phone number.
type Account struct {
	ID           string
	PhoneNumber  string
	TgUserID     *int64
	FirstName    string
	LastName     string
	Email        *string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the name parts, falling back to the phone number.
func (a Account) FullName() string {
	if name := strings.TrimSpace(a.FirstName + " " + a.LastName); name != "" {
		return name
	}
	return a.PhoneNumber
}

// HasPassword reports whether password login is possible for the account.
func (a Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// NewAccount holds the columns written when an account is created.
type NewAccount struct {
	ID          string
	PhoneNumber string
	TgUserID    *int64
	FirstName   string
	LastName    string
	IsVerified  bool
}

// NormalizePhone trims whitespace and a leading '+'.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(strings.TrimSpace(phone), "+")
}
