package event

// AccountRegisteredDestination is published once per account, when a code
// redemption created it.
const AccountRegisteredDestination = "account.registered"

const AccountRegisteredConsumerChannel = "account_registered_channel"

type AccountRegisteredMessage struct {
	AccountID   string `json:"account_id"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	TgUserID    *int64 `json:"tg_user_id,omitempty"`
}
