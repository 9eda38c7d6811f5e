package entity

// Update is an incoming chat message, already detached from the bot SDK.
type Update struct {
	ID      int
	ChatID  int64
	From    User
	Text    string
	Command string
	Contact *Contact
}

type User struct {
	ID        int64
	FirstName string
	LastName  string
}

// Contact is a phone number shared through the contact button.
type Contact struct {
	PhoneNumber string
	// UserID is the Telegram user the contact belongs to; zero when the
	// contact is not a Telegram user.
	UserID    int64
	FirstName string
	LastName  string
}

// Keyboard selects the reply keyboard attached to an outgoing message.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardContact
	KeyboardMain
	KeyboardRemove
)

// Reply is an outgoing chat message. Text is Markdown.
type Reply struct {
	ChatID   int64
	Text     string
	Keyboard Keyboard
}
