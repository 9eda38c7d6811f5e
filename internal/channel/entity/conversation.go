package entity

import identity "github.com/shandysiswandi/tgauth/internal/identity/entity"

// Step is where a chat is in the login conversation.
type Step string

const (
	StepNone            Step = ""
	StepAwaitingContact Step = "awaiting_contact"
	StepReady           Step = "ready"
)

// Conversation is persisted per chat under "tg_state:<chatID>" so a restart
// does not strand a user halfway through.
type Conversation struct {
	Step    Step                     `json:"step"`
	Profile *identity.PendingProfile `json:"profile,omitempty"`
}
