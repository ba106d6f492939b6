package model

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation, tagged with its speaker role.
// Turns are immutable once appended to a session history; the only
// removal is the rollback of a trailing user turn after a failed send.
type Turn struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // RFC3339 UTC
}
