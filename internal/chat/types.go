package chat

// SendInput is the input for sending one message.
type SendInput struct {
	Message string `json:"message"` // The user's question, plain text
}

// SendOutput is the result of a successful send. Answer is the
// display-ready formatted text; the session history keeps the raw
// answer.
type SendOutput struct {
	Answer       string `json:"answer"`
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
}

// ContextInfo describes the current conversation window. Derived on
// demand, never stored.
type ContextInfo struct {
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
	HasContext   bool   `json:"has_context"`
}
