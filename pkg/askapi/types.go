package askapi

import "fmt"

// Turn is one conversation message in the wire format the ask endpoint
// expects.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// AskRequest is the body for POST /chat/ask. ConversationHistory
// carries the prior context window only; the current question travels
// in Question, never in the history.
type AskRequest struct {
	Question            string `json:"question"`
	SessionID           string `json:"session_id"`
	ConversationHistory []Turn `json:"conversation_history"`
	MaintainContext     bool   `json:"maintain_context"`
}

// AskResponse is the success body of POST /chat/ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// APIError is a non-2xx response from the ask endpoint. Detail carries
// the body's "detail" field when present, the raw body otherwise.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ask API error %d: %s", e.Status, e.Detail)
}
