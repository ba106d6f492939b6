package chat

import (
	"context"

	"golang.org/x/oauth2"

	"chat-session-manager/pkg/authapi"
)

// UseCase defines the conversation session surface consumed by the
// delivery layer.
type UseCase interface {
	// SendMessage sends one user message with the current context
	// window attached and returns the formatted answer. On failure the
	// history is restored to its pre-call state.
	SendMessage(ctx context.Context, input SendInput) (SendOutput, error)

	// ClearContext starts a fresh conversation: new session ID, empty
	// history. Idempotent, no network call.
	ClearContext(ctx context.Context) ContextInfo

	// GetContextInfo reports the current session ID and window size.
	GetContextInfo(ctx context.Context) ContextInfo
}

// CredentialProvider issues, validates, and stores the bearer
// credential for the remote service. The session's renewal path uses
// Login and Verify only; GetStored and Clear belong to the
// bootstrap/auth-status surface.
type CredentialProvider interface {
	Login(ctx context.Context, creds authapi.Credentials) (*oauth2.Token, error)
	Verify(ctx context.Context, token *oauth2.Token) (bool, error)
	GetStored() *oauth2.Token
	Clear()
}
