package askapi

import (
	"context"

	"golang.org/x/oauth2"
)

// IAskAPI defines the interface for the remote question-answering
// service client. Implementations are safe for concurrent use.
type IAskAPI interface {
	// Ask sends one question with its context window and returns the
	// raw answer text.
	Ask(ctx context.Context, token *oauth2.Token, req AskRequest) (*AskResponse, error)
}
