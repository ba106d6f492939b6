package authapi

import (
	"context"

	"golang.org/x/oauth2"
)

// IAuthAPI defines the interface for the credential service client.
type IAuthAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds Credentials) (*oauth2.Token, error)

	// Verify reports whether the token is currently valid. An ordinary
	// invalid token is (false, nil), never an error.
	Verify(ctx context.Context, token *oauth2.Token) (bool, error)
}
