package authapi

import "fmt"

// Credentials is the identity used to log in against the credential
// service. The session manager's renewal path uses a designated
// fallback identity from configuration.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the success body of POST /auth/login.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthError is a rejected credential operation: login refused or a
// verification call that failed for a reason other than an ordinary
// invalid token.
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth API error %d: %s", e.Status, e.Detail)
}
