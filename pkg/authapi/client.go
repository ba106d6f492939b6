package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// Client is the HTTP client for the credential service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new auth API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Login exchanges credentials for a bearer token via POST /auth/login.
// A rejected login comes back as *AuthError with the service's status
// and detail message.
func (c *Client) Login(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	url := fmt.Sprintf("%s/auth/login", c.baseURL)

	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call login API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeAuthError(resp)
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	return &oauth2.Token{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	}, nil
}

// Verify checks the token against GET /auth/verify. 401 and 403 are
// the ordinary invalid-token outcomes and return (false, nil); any
// other non-2xx status or transport failure is an error.
func (c *Client) Verify(ctx context.Context, token *oauth2.Token) (bool, error) {
	url := fmt.Sprintf("%s/auth/verify", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	token.SetAuthHeader(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("failed to call verify API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, decodeAuthError(resp)
	}
}

func decodeAuthError(resp *http.Response) *AuthError {
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return &AuthError{Status: resp.StatusCode, Detail: body.Detail}
	}
	return &AuthError{Status: resp.StatusCode, Detail: string(raw)}
}
