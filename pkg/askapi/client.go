package askapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// Client is the HTTP client for the remote question-answering service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new ask API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Ask sends a question to POST /chat/ask with the given bearer
// credential. Non-2xx responses come back as *APIError so callers can
// surface the service's detail message unchanged.
func (c *Client) Ask(ctx context.Context, token *oauth2.Token, req AskRequest) (*AskResponse, error) {
	url := fmt.Sprintf("%s/chat/ask", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ask request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build ask request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ask API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeAPIError(resp)
	}

	var result AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ask response: %w", err)
	}
	return &result, nil
}

// decodeAPIError prefers the body's "detail" field as the message,
// falling back to the raw body.
func decodeAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return &APIError{Status: resp.StatusCode, Detail: body.Detail}
	}
	return &APIError{Status: resp.StatusCode, Detail: string(raw)}
}
