package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"golang.org/x/oauth2"

	"chat-session-manager/pkg/askapi"
	"chat-session-manager/pkg/authapi"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock credential provider with injectable behaviour.
type mockProvider struct {
	loginFunc   func(creds authapi.Credentials) (*oauth2.Token, error)
	verifyFunc  func(token *oauth2.Token) (bool, error)
	loginCalls  int
	verifyCalls int
	stored      *oauth2.Token
}

func (m *mockProvider) Login(ctx context.Context, creds authapi.Credentials) (*oauth2.Token, error) {
	m.loginCalls++
	if m.loginFunc != nil {
		return m.loginFunc(creds)
	}
	token := &oauth2.Token{AccessToken: "tok-test", TokenType: "bearer"}
	m.stored = token
	return token, nil
}

func (m *mockProvider) Verify(ctx context.Context, token *oauth2.Token) (bool, error) {
	m.verifyCalls++
	if m.verifyFunc != nil {
		return m.verifyFunc(token)
	}
	return true, nil
}

func (m *mockProvider) GetStored() *oauth2.Token { return m.stored }
func (m *mockProvider) Clear()                   { m.stored = nil }

// askRecorder is a fake remote QA service that records every request
// it receives. Questions prefixed "cause_500" fail with a detail body.
type askRecorder struct {
	server   *httptest.Server
	requests []askapi.AskRequest
	answer   string
}

func newAskRecorder(answer string) *askRecorder {
	rec := &askRecorder{answer: answer}
	rec.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req askapi.AskRequest
		json.NewDecoder(r.Body).Decode(&req)
		rec.requests = append(rec.requests, req)

		if req.Question == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "service unavailable"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(askapi.AskResponse{Answer: rec.answer})
	}))
	return rec
}

func (rec *askRecorder) last() askapi.AskRequest {
	return rec.requests[len(rec.requests)-1]
}
