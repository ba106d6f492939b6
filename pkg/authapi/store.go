package authapi

import (
	"sync"

	"golang.org/x/oauth2"
)

// TokenStore is the in-memory credential store. It is single-writer
// per credential key by design; the session manager never reads it on
// the renewal path, only the bootstrap/auth-status surface does.
type TokenStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get returns the stored token, nil when none is stored.
func (s *TokenStore) Get() *oauth2.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear drops the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
}
