package authapi

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
)

const (
	// DefaultVerifyTTL bounds how long a successful verification is
	// trusted before the token is re-verified over the network.
	DefaultVerifyTTL = time.Minute

	// A handful of live tokens at most; the cache exists for TTL
	// expiry, not capacity.
	verifyCacheSize = 16
)

// Provider implements the credential provider contract consumed by the
// conversation session: login, verification, and stored-token access
// for the bootstrap layer. Successful verifications are cached with a
// TTL so a healthy token is not re-verified over the network on every
// send. Entries are added only after the service has actually issued
// or verified the token, so a revoked token is rediscovered within one
// TTL window.
type Provider struct {
	client   IAuthAPI
	store    *TokenStore
	verified *expirable.LRU[string, bool]
}

// NewProvider creates a Provider around the given auth client.
// A non-positive verifyTTL falls back to DefaultVerifyTTL.
func NewProvider(client IAuthAPI, verifyTTL time.Duration) *Provider {
	if verifyTTL <= 0 {
		verifyTTL = DefaultVerifyTTL
	}
	return &Provider{
		client:   client,
		store:    &TokenStore{},
		verified: expirable.NewLRU[string, bool](verifyCacheSize, nil, verifyTTL),
	}
}

// Login acquires a fresh token and stores it.
func (p *Provider) Login(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	token, err := p.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	p.store.Set(token)
	p.verified.Add(token.AccessToken, true)
	return token, nil
}

// Verify reports whether the token is currently valid, consulting the
// TTL cache before the network.
func (p *Provider) Verify(ctx context.Context, token *oauth2.Token) (bool, error) {
	if token == nil || token.AccessToken == "" {
		return false, nil
	}
	if _, ok := p.verified.Get(token.AccessToken); ok {
		return true, nil
	}

	ok, err := p.client.Verify(ctx, token)
	if err != nil {
		return false, err
	}
	if ok {
		p.verified.Add(token.AccessToken, true)
	} else {
		p.verified.Remove(token.AccessToken)
	}
	return ok, nil
}

// GetStored returns the last stored token, nil when none exists.
func (p *Provider) GetStored() *oauth2.Token {
	return p.store.Get()
}

// Clear drops the stored token and all cached verifications.
func (p *Provider) Clear() {
	p.store.Clear()
	p.verified.Purge()
}
