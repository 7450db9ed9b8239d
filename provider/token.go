package provider

import (
	"context"
	"sync"
	"time"
)

// TokenSource mints a fresh bearer token from the provider's login endpoint.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthToken is a login-issued bearer token.
type AuthToken struct {
	Value    string
	IssuedAt time.Time
}

// TokenCache holds the single cached token for one provider. Concurrent
// misses may each hit the source; the login endpoints in scope are idempotent
// so the redundant requests are harmless and deliberately not deduplicated.
type TokenCache struct {
	src TokenSource

	mu    sync.Mutex
	token *AuthToken
}

func NewTokenCache(src TokenSource) *TokenCache {
	return &TokenCache{src: src}
}

// Get returns the cached token, fetching one on miss.
func (c *TokenCache) Get(ctx context.Context) (AuthToken, error) {
	c.mu.Lock()
	cached := c.token
	c.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	value, err := c.src.Token(ctx)
	if err != nil {
		return AuthToken{}, err
	}

	tok := &AuthToken{Value: value, IssuedAt: time.Now()}
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()

	return *tok, nil
}

// Invalidate drops the cached token. Called after any response the mapper
// classified as provider-auth-failed; the next Get re-fetches.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}
