package services

import (
	"context"
	"sync"
	"time"

	"top-sales-tracker/internal/types"

	"github.com/pkg/errors"
)

// StaticAPIKeyProvider hands out a fixed API key
type StaticAPIKeyProvider struct {
	apiKey string
}

func NewStaticAPIKeyProvider(apiKey string) *StaticAPIKeyProvider {
	return &StaticAPIKeyProvider{apiKey: apiKey}
}

func (p *StaticAPIKeyProvider) APIKey(ctx context.Context) (string, error) {
	if p.apiKey == "" {
		return "", errors.Wrap(types.ErrAuthenticationFailure, "no API key configured")
	}
	return p.apiKey, nil
}

// SecretStore resolves a secret from an ARN environment variable with a plain env fallback
type SecretStore interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// SecretAPIKeyProvider fetches the API key from a SecretStore and caches it for a while
type SecretAPIKeyProvider struct {
	store          SecretStore
	arnEnvVar      string
	fallbackEnvVar string
	cacheTTL       time.Duration
	now            func() time.Time

	mu        sync.Mutex
	cached    string
	expiresAt time.Time
}

// NewSecretAPIKeyProvider creates a provider that caches the key for cacheTTL.
// A zero cacheTTL fetches the key on every call.
func NewSecretAPIKeyProvider(store SecretStore, arnEnvVar, fallbackEnvVar string, cacheTTL time.Duration) *SecretAPIKeyProvider {
	return &SecretAPIKeyProvider{
		store:          store,
		arnEnvVar:      arnEnvVar,
		fallbackEnvVar: fallbackEnvVar,
		cacheTTL:       cacheTTL,
		now:            time.Now,
	}
}

func (p *SecretAPIKeyProvider) APIKey(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" && p.now().Before(p.expiresAt) {
		return p.cached, nil
	}

	key, err := p.store.GetSecretString(ctx, p.arnEnvVar, p.fallbackEnvVar)
	if err != nil {
		return "", errors.Wrap(types.ErrAuthenticationFailure, err.Error())
	}
	if key == "" {
		return "", errors.Wrap(types.ErrAuthenticationFailure, "empty API key")
	}

	if p.cacheTTL > 0 {
		p.cached = key
		p.expiresAt = p.now().Add(p.cacheTTL)
	}
	return key, nil
}

// Invalidate drops the cached key so the next call fetches it again
func (p *SecretAPIKeyProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = ""
	p.expiresAt = time.Time{}
}
