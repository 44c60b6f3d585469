package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/easyverein-community/go-easyverein/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoToken = errors.New("no API token available")
)

// expiryBuffer treats tokens as invalid shortly before their actual
// expiry so in-flight requests don't race the server.
const expiryBuffer = 30 * time.Second

// Token is an easyVerein API key with optional expiry metadata. Keys
// issued by the portal expire after at most a year; the expiry is shown
// at creation time and can be recorded here for early warnings.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token can still be sent.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// TokenProvider supplies the Authorization header value for outgoing
// requests.
type TokenProvider interface {
	// Authorization returns the full header value, scheme included.
	Authorization(ctx context.Context) (string, error)
}

// StaticTokenProvider holds a fixed API key. It is safe for concurrent
// use; SetToken swaps the key after a rotation without rebuilding the
// client.
type StaticTokenProvider struct {
	mu     sync.RWMutex
	token  *Token
	scheme string
}

// NewStaticTokenProvider creates a provider for the given key. An empty
// scheme defaults to Bearer.
func NewStaticTokenProvider(apiKey, scheme string) *StaticTokenProvider {
	if scheme == "" {
		scheme = constants.DefaultTokenScheme
	}

	return &StaticTokenProvider{
		token:  &Token{AccessToken: apiKey},
		scheme: scheme,
	}
}

// Authorization implements TokenProvider.
func (p *StaticTokenProvider) Authorization(_ context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.token.Valid() {
		return "", ErrNoToken
	}

	return p.scheme + " " + p.token.AccessToken, nil
}

// SetToken replaces the stored key, e.g. after a rotation triggered by
// the tokenRefreshNeeded header.
func (p *StaticTokenProvider) SetToken(apiKey string, expiresAt time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = &Token{AccessToken: apiKey, ExpiresAt: expiresAt}
}

// IsTokenExpiringSoon reports whether the key expires within the given
// duration. Always false for keys without recorded expiry.
func (p *StaticTokenProvider) IsTokenExpiringSoon(within time.Duration) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == nil || p.token.ExpiresAt.IsZero() {
		return false
	}

	return time.Now().Add(within).After(p.token.ExpiresAt)
}

// EnvTokenProvider reads the key from an environment variable on every
// request, picking up rotations made by an external secret manager.
type EnvTokenProvider struct {
	Variable string
	Scheme   string
}

// Authorization implements TokenProvider.
func (p *EnvTokenProvider) Authorization(_ context.Context) (string, error) {
	key := strings.TrimSpace(os.Getenv(p.Variable))
	if key == "" {
		return "", ErrNoToken
	}

	scheme := p.Scheme
	if scheme == "" {
		scheme = constants.DefaultTokenScheme
	}

	return scheme + " " + key, nil
}
