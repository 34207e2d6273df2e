package ticketing

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	defaultLeadRatio = 0.8
	retryDelay       = time.Second
)

// TokenSource fetches a fresh access token. Client.AuthToken satisfies it
// via a closure.
type TokenSource func(ctx context.Context) (*AccessToken, error)

// TokenRefresher keeps a valid access token on hand by re-fetching it
// shortly before expiry. It runs a single-shot timer chain rather than a
// ticker: each refresh schedules exactly one successor, and Close stops the
// chain so no stale timer can fire afterwards.
type TokenRefresher struct {
	source    TokenSource
	leadRatio float64

	mu     sync.Mutex
	token  string
	timer  *time.Timer
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewTokenRefresher creates a refresher. leadRatio is the fraction of the
// token lifetime after which a refresh is scheduled; values outside (0, 1)
// fall back to the default.
func NewTokenRefresher(source TokenSource, leadRatio float64) *TokenRefresher {
	if leadRatio <= 0 || leadRatio >= 1 {
		leadRatio = defaultLeadRatio
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &TokenRefresher{
		source:    source,
		leadRatio: leadRatio,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start fetches the initial token and schedules the refresh chain. It
// returns an error if the first fetch fails; the chain is not started in
// that case.
func (r *TokenRefresher) Start(ctx context.Context) error {
	token, err := r.source(ctx)
	if err != nil {
		return fmt.Errorf("initial token fetch: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("refresher is closed")
	}

	r.token = token.Token
	r.scheduleLocked(token.ExpiresIn)
	return nil
}

// Token returns the current access token. Empty until Start succeeds.
func (r *TokenRefresher) Token() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}

// Close stops the refresh chain. Idempotent; after Close no further
// refreshes happen even if a timer was already due.
func (r *TokenRefresher) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.cancel()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// scheduleLocked arms the next refresh. Caller holds r.mu.
func (r *TokenRefresher) scheduleLocked(expiresIn int64) {
	delay := time.Duration(float64(expiresIn)*r.leadRatio) * time.Second
	if delay < retryDelay {
		delay = retryDelay
	}

	r.timer = time.AfterFunc(delay, r.refresh)
}

func (r *TokenRefresher) refresh() {
	// The fetch runs outside the lock; a Close during the request is
	// caught before the token and timer are touched.
	token, err := r.source(r.ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if err != nil {
		// Keep the possibly-still-valid token and retry shortly.
		r.scheduleLocked(0)
		return
	}

	r.token = token.Token
	r.scheduleLocked(token.ExpiresIn)
}
