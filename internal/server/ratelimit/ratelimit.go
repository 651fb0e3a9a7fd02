// Package ratelimit throttles API requests per client using token buckets
// keyed by client, path, and method.
package ratelimit

import (
	"sync"
	"time"
)

// Info describes the outcome of a rate limit check. Its fields are surfaced
// to clients through the X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings. Per-endpoint overrides live in
// EndpointConfigs and are resolved by MatchEndpoint.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// TokenBucket is one client's request budget for one endpoint. Tokens refill
// continuously at refillRate per second up to capacity, so a full bucket
// absorbs a burst of `capacity` requests before throttling kicks in.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64
	tokens     float64
	last       time.Time
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		last:       time.Now(),
	}
}

// refillLocked credits tokens for the time elapsed since the last refill.
// Callers must hold tb.mu.
func (tb *TokenBucket) refillLocked(now time.Time) {
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.last).Seconds()*tb.refillRate)
	tb.last = now
}

// allow consumes one token if available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked(time.Now())
	if tb.tokens < 1.0 {
		return false
	}
	tb.tokens--
	return true
}

// getStatus reports the whole tokens left and when the bucket will be full
// again, without consuming anything.
func (tb *TokenBucket) getStatus() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refillLocked(now)

	remaining = int(tb.tokens)
	resetTime = now
	if tb.tokens < float64(tb.capacity) {
		deficit := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(deficit / tb.refillRate * float64(time.Second)))
	}
	return remaining, resetTime
}

// Limiter tracks a token bucket for every client/endpoint pair seen so far.
// Buckets idle for over an hour are dropped by a background sweep so that
// one-off clients do not accumulate forever.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*TokenBucket

	seenMu sync.RWMutex
	seen   map[string]time.Time

	config *Config
	ticker *time.Ticker
	done   chan struct{}
}

// NewLimiter builds a Limiter from config. A nil config enables limiting
// with a 1000 requests/minute default and no endpoint overrides.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*TokenBucket),
		seen:    make(map[string]time.Time),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.sweep()
	}
	return l
}

// Allow reports whether a request from clientID to the given endpoint and
// method fits within its budget. Whitelisted clients always pass and
// blacklisted clients are always refused; both report Limit 0 since no
// bucket applies.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 {
		// Unlimited endpoint, e.g. the health check.
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	bucket := l.bucket(key, ec)

	l.seenMu.Lock()
	l.seen[key] = time.Now()
	l.seenMu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.getStatus()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = max(time.Until(resetTime), 0)
	}
	return allowed, info
}

// bucket returns the bucket for key, creating it on first use.
func (l *Limiter) bucket(key string, ec *EndpointConfig) *TokenBucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b = newTokenBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle(time.Now().Add(-time.Hour))
		case <-l.done:
			return
		}
	}
}

// dropIdle removes buckets whose last request predates cutoff.
func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seenMu.Lock()
	defer l.seenMu.Unlock()

	for key, last := range l.seen {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.seen, key)
		}
	}
}

// Stop terminates the background sweep.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
