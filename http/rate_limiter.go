package http

import (
	"sync"
	"time"
)

const sweepInterval = 30 * time.Minute

type quotaKey struct {
	scope  string
	client string
}

type quota struct {
	used    int
	resetAt time.Time
}

// Decision is the outcome of one Take call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter grants each client limit requests per window, counted
// separately for every scope.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	quotas  map[quotaKey]*quota
	done    chan struct{}
	stopped sync.Once
	now     func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		quotas: make(map[quotaKey]*quota),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.done:
			return
		}
	}
}

// sweep drops quotas whose window has ended.
func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, q := range r.quotas {
		if !now.Before(q.resetAt) {
			delete(r.quotas, key)
		}
	}
}

// Stop ends the sweep loop. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopped.Do(func() { close(r.done) })
}

// Take spends one request of client's quota in scope.
func (r *RateLimiter) Take(scope, client string) Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	key := quotaKey{scope: scope, client: client}
	q, ok := r.quotas[key]
	if !ok || !now.Before(q.resetAt) {
		q = &quota{resetAt: now.Add(r.window)}
		r.quotas[key] = q
	}

	if q.used >= r.limit {
		return Decision{RetryAfter: q.resetAt.Sub(now)}
	}
	q.used++
	return Decision{Allowed: true, Remaining: r.limit - q.used}
}
