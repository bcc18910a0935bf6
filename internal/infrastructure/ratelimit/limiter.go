package ratelimit

import (
	"log"
	"sync"
	"time"
)

// Limiter is a fixed-window request limiter keyed by client address. It is
// the only mutable process-wide state in the quote pipeline, so every
// check-then-update happens under the lock; two concurrent requests from one
// address can never both slip past the limit.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
	now     func() time.Time
}

type entry struct {
	count        int
	firstRequest time.Time
}

// New creates a limiter admitting max requests per window per key.
func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// NewWithClock is New with an injectable clock for deterministic tests.
func NewWithClock(window time.Duration, max int, now func() time.Time) *Limiter {
	l := New(window, max)
	l.now = now
	return l
}

// Allow records a request for key and reports whether it is admitted.
// The first request from a key opens a window; once max requests have been
// admitted, further requests are denied until the window elapses, at which
// point the counter resets to 1.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.firstRequest) > l.window {
		l.entries[key] = &entry{count: 1, firstRequest: now}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// Sweep discards entries whose window has elapsed. Expired entries are
// functionally inert, so sweeping only bounds memory.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.Sub(e.firstRequest) > l.window {
			delete(l.entries, key)
		}
	}
}

// StartSweeper runs Sweep every interval until the returned stop function is
// called. Call stop at process shutdown.
func (l *Limiter) StartSweeper(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-done:
				return
			}
		}
	}()

	log.Printf("[ratelimit][sweeper] started interval=%s window=%s", interval, l.window)
	return func() {
		ticker.Stop()
		close(done)
	}
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
