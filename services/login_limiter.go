package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiter throttles sign-in attempts per email address.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*limiterEntry
	every    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func newLoginLimiter(perMinute int) *loginLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	return &loginLimiter{
		visitors: make(map[string]*limiterEntry),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (l *loginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, e := range l.visitors {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.visitors, k)
		}
	}

	e, ok := l.visitors[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitors[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
