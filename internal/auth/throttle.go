package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type attemptLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginThrottle limits login attempts per email so a scripted loop cannot
// hammer bcrypt. 1 attempt/sec with a burst of 3 matches the interactive
// retry budget.
type loginThrottle struct {
	mu       sync.Mutex
	attempts map[string]*attemptLimiter
}

func newLoginThrottle() *loginThrottle {
	return &loginThrottle{attempts: make(map[string]*attemptLimiter)}
}

func (t *loginThrottle) allow(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, exists := t.attempts[email]
	if !exists {
		a = &attemptLimiter{limiter: rate.NewLimiter(1, 3)}
		t.attempts[email] = a
	}

	a.lastSeen = time.Now()
	return a.limiter.Allow()
}

// StartThrottleCleanupLoop periodically drops idle attempt limiters. Run it
// in its own goroutine.
func (s *Service) StartThrottleCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		s.throttle.cleanupIdle(5 * time.Minute)
	}
}

// cleanupIdle drops limiters not seen since maxIdle ago.
func (t *loginThrottle) cleanupIdle(maxIdle time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for email, a := range t.attempts {
		if time.Since(a.lastSeen) > maxIdle {
			delete(t.attempts, email)
		}
	}
}
