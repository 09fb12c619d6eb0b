package input

import (
	"sync"
	"time"
)

// KeyThrottle swallows rapid repeats of the same key code. Remotes emit very
// fast repeat sequences while a direction is held; without throttling focus
// overshoots.
type KeyThrottle struct {
	mu       sync.Mutex
	delay    time.Duration
	lastCode int
	lastAt   time.Time
	primed   bool
}

// NewKeyThrottle creates a throttle. A delay <= 0 disables throttling.
func NewKeyThrottle(delay time.Duration) *KeyThrottle {
	return &KeyThrottle{delay: delay}
}

// SetDelay changes the throttle delay, e.g. after a config reload.
func (t *KeyThrottle) SetDelay(delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.delay = delay
}

// Delay returns the current throttle delay.
func (t *KeyThrottle) Delay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delay
}

// Accept reports whether the event should be dispatched. A repeat of the last
// accepted key code within the delay is rejected and does not move the
// reference timestamp.
func (t *KeyThrottle) Accept(code int, at time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.delay > 0 && t.primed && code == t.lastCode && at.Sub(t.lastAt) <= t.delay {
		return false
	}
	t.lastCode = code
	t.lastAt = at
	t.primed = true
	return true
}
