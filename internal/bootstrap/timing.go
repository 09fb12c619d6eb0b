package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/logging"
)

// StartupTimer records how long each startup phase took.
type StartupTimer struct {
	start  time.Time
	phases map[string]time.Duration
	order  []string
	last   time.Time
	now    func() time.Time
	mu     sync.Mutex
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	start := now()
	return &StartupTimer{
		start:  start,
		phases: make(map[string]time.Duration),
		last:   start,
		now:    now,
	}
}

// Mark records the time elapsed since the previous mark under phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	at := t.now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = at.Sub(t.last)
	t.last = at
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.phases[phase]
	return d, ok
}

// Log writes every phase at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
