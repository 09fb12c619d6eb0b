package focus

import (
	"context"
	"strconv"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Step is one entry of an injected input sequence: either an action to
// dispatch or a pause.
type Step struct {
	Action entity.Action
	Wait   time.Duration
}

// Press returns a step dispatching action.
func Press(action entity.Action) Step {
	return Step{Action: action}
}

// Pause returns a step waiting d. Negative durations wait zero.
func Pause(d time.Duration) Step {
	return Step{Wait: d}
}

func (s Step) String() string {
	if s.Action != "" {
		return string(s.Action)
	}
	return strconv.FormatInt(s.Wait.Milliseconds(), 10)
}

// Inject plays steps in order against the manager and returns the focus
// descriptor after the last step. Actions are dispatched synchronously;
// pauses block until their timer fires or ctx is done.
// Overlapping injections on the same manager are not supported.
func (m *Manager) Inject(ctx context.Context, steps ...Step) (string, error) {
	log := logging.FromContext(ctx)

	for i, step := range steps {
		if step.Action != "" {
			handled := m.Dispatch(ctx, step.Action, nil)
			log.Debug().
				Int("step", i).
				Str("action", string(step.Action)).
				Bool("handled", handled).
				Msg("injected action")
			continue
		}
		if err := wait(ctx, step.Wait); err != nil {
			return m.Describe(), err
		}
	}
	return m.Describe(), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
