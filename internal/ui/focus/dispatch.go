package focus

import (
	"context"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Dispatch routes an input action to the focused element, falling back to
// spatial navigation for movement actions. It reports whether the action was
// handled.
//
// Order: platform remap, back callback, default focus when nothing is
// focused, action-specific handler, generic handler, navigation, and finally
// the handle-all-inputs default.
func (m *Manager) Dispatch(ctx context.Context, action entity.Action, ev *entity.KeyEvent) bool {
	log := logging.FromContext(ctx)

	if mapped, ok := m.remap[action]; ok {
		log.Debug().Str("from", string(action)).Str("to", string(mapped)).Msg("platform remap")
		action = mapped
	}
	cause := Cause{Action: action, Event: ev}

	if action == entity.ActionBack && m.backAction != nil {
		return m.backAction(ctx, ev)
	}

	if m.current == nil {
		if action.IsMovement() || action == entity.ActionSelect {
			m.SetFocus(ctx, m.DefaultFocus(), cause)
			return true
		}
	}

	if provider, ok := m.current.(entity.ActionHandlerProvider); ok {
		if fn, present := provider.ActionHandlers()[action]; present {
			if fn != nil {
				fn(ev)
				return true
			}
			log.Warn().
				Str("action", string(action)).
				Str("focus", m.current.FocusName()).
				Msg("action handler registered but not callable")
		}
	}

	if handler, ok := m.current.(entity.InputActionHandler); ok && handler.OnInputAction(action, ev) {
		return true
	}

	if dir, ok := action.Direction(); ok {
		if _, err := m.Navigate(ctx, dir, cause); err != nil {
			log.Error().Err(err).Str("action", string(action)).Msg("navigation failed")
		}
		return true
	}

	return m.handleAllInputs
}
