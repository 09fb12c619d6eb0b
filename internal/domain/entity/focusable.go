package entity

import (
	"errors"
	"time"
)

var (
	// ErrNilFocusable is returned when an operation requires a focusable and got nil.
	ErrNilFocusable = errors.New("focusable is nil")
	// ErrUnknownRegion is returned for a Region value outside the three known regions.
	ErrUnknownRegion = errors.New("unknown focus region")
	// ErrUnknownAction is returned when an action name cannot be parsed.
	ErrUnknownAction = errors.New("unknown input action")
)

// Focusable is a navigable unit of UI that can hold input focus.
// Identity is the interface value itself; implementations are normally pointers.
type Focusable interface {
	// FocusName is a human-readable label used in logs and descriptors.
	FocusName() string
}

// FocusSetter is implemented by focusables that want focus-change notifications.
type FocusSetter interface {
	OnFocusSet(hasFocus bool, change FocusChange)
}

// InputActionHandler is the generic input capability. It returns true when
// the action was handled.
type InputActionHandler interface {
	OnInputAction(action Action, ev *KeyEvent) bool
}

// ActionFunc handles one specific action.
type ActionFunc func(ev *KeyEvent)

// ActionHandlers maps actions to dedicated handlers. A key present with a nil
// value is a misconfiguration: the dispatcher warns and falls through.
type ActionHandlers map[Action]ActionFunc

// ActionHandlerProvider exposes action-specific handlers, which take
// precedence over the generic InputActionHandler.
type ActionHandlerProvider interface {
	ActionHandlers() ActionHandlers
}

// KeyEvent is the raw input event delivered by the host.
type KeyEvent struct {
	Code   int
	Key    string
	Time   time.Time
	Repeat bool
}

// FocusChange describes a single focus transition. It is created once per
// transition and handed to both the deactivated and the activated focusable.
type FocusChange struct {
	Old    Focusable
	New    Focusable
	Action Action
	Event  *KeyEvent
}

// Grid is a logical grid of focusables: one slice per row, nil entries are holes.
// A flat collection is a Grid with a single row.
type Grid [][]Focusable

// Row builds a single-row grid.
func Row(items ...Focusable) Grid {
	return Grid{items}
}

// Flatten returns the non-nil members in row order.
func (g Grid) Flatten() []Focusable {
	var out []Focusable
	for _, row := range g {
		for _, f := range row {
			if f != nil {
				out = append(out, f)
			}
		}
	}
	return out
}
