package entity

import (
	"fmt"
	"strings"
)

// Action is an abstract, platform-independent input action.
type Action string

// Canonical actions.
const (
	ActionUp          Action = "up"
	ActionDown        Action = "down"
	ActionLeft        Action = "left"
	ActionRight       Action = "right"
	ActionSelect      Action = "select"
	ActionBack        Action = "back"
	ActionPlay        Action = "play"
	ActionPause       Action = "pause"
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionFastForward Action = "fast_forward"
	ActionRewind      Action = "rewind"
	ActionExit        Action = "exit"
	ActionInfo        Action = "info"
	ActionMenu        Action = "menu"
)

// Controller button actions. Platforms remap these to canonical actions
// before dispatch.
const (
	ActionButtonA  Action = "button_a"
	ActionButtonB  Action = "button_b"
	ActionButtonX  Action = "button_x"
	ActionButtonY  Action = "button_y"
	ActionCross    Action = "cross"
	ActionCircle   Action = "circle"
	ActionSquare   Action = "square"
	ActionTriangle Action = "triangle"
)

var knownActions = []Action{
	ActionUp, ActionDown, ActionLeft, ActionRight,
	ActionSelect, ActionBack,
	ActionPlay, ActionPause, ActionPlayPause, ActionStop, ActionFastForward, ActionRewind,
	ActionExit, ActionInfo, ActionMenu,
	ActionButtonA, ActionButtonB, ActionButtonX, ActionButtonY,
	ActionCross, ActionCircle, ActionSquare, ActionTriangle,
}

// KnownActions returns every action name understood by the dispatcher.
func KnownActions() []Action {
	out := make([]Action, len(knownActions))
	copy(out, knownActions)
	return out
}

// ParseAction converts a user-supplied name into an Action.
func ParseAction(name string) (Action, error) {
	normalized := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range knownActions {
		if a == normalized {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// IsMovement reports whether the action moves focus spatially.
func (a Action) IsMovement() bool {
	_, ok := a.Direction()
	return ok
}

// Direction returns the movement direction carried by the action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return "", false
	}
}

// Direction indicates the direction for focus navigation.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Action returns the movement action for the direction.
func (d Direction) Action() Action {
	return Action(d)
}
