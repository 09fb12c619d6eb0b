package focus

import (
	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
)

// Element is a ready-made focusable with a static rectangle and optional
// callbacks. Layout files and tests build their focusables from it.
type Element struct {
	Name     string
	Rect     entity.Rect
	OnFocus  func(hasFocus bool, change entity.FocusChange)
	OnInput  func(action entity.Action, ev *entity.KeyEvent) bool
	Handlers entity.ActionHandlers

	focused bool
}

// NewElement creates an element at the given position and size.
func NewElement(name string, x, y, w, h float64) *Element {
	return &Element{Name: name, Rect: entity.RectFromXYWH(x, y, w, h)}
}

// FocusName implements entity.Focusable.
func (e *Element) FocusName() string {
	return e.Name
}

// Focused reports whether the element currently holds focus.
func (e *Element) Focused() bool {
	return e.focused
}

// OnFocusSet implements entity.FocusSetter.
func (e *Element) OnFocusSet(hasFocus bool, change entity.FocusChange) {
	e.focused = hasFocus
	if e.OnFocus != nil {
		e.OnFocus(hasFocus, change)
	}
}

// OnInputAction implements entity.InputActionHandler.
func (e *Element) OnInputAction(action entity.Action, ev *entity.KeyEvent) bool {
	if e.OnInput == nil {
		return false
	}
	return e.OnInput(action, ev)
}

// ActionHandlers implements entity.ActionHandlerProvider.
func (e *Element) ActionHandlers() entity.ActionHandlers {
	return e.Handlers
}

// ElementBounds reports the static rectangle of *Element focusables and no
// bounds for anything else.
var ElementBounds port.BoundsProvider = port.BoundsFunc(func(f entity.Focusable) (entity.Rect, bool) {
	e, ok := f.(*Element)
	if !ok || e == nil {
		return entity.Rect{}, false
	}
	return e.Rect, true
})
