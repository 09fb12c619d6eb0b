package input

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Dispatcher receives mapped input actions. *focus.Manager implements it.
type Dispatcher interface {
	ID() string
	Dispatch(ctx context.Context, action entity.Action, ev *entity.KeyEvent) bool
}

// KeyboardHandler processes raw key events and dispatches actions.
// Events flow through the throttle, the platform key map and then the dispatcher.
type KeyboardHandler struct {
	dispatcher Dispatcher
	mapper     port.KeyMapper
	throttle   *KeyThrottle

	// Optional bypass check (e.g., text input has focus)
	shouldBypass func() bool
	now          func() time.Time

	ctx context.Context
	mu  sync.RWMutex
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler(
	ctx context.Context,
	dispatcher Dispatcher,
	mapper port.KeyMapper,
	throttle *KeyThrottle,
) *KeyboardHandler {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard handler")

	if throttle == nil {
		throttle = NewKeyThrottle(0)
	}
	return &KeyboardHandler{
		dispatcher: dispatcher,
		mapper:     mapper,
		throttle:   throttle,
		now:        time.Now,
		ctx:        ctx,
	}
}

// SetShouldBypassInput sets a hook to bypass keyboard handling entirely.
// When true, events propagate to the host instead.
func (h *KeyboardHandler) SetShouldBypassInput(fn func() bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shouldBypass = fn
}

// SetMapper swaps the key mapper, e.g. after the platform changed in config.
func (h *KeyboardHandler) SetMapper(mapper port.KeyMapper) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mapper = mapper
}

// Throttle returns the throttle used by the handler.
func (h *KeyboardHandler) Throttle() *KeyThrottle {
	return h.throttle
}

// HandleKey processes a key event.
// Returns true if the event was handled and the host default must not run.
// A panic raised by a focusable while handling the action is logged and the
// event is reported handled.
func (h *KeyboardHandler) HandleKey(ev entity.KeyEvent) (handled bool) {
	log := logging.FromContext(h.ctx)

	h.mu.RLock()
	shouldBypass := h.shouldBypass
	mapper := h.mapper
	h.mu.RUnlock()

	if shouldBypass != nil && shouldBypass() {
		log.Debug().Int("keycode", ev.Code).Msg("keyboard handler bypassed")
		return false
	}

	if ev.Time.IsZero() {
		ev.Time = h.now()
	}
	if !h.throttle.Accept(ev.Code, ev.Time) {
		log.Trace().Int("keycode", ev.Code).Msg("key repeat throttled")
		return true
	}

	if mapper == nil {
		return false
	}
	action, found := mapper.MapKeyCode(ev.Code)
	if !found {
		return false
	}
	if action == entity.ActionBack && mapper.ShouldDeferBackToHost() {
		log.Debug().Int("keycode", ev.Code).Msg("back key left to host history")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("manager_id", h.dispatcher.ID()).
				Str("action", string(action)).
				Int("keycode", ev.Code).
				Str("panic", fmt.Sprint(r)).
				Str("stack", string(debug.Stack())).
				Msg("input handler panicked")
			handled = true
		}
	}()

	return h.dispatcher.Dispatch(h.ctx, action, &ev)
}
