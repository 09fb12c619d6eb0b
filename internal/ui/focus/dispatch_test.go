package focus

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

func TestDispatch_SpecificHandlerBeatsGeneric(t *testing.T) {
	s := newScreen(t)
	a := s.grid[0][0]

	var specific, generic int
	a.Handlers = entity.ActionHandlers{
		entity.ActionSelect: func(*entity.KeyEvent) { specific++ },
	}
	a.OnInput = func(entity.Action, *entity.KeyEvent) bool {
		generic++
		return true
	}

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionSelect, nil))
	assert.Equal(t, 1, specific)
	assert.Equal(t, 0, generic)

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionPlay, nil))
	assert.Equal(t, 1, generic)
}

func TestDispatch_NilHandlerWarnsAndFallsThrough(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	s := newScreen(t)
	a := s.grid[0][0]
	a.Handlers = entity.ActionHandlers{entity.ActionSelect: nil}
	var got entity.Action
	a.OnInput = func(action entity.Action, _ *entity.KeyEvent) bool {
		got = action
		return true
	}

	assert.True(t, s.m.Dispatch(ctx, entity.ActionSelect, nil))
	assert.Equal(t, entity.ActionSelect, got)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "action handler registered but not callable")
}

func TestDispatch_RawEventReachesHandler(t *testing.T) {
	s := newScreen(t)
	ev := &entity.KeyEvent{Code: 13, Key: "Enter"}
	var seen *entity.KeyEvent
	s.grid[0][0].Handlers = entity.ActionHandlers{
		entity.ActionSelect: func(e *entity.KeyEvent) { seen = e },
	}

	s.m.Dispatch(s.ctx, entity.ActionSelect, ev)

	assert.Same(t, ev, seen)
}

func TestDispatch_MovementFallsBackToNavigation(t *testing.T) {
	s := newScreen(t)
	s.grid[0][0].OnInput = func(entity.Action, *entity.KeyEvent) bool { return false }

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionDown, nil))
	assert.Equal(t, "content:d", s.m.Describe())
}

func TestDispatch_DeadEndIsStillHandled(t *testing.T) {
	s := newScreen(t)

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionLeft, nil))
	assert.Equal(t, "content:a", s.m.Describe())
}

func TestDispatch_HandlerCanConsumeMovement(t *testing.T) {
	s := newScreen(t)
	s.grid[0][0].Handlers = entity.ActionHandlers{
		entity.ActionRight: func(*entity.KeyEvent) {},
	}

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionRight, nil))
	assert.Equal(t, "content:a", s.m.Describe())
}

func TestDispatch_UnhandledUsesHandleAllInputs(t *testing.T) {
	s := newScreen(t)

	assert.False(t, s.m.Dispatch(s.ctx, entity.ActionInfo, nil))

	s.m.SetHandleAllInputs(true)
	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionInfo, nil))
}

func TestDispatch_BackCallbackShortCircuits(t *testing.T) {
	s := newScreen(t)
	var focused int
	s.grid[0][0].OnInput = func(entity.Action, *entity.KeyEvent) bool {
		focused++
		return true
	}

	calls := 0
	s.m.SetBackAction(func(context.Context, *entity.KeyEvent) bool {
		calls++
		return false
	})

	assert.False(t, s.m.Dispatch(s.ctx, entity.ActionBack, nil))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, focused)

	s.m.SetBackAction(nil)
	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionBack, nil))
	assert.Equal(t, 1, focused)
}

func TestDispatch_NoFocusEstablishesDefault(t *testing.T) {
	tests := []struct {
		action  entity.Action
		handled bool
		want    string
	}{
		{entity.ActionDown, true, "content:c"},
		{entity.ActionSelect, true, "content:c"},
		{entity.ActionPlay, false, "none"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			s := newScreen(t)
			var selected int
			s.grid[0][2].Handlers = entity.ActionHandlers{
				entity.ActionSelect: func(*entity.KeyEvent) { selected++ },
			}
			s.m.SetFocus(s.ctx, s.grid[0][2], Cause{})
			s.m.SetFocus(s.ctx, nil, Cause{})

			assert.Equal(t, tt.handled, s.m.Dispatch(s.ctx, tt.action, nil))
			assert.Equal(t, tt.want, s.m.Describe())
			assert.Equal(t, 0, selected, "establishing focus must not also activate it")
		})
	}
}

func TestDispatch_PlatformRemap(t *testing.T) {
	s := newScreen(t)
	s.m.SetRemap(map[entity.Action]entity.Action{
		entity.ActionButtonA: entity.ActionSelect,
		entity.ActionButtonB: entity.ActionBack,
	})

	var selected int
	s.grid[0][0].Handlers = entity.ActionHandlers{
		entity.ActionSelect: func(*entity.KeyEvent) { selected++ },
	}
	var backs int
	s.m.SetBackAction(func(context.Context, *entity.KeyEvent) bool {
		backs++
		return true
	})

	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionButtonA, nil))
	assert.True(t, s.m.Dispatch(s.ctx, entity.ActionButtonB, nil))
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, backs)
}

func TestDispatch_FocusChangeCarriesCause(t *testing.T) {
	s := newScreen(t)
	ev := &entity.KeyEvent{Code: 39}

	require.True(t, s.m.Dispatch(s.ctx, entity.ActionRight, ev))

	require.Len(t, s.log.events, 2)
	change := s.log.events[1].change
	assert.Equal(t, entity.ActionRight, change.Action)
	assert.Same(t, ev, change.Event)
}
