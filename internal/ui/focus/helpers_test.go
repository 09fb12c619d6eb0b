package focus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/domain/entity"
)

// focusEvent records one OnFocusSet notification.
type focusEvent struct {
	name     string
	hasFocus bool
	change   entity.FocusChange
}

type focusLog struct {
	events []focusEvent
}

func (l *focusLog) element(name string, x, y, w, h float64) *Element {
	e := NewElement(name, x, y, w, h)
	e.OnFocus = func(hasFocus bool, change entity.FocusChange) {
		l.events = append(l.events, focusEvent{name: name, hasFocus: hasFocus, change: change})
	}
	return e
}

func (l *focusLog) reset() {
	l.events = nil
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(ElementBounds)
	require.NoError(t, err)
	return m
}

// screen is a typical TV layout: a top bar, a 2x3 content grid and a
// bottom bar.
type screen struct {
	m    *Manager
	log  *focusLog
	top  []*Element
	grid [][]*Element
	bot  []*Element
	ctx  context.Context
}

func newScreen(t *testing.T) *screen {
	t.Helper()
	s := &screen{m: newTestManager(t), log: &focusLog{}, ctx: context.Background()}

	s.top = []*Element{
		s.log.element("search", 0, 0, 100, 40),
		s.log.element("profile", 500, 0, 100, 40),
	}
	for row := 0; row < 2; row++ {
		var cells []*Element
		for col := 0; col < 3; col++ {
			name := []string{"a", "b", "c", "d", "e", "f"}[row*3+col]
			cells = append(cells, s.log.element(name, float64(col*210), float64(100+row*110), 200, 100))
		}
		s.grid = append(s.grid, cells)
	}
	s.bot = []*Element{
		s.log.element("settings", 0, 400, 100, 40),
		s.log.element("about", 300, 400, 100, 40),
	}

	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionTopChrome, rowOf(s.top...), nil))
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionBottomChrome, rowOf(s.bot...), nil))
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, gridOf(s.grid), nil))
	s.log.reset()
	return s
}

func (s *screen) move(t *testing.T, dir entity.Direction) string {
	t.Helper()
	_, err := s.m.Navigate(s.ctx, dir, Cause{Action: dir.Action()})
	require.NoError(t, err)
	return s.m.Describe()
}

func rowOf(items ...*Element) entity.Grid {
	row := make([]entity.Focusable, len(items))
	for i, e := range items {
		row[i] = e
	}
	return entity.Grid{row}
}

func gridOf(rows [][]*Element) entity.Grid {
	g := make(entity.Grid, len(rows))
	for i, r := range rows {
		g[i] = rowOf(r...)[0]
	}
	return g
}
