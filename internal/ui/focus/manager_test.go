package focus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/domain/entity"
)

func TestNewManager_RequiresBounds(t *testing.T) {
	m, err := NewManager(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, usecase.ErrNilBoundsProvider)
}

func TestNewManager_UniqueIDs(t *testing.T) {
	a := newTestManager(t)
	b := newTestManager(t)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSetRegionFocusables_UnknownRegion(t *testing.T) {
	m := newTestManager(t)
	err := m.SetRegionFocusables(context.Background(), entity.Region(9), nil, nil)
	assert.ErrorIs(t, err, entity.ErrUnknownRegion)
}

func TestSetRegionFocusables_ContentSelectsFirstInVisualOrder(t *testing.T) {
	m := newTestManager(t)
	low := NewElement("low", 0, 200, 10, 10)
	high := NewElement("high", 50, 0, 10, 10)

	require.NoError(t, m.SetRegionFocusables(context.Background(), entity.RegionContent, entity.Row(low, high), nil))

	assert.Same(t, high, m.Current())
	assert.True(t, high.Focused())
	assert.Equal(t, []entity.Focusable{high, low}, m.Focusables(entity.RegionContent))
}

func TestSetRegionFocusables_ContentUsesDefault(t *testing.T) {
	s := newScreen(t)
	e := s.grid[1][1]

	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, gridOf(s.grid), e))

	assert.Same(t, e, s.m.Current())
	assert.Same(t, e, s.m.LastFocus(entity.RegionContent))
}

func TestSetRegionFocusables_ContentReplacementKeepsChromeFocus(t *testing.T) {
	for _, region := range []entity.Region{entity.RegionTopChrome, entity.RegionBottomChrome} {
		t.Run(region.String(), func(t *testing.T) {
			s := newScreen(t)
			chrome := s.m.Focusables(region)[0]
			s.m.SetFocus(s.ctx, chrome, Cause{})
			s.log.reset()

			replacement := NewElement("new", 0, 100, 200, 100)
			require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, entity.Row(replacement), replacement))

			assert.Same(t, chrome, s.m.Current())
			assert.Empty(t, s.log.events)
			assert.Same(t, replacement, s.m.LastFocus(entity.RegionContent))
		})
	}
}

func TestSetRegionFocusables_ContentReplacementMovesContentFocus(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[1][2], Cause{})

	replacement := NewElement("new", 0, 100, 200, 100)
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, entity.Row(replacement), nil))

	assert.Same(t, replacement, s.m.Current())
	assert.False(t, s.grid[1][2].Focused())
}

func TestSetRegionFocusables_EmptyContentClearsFocus(t *testing.T) {
	s := newScreen(t)

	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, nil, nil))

	assert.Nil(t, s.m.Current())
	assert.Equal(t, "none", s.m.Describe())
}

func TestSetRegionFocusables_Memory(t *testing.T) {
	s := newScreen(t)
	profile := s.top[1]
	s.m.SetFocus(s.ctx, profile, Cause{})
	s.m.SetFocus(s.ctx, s.grid[0][0], Cause{})
	require.Same(t, profile, s.m.LastFocus(entity.RegionTopChrome))

	// Without a default the memory is cleared, even if its entity stays.
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionTopChrome, rowOf(s.top...), nil))
	assert.Nil(t, s.m.LastFocus(entity.RegionTopChrome))

	// A default seeds the memory.
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionTopChrome, rowOf(s.top...), s.top[0]))
	assert.Same(t, s.top[0], s.m.LastFocus(entity.RegionTopChrome))

	// Removing the remembered entity clears the memory.
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionTopChrome, rowOf(s.top[1]), nil))
	assert.Nil(t, s.m.LastFocus(entity.RegionTopChrome))

	// A default outside the list is ignored.
	stranger := NewElement("stranger", 0, 0, 1, 1)
	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionTopChrome, rowOf(s.top[1]), stranger))
	assert.Nil(t, s.m.LastFocus(entity.RegionTopChrome))
}

func TestSetRegionFocusables_ContentReplacementForgetsMemory(t *testing.T) {
	s := newScreen(t)
	cell := s.grid[1][1]
	s.m.SetFocus(s.ctx, cell, Cause{})
	s.m.SetFocus(s.ctx, s.top[0], Cause{})
	require.Same(t, cell, s.m.LastFocus(entity.RegionContent))

	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, gridOf(s.grid), nil))
	assert.Nil(t, s.m.LastFocus(entity.RegionContent))
	assert.Same(t, s.top[0], s.m.Current())

	moved, err := s.m.Navigate(s.ctx, entity.DirDown, Cause{})
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Same(t, s.grid[0][0], s.m.Current())
}

func TestSetRegionFocusables_UnchangedContentFocusIsRemembered(t *testing.T) {
	s := newScreen(t)
	first := s.m.Current()
	require.NotNil(t, first)

	require.NoError(t, s.m.SetRegionFocusables(s.ctx, entity.RegionContent, gridOf(s.grid), nil))
	assert.Same(t, first, s.m.Current())
	assert.Same(t, first, s.m.LastFocus(entity.RegionContent))
}

func TestSetFocus_NotifiesOldThenNew(t *testing.T) {
	s := newScreen(t)
	from := s.grid[0][0]
	to := s.grid[0][1]
	ev := &entity.KeyEvent{Code: 39}

	s.m.SetFocus(s.ctx, to, Cause{Action: entity.ActionRight, Event: ev})

	require.Len(t, s.log.events, 2)
	assert.Equal(t, "a", s.log.events[0].name)
	assert.False(t, s.log.events[0].hasFocus)
	assert.Equal(t, "b", s.log.events[1].name)
	assert.True(t, s.log.events[1].hasFocus)

	change := s.log.events[1].change
	assert.Equal(t, s.log.events[0].change, change)
	assert.Same(t, from, change.Old)
	assert.Same(t, to, change.New)
	assert.Equal(t, entity.ActionRight, change.Action)
	assert.Same(t, ev, change.Event)
}

func TestSetFocus_SameFocusIsNoop(t *testing.T) {
	s := newScreen(t)
	target := s.grid[1][0]

	s.m.SetFocus(s.ctx, target, Cause{})
	s.log.reset()
	s.m.SetFocus(s.ctx, target, Cause{})

	assert.Empty(t, s.log.events)
	assert.Same(t, target, s.m.Current())
}

func TestSetFocus_ClearingRemembersOldRegion(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.bot[1], Cause{})
	s.log.reset()

	s.m.SetFocus(s.ctx, nil, Cause{})

	assert.Nil(t, s.m.Current())
	assert.Same(t, s.bot[1], s.m.LastFocus(entity.RegionBottomChrome))
	require.Len(t, s.log.events, 1)
	assert.Equal(t, "about", s.log.events[0].name)
	assert.False(t, s.log.events[0].hasFocus)
}

func TestDefaultFocus_FallsBackThroughRegions(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	assert.Nil(t, m.DefaultFocus())

	bottom := NewElement("bottom", 0, 400, 10, 10)
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionBottomChrome, entity.Row(bottom), nil))
	assert.Same(t, bottom, m.DefaultFocus())

	top := NewElement("top", 0, 0, 10, 10)
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionTopChrome, entity.Row(top), nil))
	assert.Same(t, top, m.DefaultFocus())
}

func TestNavigate_WithinContent(t *testing.T) {
	s := newScreen(t)
	require.Equal(t, "content:a", s.m.Describe())

	assert.Equal(t, "content:b", s.move(t, entity.DirRight))
	assert.Equal(t, "content:e", s.move(t, entity.DirDown))
	assert.Equal(t, "content:d", s.move(t, entity.DirLeft))
}

func TestNavigate_RightEdgeIsDeadEnd(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[0][2], Cause{})
	s.log.reset()

	moved, err := s.m.Navigate(s.ctx, entity.DirRight, Cause{})

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Same(t, s.grid[0][2], s.m.Current())
	assert.Empty(t, s.log.events)
}

func TestNavigate_ChromeToContentReturnsToRememberedCell(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[0][1], Cause{})

	assert.Equal(t, "top_chrome:search", s.move(t, entity.DirUp))
	assert.Equal(t, "content:b", s.move(t, entity.DirDown))

	// The top chrome remembers its last focus too.
	s.m.SetFocus(s.ctx, s.top[1], Cause{})
	s.m.SetFocus(s.ctx, s.grid[0][0], Cause{})
	assert.Equal(t, "top_chrome:profile", s.move(t, entity.DirUp))
}

func TestNavigate_ContentDownEntersBottomChrome(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[1][2], Cause{})

	assert.Equal(t, "bottom_chrome:settings", s.move(t, entity.DirDown))
	assert.Equal(t, "content:f", s.move(t, entity.DirUp))
}

func TestNavigate_BottomUpFallsBackToLastTopChrome(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	t1 := NewElement("t1", 0, 0, 10, 10)
	t2 := NewElement("t2", 50, 0, 10, 10)
	b1 := NewElement("b1", 0, 400, 10, 10)
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionTopChrome, entity.Row(t1, t2), nil))
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionBottomChrome, entity.Row(b1), nil))
	m.SetFocus(ctx, b1, Cause{})

	_, err := m.Navigate(ctx, entity.DirUp, Cause{})
	require.NoError(t, err)
	assert.Same(t, t2, m.Current())
}

func TestNavigate_TopDownSkipsEmptyContent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	top := NewElement("top", 0, 0, 10, 10)
	bottom := NewElement("bottom", 0, 400, 10, 10)
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionTopChrome, entity.Row(top), nil))
	require.NoError(t, m.SetRegionFocusables(ctx, entity.RegionBottomChrome, entity.Row(bottom), nil))
	m.SetFocus(ctx, top, Cause{})

	_, err := m.Navigate(ctx, entity.DirDown, Cause{})
	require.NoError(t, err)
	assert.Same(t, bottom, m.Current())

	// Past the last chrome row nothing happens.
	moved, err := m.Navigate(ctx, entity.DirDown, Cause{})
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Same(t, bottom, m.Current())
}

func TestNavigate_UpFromTopChromeIsDeadEnd(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.top[0], Cause{})

	assert.Equal(t, "top_chrome:search", s.move(t, entity.DirUp))
}

func TestNavigate_UntrackedFocusFallsBackToDefault(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[1][1], Cause{})
	dialog := NewElement("dialog", 100, 100, 300, 200)
	s.m.SetFocus(s.ctx, dialog, Cause{})
	require.Equal(t, "untracked:dialog", s.m.Describe())

	assert.Equal(t, "content:e", s.move(t, entity.DirLeft))
}

func TestNavigate_NoFocusEstablishesDefault(t *testing.T) {
	s := newScreen(t)
	s.m.SetFocus(s.ctx, s.grid[0][2], Cause{})
	s.m.SetFocus(s.ctx, nil, Cause{})

	moved, err := s.m.Navigate(s.ctx, entity.DirDown, Cause{})

	require.NoError(t, err)
	assert.True(t, moved)
	assert.Same(t, s.grid[0][2], s.m.Current())
}

func TestRegionOf(t *testing.T) {
	s := newScreen(t)

	region, ok := s.m.RegionOf(s.bot[0])
	assert.True(t, ok)
	assert.Equal(t, entity.RegionBottomChrome, region)

	_, ok = s.m.RegionOf(NewElement("x", 0, 0, 1, 1))
	assert.False(t, ok)
	_, ok = s.m.RegionOf(nil)
	assert.False(t, ok)
}
