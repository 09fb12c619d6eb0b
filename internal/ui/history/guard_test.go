package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/application/port"
	portmocks "github.com/bnema/remotenav/internal/application/port/mocks"
	memhistory "github.com/bnema/remotenav/internal/infrastructure/history"
	"github.com/bnema/remotenav/internal/ui/mainloop"
)

type guardFixture struct {
	history *memhistory.Memory
	loop    *mainloop.Loop
	guard   *BackGuard
	backs   int
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	f := &guardFixture{history: memhistory.NewMemory(), loop: mainloop.NewLoop()}
	g, err := NewBackGuard(context.Background(), "manager-a", f.history, f.loop)
	require.NoError(t, err)
	f.guard = g
	return f
}

func (f *guardFixture) dispatch(context.Context) bool {
	f.backs++
	return true
}

func (f *guardFixture) current() port.HistoryMarker {
	m, _ := f.history.Current()
	return m
}

func TestNewBackGuard_RequiresDependencies(t *testing.T) {
	_, err := NewBackGuard(context.Background(), "", nil, mainloop.NewLoop())
	assert.ErrorIs(t, err, ErrNilHistory)

	_, err = NewBackGuard(context.Background(), "", memhistory.NewMemory(), nil)
	assert.ErrorIs(t, err, ErrNilPoster)
}

func TestNewBackGuard_Owner(t *testing.T) {
	g, err := NewBackGuard(context.Background(), "manager-a", memhistory.NewMemory(), mainloop.NewLoop())
	require.NoError(t, err)
	assert.Equal(t, "manager-a", g.ID())

	anon, err := NewBackGuard(context.Background(), "", memhistory.NewMemory(), mainloop.NewLoop())
	require.NoError(t, err)
	assert.NotEmpty(t, anon.ID())
}

func TestBackGuard_BlockPushesBlockThenStub(t *testing.T) {
	f := newGuardFixture(t)

	f.guard.Block(f.dispatch)

	assert.True(t, f.guard.Active())
	assert.Equal(t, 3, f.history.Len())
	assert.Equal(t, port.HistoryMarker{Kind: port.MarkerStub, Owner: f.guard.ID()}, f.current())
}

func TestBackGuard_TrapsEveryBackPress(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(f.dispatch)

	for i := 1; i <= 3; i++ {
		f.history.Back(1)
		require.Equal(t, port.MarkerBlock, f.current().Kind)

		// Re-injection never runs inside the history notification.
		assert.Equal(t, i-1, f.backs)
		f.loop.Drain()

		assert.Equal(t, i, f.backs)
		assert.Equal(t, port.MarkerStub, f.current().Kind)
		assert.Equal(t, 3, f.history.Len())
	}
}

func TestBackGuard_NilDispatchOnlySwallows(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(nil)

	f.history.Back(1)
	f.loop.Drain()

	assert.Equal(t, 0, f.backs)
	assert.Equal(t, port.MarkerStub, f.current().Kind)
}

func TestBackGuard_RestoreRemovesStubAndBlock(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(f.dispatch)

	f.guard.Restore()
	assert.False(t, f.guard.Active())
	assert.Equal(t, 2, f.history.Position(), "markers are removed on the next loop turn")

	f.loop.Drain()

	assert.Equal(t, 0, f.history.Position())
	assert.Equal(t, 0, f.backs)
	_, marked := f.history.Current()
	assert.False(t, marked)
}

func TestBackGuard_RestoreAfterConsumedStubPopsBlockOnly(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(f.dispatch)

	f.history.Back(1)
	f.guard.Restore()
	f.loop.Drain()

	assert.Equal(t, 0, f.backs, "a restored guard does not re-inject")
	assert.Equal(t, 0, f.history.Position())
}

func TestBackGuard_BlockCancelsPendingRestore(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(f.dispatch)
	f.guard.Restore()

	f.guard.Block(f.dispatch)
	f.loop.Drain()

	assert.True(t, f.guard.Active())
	assert.Equal(t, 2, f.history.Position())
	assert.Equal(t, port.MarkerStub, f.current().Kind)

	f.history.Back(1)
	f.loop.Drain()
	assert.Equal(t, 1, f.backs)
}

func TestBackGuard_BlockTwiceReplacesDispatch(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(nil)
	f.guard.Block(f.dispatch)

	assert.Equal(t, 3, f.history.Len())

	f.history.Back(1)
	f.loop.Drain()
	assert.Equal(t, 1, f.backs)
}

func TestBackGuard_HandlerRestoringGuardIsNotRearmed(t *testing.T) {
	f := newGuardFixture(t)
	f.guard.Block(func(context.Context) bool {
		f.backs++
		f.guard.Restore()
		return true
	})

	f.history.Back(1)
	f.loop.Drain()

	assert.Equal(t, 1, f.backs)
	assert.False(t, f.guard.Active())
	assert.Equal(t, 0, f.history.Position())
}

func TestBackGuard_IgnoresForeignMarkers(t *testing.T) {
	f := newGuardFixture(t)
	other, err := NewBackGuard(context.Background(), "manager-b", f.history, f.loop)
	require.NoError(t, err)
	require.NotEqual(t, f.guard.ID(), other.ID())

	var otherBacks int
	f.guard.Block(f.dispatch)
	other.Block(func(context.Context) bool {
		otherBacks++
		return true
	})

	f.history.Back(1)
	f.loop.Drain()

	assert.Equal(t, 0, f.backs)
	assert.Equal(t, 1, otherBacks)
}

func TestBackGuard_RestorePopCounts(t *testing.T) {
	tests := []struct {
		name  string
		top   port.MarkerKind
		steps int
	}{
		{"stub on top", port.MarkerStub, 2},
		{"block on top", port.MarkerBlock, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := portmocks.NewMockHistory(t)
			loop := mainloop.NewLoop()
			g, err := NewBackGuard(context.Background(), "", h, loop)
			require.NoError(t, err)

			unsubscribed := false
			h.EXPECT().Push(mock.AnythingOfType("port.HistoryMarker")).Return().Twice()
			h.EXPECT().OnPositionChanged(mock.Anything).Return(func() { unsubscribed = true }).Once()
			h.EXPECT().Current().Return(port.HistoryMarker{Kind: tt.top, Owner: g.ID()}, true).Once()
			h.EXPECT().Back(tt.steps).Return().Once()

			g.Block(nil)
			g.Restore()
			assert.True(t, unsubscribed)
			loop.Drain()
		})
	}
}

func TestBackGuard_RestoreLeavesForeignTopAlone(t *testing.T) {
	h := portmocks.NewMockHistory(t)
	loop := mainloop.NewLoop()
	g, err := NewBackGuard(context.Background(), "", h, loop)
	require.NoError(t, err)

	h.EXPECT().Push(mock.Anything).Return().Twice()
	h.EXPECT().OnPositionChanged(mock.Anything).Return(func() {}).Once()
	h.EXPECT().Current().Return(port.HistoryMarker{Kind: port.MarkerStub, Owner: "someone-else"}, true).Once()

	g.Block(nil)
	g.Restore()
	loop.Drain()

	h.AssertNotCalled(t, "Back", mock.Anything)
}
