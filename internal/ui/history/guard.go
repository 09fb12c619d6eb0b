// Package history traps host back navigation and turns it into back input
// actions.
//
// Some platforms only report an irreversible "went back" signal. The guard
// pushes two markers (block, then stub); a back press consumes the stub and
// lands on the block marker, which is recognised, re-dispatched as a back
// action and re-armed with a fresh stub.
package history

import (
	"context"
	"errors"

	"github.com/rs/xid"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/mainloop"
)

var (
	// ErrNilHistory is returned when a guard is built without a history stack.
	ErrNilHistory = errors.New("history stack is nil")
	// ErrNilPoster is returned when a guard is built without a poster.
	ErrNilPoster = errors.New("poster is nil")
)

// BackDispatchFunc injects a back input action. It returns whether the action
// was handled.
type BackDispatchFunc func(ctx context.Context) bool

// BackGuard intercepts host back navigation for one focus manager.
type BackGuard struct {
	id       string
	history  port.History
	poster   port.Poster
	restorer *mainloop.Coalescer

	dispatch    BackDispatchFunc
	unsubscribe func()
	active      bool

	ctx context.Context
}

// NewBackGuard creates a guard stamping its markers with owner, the identity
// of the focus manager it serves. An empty owner gets a fresh identity.
// Deferred work is posted to poster.
func NewBackGuard(ctx context.Context, owner string, history port.History, poster port.Poster) (*BackGuard, error) {
	if history == nil {
		return nil, ErrNilHistory
	}
	if poster == nil {
		return nil, ErrNilPoster
	}
	if owner == "" {
		owner = xid.New().String()
	}
	return &BackGuard{
		id:       owner,
		history:  history,
		poster:   poster,
		restorer: mainloop.NewCoalescer(poster),
		ctx:      logging.WithComponent(ctx, "back-guard"),
	}, nil
}

// ID returns the identity stamped into the guard markers.
func (g *BackGuard) ID() string {
	return g.id
}

// Active reports whether the guard is armed.
func (g *BackGuard) Active() bool {
	return g.active
}

// Block arms the guard. When dispatch is non-nil every trapped back signal is
// re-injected through it; with nil dispatch back navigation is only swallowed.
// Calling Block on an armed guard only replaces dispatch.
func (g *BackGuard) Block(dispatch BackDispatchFunc) {
	log := logging.FromContext(g.ctx)
	g.dispatch = dispatch
	if g.active {
		return
	}

	if g.restorer.Pending(g.id) {
		// A teardown is still queued: finish it now so it cannot remove the
		// markers pushed below.
		g.restorer.Cancel(g.id)
		g.popMarkers()
	}

	g.history.Push(g.marker(port.MarkerBlock))
	g.history.Push(g.marker(port.MarkerStub))
	g.unsubscribe = g.history.OnPositionChanged(g.onPositionChanged)
	g.active = true

	log.Debug().Str("guard_id", g.id).Bool("reinject", dispatch != nil).Msg("back actions blocked")
}

// Restore disarms the guard. The listener is removed immediately; the guard
// markers still present are removed on the next loop turn.
func (g *BackGuard) Restore() {
	if !g.active {
		return
	}
	g.active = false
	g.dispatch = nil
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}

	g.restorer.Post(g.id, g.popMarkers)
	logging.FromContext(g.ctx).Debug().Str("guard_id", g.id).Msg("back actions restored")
}

// popMarkers steps back over the guard markers still on top of the stack.
func (g *BackGuard) popMarkers() {
	marker, ok := g.history.Current()
	if !ok || marker.Owner != g.id {
		return
	}
	switch marker.Kind {
	case port.MarkerStub:
		g.history.Back(2)
	case port.MarkerBlock:
		g.history.Back(1)
	}
}

func (g *BackGuard) onPositionChanged() {
	if !g.active {
		return
	}
	marker, ok := g.history.Current()
	if !ok || marker.Owner != g.id || marker.Kind != port.MarkerBlock {
		return
	}

	log := logging.FromContext(g.ctx)
	log.Debug().Str("guard_id", g.id).Msg("back navigation trapped")

	g.poster.Post(func() {
		if !g.active {
			return
		}
		if dispatch := g.dispatch; dispatch != nil {
			handled := dispatch(g.ctx)
			log.Debug().Bool("handled", handled).Msg("back action re-injected")
		}
		// The back handler may have restored the guard.
		if !g.active {
			return
		}
		if current, ok := g.history.Current(); ok && current.Owner == g.id && current.Kind == port.MarkerBlock {
			g.history.Push(g.marker(port.MarkerStub))
		}
	})
}

func (g *BackGuard) marker(kind port.MarkerKind) port.HistoryMarker {
	return port.HistoryMarker{Kind: kind, Owner: g.id}
}
