// Package focus provides focus state management, region memory and input
// dispatch for remote-control driven interfaces.
//
// A Manager is owned by a single goroutine (the host event loop). It is not
// safe for concurrent use.
package focus

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Cause describes what triggered a focus change. Both fields may be empty
// for programmatic changes.
type Cause struct {
	Action entity.Action
	Event  *entity.KeyEvent
}

// BackActionFunc receives back actions instead of the focused element.
type BackActionFunc func(ctx context.Context, ev *entity.KeyEvent) bool

// Manager handles focus state, the three focus regions and their memory.
type Manager struct {
	id        string
	bounds    port.BoundsProvider
	navigator *usecase.NavigateFocusUseCase

	regions   [len(entity.Regions)][]entity.Focusable
	lastFocus [len(entity.Regions)]entity.Focusable
	current   entity.Focusable

	remap           map[entity.Action]entity.Action
	backAction      BackActionFunc
	handleAllInputs bool
}

// NewManager creates a focus manager using bounds for all geometry.
func NewManager(bounds port.BoundsProvider) (*Manager, error) {
	navigator, err := usecase.NewNavigateFocusUseCase(bounds, logging.FromContext)
	if err != nil {
		return nil, fmt.Errorf("create focus manager: %w", err)
	}
	return &Manager{
		id:        xid.New().String(),
		bounds:    bounds,
		navigator: navigator,
	}, nil
}

// ID returns the unique identity of the manager.
func (m *Manager) ID() string {
	return m.id
}

// Current returns the focused entity, or nil.
func (m *Manager) Current() entity.Focusable {
	return m.current
}

// SetRemap installs the platform table applied to every dispatched action.
func (m *Manager) SetRemap(remap map[entity.Action]entity.Action) {
	m.remap = remap
}

// SetBackAction registers a callback that receives every back action.
// Pass nil to route back actions to the focused element again.
func (m *Manager) SetBackAction(fn BackActionFunc) {
	m.backAction = fn
}

// SetHandleAllInputs sets what Dispatch reports for actions nobody handled.
// Modal UI enables it to capture focus.
func (m *Manager) SetHandleAllInputs(v bool) {
	m.handleAllInputs = v
}

// Focusables returns the visually sorted members of a region.
func (m *Manager) Focusables(region entity.Region) []entity.Focusable {
	if !region.Valid() {
		return nil
	}
	out := make([]entity.Focusable, len(m.regions[region]))
	copy(out, m.regions[region])
	return out
}

// LastFocus returns the remembered focus of a region if it is still a member.
func (m *Manager) LastFocus(region entity.Region) entity.Focusable {
	if !region.Valid() {
		return nil
	}
	last := m.lastFocus[region]
	if last == nil || indexOf(m.regions[region], last) < 0 {
		return nil
	}
	return last
}

// SetRegionFocusables replaces the members of region with the visually sorted
// contents of grid. A defaultFocus that belongs to the new list seeds the
// region memory; otherwise the memory is cleared. Replacing Content moves focus to defaultFocus or the first content
// member unless focus is currently held by one of the chrome regions.
func (m *Manager) SetRegionFocusables(
	ctx context.Context,
	region entity.Region,
	grid entity.Grid,
	defaultFocus entity.Focusable,
) error {
	if !region.Valid() {
		return fmt.Errorf("%w: %d", entity.ErrUnknownRegion, region)
	}
	log := logging.FromContext(ctx)

	sorted := usecase.SortVisual(grid, m.bounds)
	m.regions[region] = sorted

	if defaultFocus != nil && indexOf(sorted, defaultFocus) >= 0 {
		m.lastFocus[region] = defaultFocus
	} else {
		m.lastFocus[region] = nil
	}

	log.Debug().
		Str("region", region.String()).
		Int("focusables", len(sorted)).
		Msg("region focusables replaced")

	if region != entity.RegionContent {
		return nil
	}
	if loc := m.locate(m.current); loc.kind == locInRegion && loc.region != entity.RegionContent {
		return nil
	}

	target := defaultFocus
	if target == nil && len(sorted) > 0 {
		target = sorted[0]
	}
	m.SetFocus(ctx, target, Cause{})
	// SetFocus skips an unchanged focus, which would leave the memory empty.
	if target != nil && m.current == target && indexOf(sorted, target) >= 0 {
		m.lastFocus[region] = target
	}
	return nil
}

// SetFocus moves focus to newFocus. Setting the current focus again is a
// no-op. The old focus is notified before the new one, both synchronously.
func (m *Manager) SetFocus(ctx context.Context, newFocus entity.Focusable, cause Cause) {
	old := m.current
	if old == newFocus {
		return
	}

	change := entity.FocusChange{
		Old:    old,
		New:    newFocus,
		Action: cause.Action,
		Event:  cause.Event,
	}
	m.current = newFocus

	if setter, ok := old.(entity.FocusSetter); ok {
		setter.OnFocusSet(false, change)
	}

	if newFocus != nil {
		if loc := m.locate(newFocus); loc.kind == locInRegion {
			m.lastFocus[loc.region] = newFocus
		}
	} else if loc := m.locate(old); loc.kind == locInRegion {
		m.lastFocus[loc.region] = old
	}

	if setter, ok := newFocus.(entity.FocusSetter); ok {
		setter.OnFocusSet(true, change)
	}

	logging.FromContext(ctx).Debug().
		Str("from", nameOf(old)).
		Str("to", nameOf(newFocus)).
		Str("action", string(cause.Action)).
		Msg("focus changed")
}

// DefaultFocus returns the content memory or first member, falling back to
// the top chrome and then the bottom chrome.
func (m *Manager) DefaultFocus() entity.Focusable {
	for _, region := range [...]entity.Region{
		entity.RegionContent, entity.RegionTopChrome, entity.RegionBottomChrome,
	} {
		if f := m.memoryOrFirst(region); f != nil {
			return f
		}
	}
	return nil
}

// RegionOf reports which region f belongs to.
func (m *Manager) RegionOf(f entity.Focusable) (entity.Region, bool) {
	loc := m.locate(f)
	return loc.region, loc.kind == locInRegion
}

// Navigate moves focus in dir. Without a focus it establishes the default
// focus instead of moving. A dead end leaves focus unchanged and reports false.
func (m *Manager) Navigate(ctx context.Context, dir entity.Direction, cause Cause) (bool, error) {
	log := logging.FromContext(ctx)
	before := m.current

	loc := m.locate(m.current)
	switch loc.kind {
	case locNone, locUntracked:
		log.Debug().Str("direction", string(dir)).Msg("focus outside regions, using default focus")
		m.SetFocus(ctx, m.DefaultFocus(), cause)
		return m.current != before, nil
	}

	out, err := m.navigator.FindNext(ctx, usecase.GeometricNavigationInput{
		Current:    m.current,
		Candidates: m.regions[loc.region],
		Direction:  dir,
	})
	if err != nil {
		return false, err
	}

	target := out.Target
	if !out.Found {
		target = m.crossRegionTarget(loc.region, dir)
	}
	if target == nil {
		log.Debug().
			Str("direction", string(dir)).
			Str("region", loc.region.String()).
			Msg("navigation dead end")
		return false, nil
	}

	m.SetFocus(ctx, target, cause)
	return m.current != before, nil
}

// crossRegionTarget applies the fallback rules used when no in-region
// candidate exists.
func (m *Manager) crossRegionTarget(from entity.Region, dir entity.Direction) entity.Focusable {
	switch from {
	case entity.RegionTopChrome:
		if dir == entity.DirDown {
			if f := m.memoryOrFirst(entity.RegionContent); f != nil {
				return f
			}
			return m.memoryOrFirst(entity.RegionBottomChrome)
		}
	case entity.RegionContent:
		switch dir {
		case entity.DirUp:
			return m.memoryOrFirst(entity.RegionTopChrome)
		case entity.DirDown:
			return m.memoryOrFirst(entity.RegionBottomChrome)
		}
	case entity.RegionBottomChrome:
		if dir == entity.DirUp {
			if f := m.memoryOrFirst(entity.RegionContent); f != nil {
				return f
			}
			return m.memoryOrLast(entity.RegionTopChrome)
		}
	}
	return nil
}

func (m *Manager) memoryOrFirst(region entity.Region) entity.Focusable {
	if f := m.LastFocus(region); f != nil {
		return f
	}
	if list := m.regions[region]; len(list) > 0 {
		return list[0]
	}
	return nil
}

func (m *Manager) memoryOrLast(region entity.Region) entity.Focusable {
	if f := m.LastFocus(region); f != nil {
		return f
	}
	if list := m.regions[region]; len(list) > 0 {
		return list[len(list)-1]
	}
	return nil
}

// Describe returns a textual descriptor of the current focus, e.g.
// "content:tile-3", "untracked:dialog" or "none".
func (m *Manager) Describe() string {
	loc := m.locate(m.current)
	switch loc.kind {
	case locInRegion:
		return loc.region.String() + ":" + m.current.FocusName()
	case locUntracked:
		return "untracked:" + m.current.FocusName()
	default:
		return "none"
	}
}

type locationKind int

const (
	locNone locationKind = iota
	locInRegion
	locUntracked
)

// location is where a focusable lives: nowhere, in a region at an index, or
// outside every region.
type location struct {
	kind   locationKind
	region entity.Region
	index  int
}

func (m *Manager) locate(f entity.Focusable) location {
	if f == nil {
		return location{kind: locNone, index: -1}
	}
	for _, region := range entity.Regions {
		if idx := indexOf(m.regions[region], f); idx >= 0 {
			return location{kind: locInRegion, region: region, index: idx}
		}
	}
	return location{kind: locUntracked, index: -1}
}

func indexOf(list []entity.Focusable, f entity.Focusable) int {
	for i, item := range list {
		if item == f {
			return i
		}
	}
	return -1
}

func nameOf(f entity.Focusable) string {
	if f == nil {
		return ""
	}
	return f.FocusName()
}
