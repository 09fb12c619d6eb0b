package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
)

var (
	// ErrNilBoundsProvider is returned when a use case is built without geometry.
	ErrNilBoundsProvider = errors.New("bounds provider is nil")
	// ErrInvalidDirection is returned for a direction outside up/down/left/right.
	ErrInvalidDirection = errors.New("invalid navigation direction")
)

// NavigateFocusUseCase finds the next focus target in a direction using the
// bounding boxes of the candidates.
type NavigateFocusUseCase struct {
	bounds port.BoundsProvider
	logger port.LoggerFromContext
}

// NewNavigateFocusUseCase creates the spatial navigation use case.
// A nil logger resolves to zerolog.Ctx.
func NewNavigateFocusUseCase(bounds port.BoundsProvider, logger port.LoggerFromContext) (*NavigateFocusUseCase, error) {
	if bounds == nil {
		return nil, ErrNilBoundsProvider
	}
	if logger == nil {
		logger = zerolog.Ctx
	}
	return &NavigateFocusUseCase{bounds: bounds, logger: logger}, nil
}

// GeometricNavigationInput contains data for geometric focus navigation.
type GeometricNavigationInput struct {
	Current    entity.Focusable
	Candidates []entity.Focusable // nil entries are holes and are skipped
	Direction  entity.Direction
}

// GeometricNavigationOutput contains the result.
type GeometricNavigationOutput struct {
	Target entity.Focusable
	Found  bool
}

// FindNext searches Candidates for the best focus in Direction.
// Algorithm:
//  1. Measure every candidate against the current box. Candidates overlapping
//     the current box without being contained in it are measured by their far
//     edge, all others by their near edge. Negative distances are rejected.
//  2. Pass 1 keeps candidates whose lane overlaps the current lane and ranks
//     them by distance, then by how far their lane start is from ours.
//  3. Pass 2 (only if pass 1 is empty) drops the lane requirement and ranks by
//     distance, then by the gap between the candidate lane and ours.
//
// A dead end is reported with Found=false, never as an error.
func (uc *NavigateFocusUseCase) FindNext(
	ctx context.Context,
	input GeometricNavigationInput,
) (*GeometricNavigationOutput, error) {
	if uc == nil {
		return nil, fmt.Errorf("navigate focus use case is nil")
	}
	if input.Current == nil {
		return nil, entity.ErrNilFocusable
	}
	metrics, ok := directionMetrics[input.Direction]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, input.Direction)
	}
	log := uc.logger(ctx)

	current := rectOf(uc.bounds, input.Current)
	candidates := measureCandidates(uc.bounds, input, current, metrics)

	log.Debug().
		Str("direction", string(input.Direction)).
		Str("from", input.Current.FocusName()).
		Int("candidates", len(input.Candidates)).
		Int("qualified", len(candidates)).
		Msg("spatial navigation")

	if best := pickInLane(candidates); best != nil {
		log.Debug().Str("target", best.focusable.FocusName()).Float64("distance", best.distance).Msg("in-lane target")
		return &GeometricNavigationOutput{Target: best.focusable, Found: true}, nil
	}
	if best := pickOutOfLane(candidates); best != nil {
		log.Debug().Str("target", best.focusable.FocusName()).Float64("distance", best.distance).Msg("out-of-lane target")
		return &GeometricNavigationOutput{Target: best.focusable, Found: true}, nil
	}

	log.Debug().Msg("no candidates in direction")
	return &GeometricNavigationOutput{Found: false}, nil
}

// edgeMetrics measures boxes for one direction.
//   - near: distance from the current far edge to the candidate's near edge.
//   - far: distance from the current far edge to the candidate's far edge.
//   - lane: the perpendicular span used for alignment.
type edgeMetrics struct {
	near func(cur, cand entity.Rect) float64
	far  func(cur, cand entity.Rect) float64
	lane func(r entity.Rect) (start, end float64)
}

func horizontalLane(r entity.Rect) (float64, float64) { return r.Left, r.Right }
func verticalLane(r entity.Rect) (float64, float64)   { return r.Top, r.Bottom }

var directionMetrics = map[entity.Direction]edgeMetrics{
	entity.DirUp: {
		near: func(cur, cand entity.Rect) float64 { return cur.Top - cand.Bottom },
		far:  func(cur, cand entity.Rect) float64 { return cur.Top - cand.Top },
		lane: horizontalLane,
	},
	entity.DirDown: {
		near: func(cur, cand entity.Rect) float64 { return cand.Top - cur.Bottom },
		far:  func(cur, cand entity.Rect) float64 { return cand.Bottom - cur.Bottom },
		lane: horizontalLane,
	},
	entity.DirLeft: {
		near: func(cur, cand entity.Rect) float64 { return cur.Left - cand.Right },
		far:  func(cur, cand entity.Rect) float64 { return cur.Left - cand.Left },
		lane: verticalLane,
	},
	entity.DirRight: {
		near: func(cur, cand entity.Rect) float64 { return cand.Left - cur.Right },
		far:  func(cur, cand entity.Rect) float64 { return cand.Right - cur.Right },
		lane: verticalLane,
	},
}

// navCandidate is a qualified candidate with its ranking keys.
type navCandidate struct {
	focusable entity.Focusable
	distance  float64
	laneStart float64
	laneEnd   float64
	// focus lane, repeated so the pickers need no extra arguments
	focusStart float64
	focusEnd   float64
}

func measureCandidates(
	bounds port.BoundsProvider,
	input GeometricNavigationInput,
	current entity.Rect,
	metrics edgeMetrics,
) []navCandidate {
	focusStart, focusEnd := metrics.lane(current)
	candidates := make([]navCandidate, 0, len(input.Candidates))

	for _, f := range input.Candidates {
		if f == nil || f == input.Current {
			continue
		}
		box := rectOf(bounds, f)
		if box.IsZero() {
			continue
		}

		var distance float64
		if current.Intersects(box) && !current.Contains(box) {
			distance = metrics.far(current, box)
		} else {
			distance = metrics.near(current, box)
		}
		if distance < 0 {
			continue
		}

		start, end := metrics.lane(box)
		candidates = append(candidates, navCandidate{
			focusable:  f,
			distance:   distance,
			laneStart:  start,
			laneEnd:    end,
			focusStart: focusStart,
			focusEnd:   focusEnd,
		})
	}
	return candidates
}

// laneOverlap returns the length shared by the candidate lane and the focus lane.
func (c navCandidate) laneOverlap() float64 {
	return math.Min(c.laneEnd, c.focusEnd) - math.Max(c.laneStart, c.focusStart)
}

// laneGap returns how far the candidate lane sits outside the focus lane.
func (c navCandidate) laneGap() float64 {
	switch {
	case c.laneEnd <= c.focusStart:
		return c.focusStart - c.laneEnd
	case c.laneStart >= c.focusEnd:
		return c.laneStart - c.focusEnd
	default:
		return 0
	}
}

// pickInLane returns the best aligned candidate, or nil. Ties keep candidate order.
func pickInLane(candidates []navCandidate) *navCandidate {
	var best *navCandidate
	var bestKey float64
	for i := range candidates {
		c := &candidates[i]
		if c.laneOverlap() <= 0 {
			continue
		}
		key := math.Abs(c.laneStart - c.focusStart)
		if best == nil || c.distance < best.distance || (c.distance == best.distance && key < bestKey) {
			best, bestKey = c, key
		}
	}
	return best
}

// pickOutOfLane returns the best candidate regardless of alignment, or nil.
func pickOutOfLane(candidates []navCandidate) *navCandidate {
	var best *navCandidate
	var bestKey float64
	for i := range candidates {
		c := &candidates[i]
		key := c.laneGap()
		if best == nil || c.distance < best.distance || (c.distance == best.distance && key < bestKey) {
			best, bestKey = c, key
		}
	}
	return best
}

// rectOf returns the bounds of f, or a zero box when none can be obtained.
func rectOf(bounds port.BoundsProvider, f entity.Focusable) entity.Rect {
	r, ok := bounds.Bounds(f)
	if !ok {
		return entity.Rect{}
	}
	return r
}
