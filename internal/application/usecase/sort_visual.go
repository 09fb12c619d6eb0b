package usecase

import (
	"sort"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
)

// SortVisual flattens grid, drops holes and orders the result row-major:
// top ascending, then left ascending. Focusables without bounds sort first.
// The order defines first/last/default focus; directional search does not use it.
func SortVisual(grid entity.Grid, bounds port.BoundsProvider) []entity.Focusable {
	flat := grid.Flatten()
	if len(flat) < 2 || bounds == nil {
		return flat
	}

	type positioned struct {
		focusable entity.Focusable
		rect      entity.Rect
		placed    bool
	}
	items := make([]positioned, len(flat))
	for i, f := range flat {
		r, ok := bounds.Bounds(f)
		items[i] = positioned{focusable: f, rect: r, placed: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.placed != b.placed {
			return !a.placed
		}
		if !a.placed {
			return false
		}
		if a.rect.Top != b.rect.Top {
			return a.rect.Top < b.rect.Top
		}
		return a.rect.Left < b.rect.Left
	})

	out := make([]entity.Focusable, len(items))
	for i, it := range items {
		out[i] = it.focusable
	}
	return out
}
