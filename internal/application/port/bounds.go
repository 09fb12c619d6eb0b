// Package port defines the boundaries between the navigation core and its
// external collaborators.
package port

import "github.com/bnema/remotenav/internal/domain/entity"

// BoundsProvider supplies on-screen rectangles for focusables.
// The second return is false when no rectangle can be obtained; callers treat
// that as a zero box.
type BoundsProvider interface {
	Bounds(f entity.Focusable) (entity.Rect, bool)
}

// BoundsFunc adapts a function to BoundsProvider.
type BoundsFunc func(f entity.Focusable) (entity.Rect, bool)

// Bounds implements BoundsProvider.
func (fn BoundsFunc) Bounds(f entity.Focusable) (entity.Rect, bool) {
	return fn(f)
}
