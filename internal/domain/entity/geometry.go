// Package entity defines the domain entities for remote-control focus navigation.
package entity

// Rect is the on-screen bounding box of a focusable, in the coordinate space
// of the host renderer. Width and Height are carried alongside the edges
// because some providers report them independently of Right/Bottom.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
	Width  float64
	Height float64
}

// RectFromXYWH builds a Rect from a top-left corner and a size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{
		Top:    y,
		Left:   x,
		Bottom: y + h,
		Right:  x + w,
		Width:  w,
		Height: h,
	}
}

// Area returns the surface of the rectangle.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsZero reports whether the rectangle has no surface.
// Zero-area boxes never take part in directional search.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and o share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	return o.Left < r.Right && o.Right > r.Left && o.Top < r.Bottom && o.Bottom > r.Top
}

// Contains reports whether o lies entirely inside r (edges included).
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}
