package entity

import "testing"

func TestRectFromXYWH(t *testing.T) {
	r := RectFromXYWH(10, 20, 30, 40)

	want := Rect{Top: 20, Left: 10, Bottom: 60, Right: 40, Width: 30, Height: 40}
	if r != want {
		t.Fatalf("RectFromXYWH() = %+v, want %+v", r, want)
	}
	if r.Area() != 1200 {
		t.Errorf("Area() = %v, want 1200", r.Area())
	}
	if cx, cy := r.Center(); cx != 25 || cy != 40 {
		t.Errorf("Center() = (%v, %v), want (25, 40)", cx, cy)
	}
}

func TestRect_IsZero(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"empty", Rect{}, true},
		{"no height", RectFromXYWH(0, 0, 10, 0), true},
		{"no width", RectFromXYWH(0, 0, 0, 10), true},
		{"negative", RectFromXYWH(0, 0, -5, 10), true},
		{"regular", RectFromXYWH(0, 0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_IntersectsAndContains(t *testing.T) {
	base := RectFromXYWH(0, 0, 100, 100)

	tests := []struct {
		name       string
		other      Rect
		intersects bool
		contains   bool
	}{
		{"inside", RectFromXYWH(10, 10, 20, 20), true, true},
		{"same box", base, true, true},
		{"partial overlap", RectFromXYWH(90, 10, 20, 20), true, false},
		{"touching edge", RectFromXYWH(100, 0, 20, 20), false, false},
		{"apart", RectFromXYWH(200, 200, 20, 20), false, false},
		{"covering", RectFromXYWH(-10, -10, 200, 200), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.intersects {
				t.Errorf("Intersects() = %v, want %v", got, tt.intersects)
			}
			if got := base.Contains(tt.other); got != tt.contains {
				t.Errorf("Contains() = %v, want %v", got, tt.contains)
			}
		})
	}
}
