package game

import "testing"

func TestHitboxInsetKeepsCentre(t *testing.T) {
	h := hitbox(10, 20, 64, 64, 8)
	if h.x != 18 || h.y != 28 || h.w != 48 || h.h != 48 {
		t.Fatalf("hitbox = %+v, want {18 28 48 48}", h)
	}
	// Shrinking must not move the centre.
	if cx, hx := 10+32.0, h.x+h.w/2; cx != hx {
		t.Errorf("centre x moved: %v -> %v", cx, hx)
	}
	if cy, hy := 20+32.0, h.y+h.h/2; cy != hy {
		t.Errorf("centre y moved: %v -> %v", cy, hy)
	}
}

func TestHitboxZeroInsetIsSprite(t *testing.T) {
	h := hitbox(5, 6, 10, 20, 0)
	if h != (rect{x: 5, y: 6, w: 10, h: 20}) {
		t.Fatalf("hitbox with zero inset = %+v, want the sprite rect", h)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b rect
		want bool
	}{
		{"identical", rect{0, 0, 10, 10}, rect{0, 0, 10, 10}, true},
		{"partial", rect{0, 0, 10, 10}, rect{5, 5, 10, 10}, true},
		{"contained", rect{0, 0, 10, 10}, rect{2, 2, 2, 2}, true},
		{"touching right edge", rect{0, 0, 10, 10}, rect{10, 0, 10, 10}, true},
		{"touching bottom edge", rect{0, 0, 10, 10}, rect{0, 10, 10, 10}, true},
		{"touching corner", rect{0, 0, 10, 10}, rect{10, 10, 10, 10}, true},
		{"disjoint x", rect{0, 0, 10, 10}, rect{11, 0, 10, 10}, false},
		{"disjoint y", rect{0, 0, 10, 10}, rect{0, 11, 10, 10}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.overlaps(tc.b); got != tc.want {
				t.Errorf("overlaps(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// The test must be symmetric.
			if got := tc.b.overlaps(tc.a); got != tc.want {
				t.Errorf("overlaps(%+v, %+v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}
