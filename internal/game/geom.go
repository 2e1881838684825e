package game

// rect is an axis-aligned box; x,y is the top-left corner.
type rect struct {
	x, y, w, h float64
}

// hitbox returns the collision box for a sprite at x,y of size w,h: the
// same rectangle shrunk by inset on all four sides, keeping the centre.
func hitbox(x, y, w, h, inset float64) rect {
	return rect{
		x: x + inset,
		y: y + inset,
		w: w - inset*2,
		h: h - inset*2,
	}
}

// overlaps reports whether the two boxes intersect. Touching edges count as
// an intersection; both the bullet-enemy and player-enemy checks rely on
// the same convention.
func (r rect) overlaps(o rect) bool {
	return r.x <= o.x+o.w && r.x+r.w >= o.x &&
		r.y <= o.y+o.h && r.y+r.h >= o.y
}
