package game

// player is the round's single avatar. Its size comes from config and only
// the x coordinate changes after round start.
type player struct {
	x, y float64
}

// bullet is a projectile moving straight up at the configured speed. Size
// is shared config, so only the position is stored.
type bullet struct {
	x, y float64
}

// enemy is an adversary descending at the configured speed. hit marks it
// consumed by a bullet this frame; the cull phase removes it before the
// next frame begins and no later bullet may match it again.
type enemy struct {
	x, y float64
	hit  bool
}

// Point is a read-only entity position exposed through snapshots.
type Point struct {
	X, Y float64
}
