package game

// resolveCollisions runs the bullet/enemy pass and returns the number of
// enemies destroyed this frame.
//
// Each bullet scans the enemy list in order and stops at its first overlap,
// so one bullet destroys at most one enemy per frame. A destroyed enemy is
// tombstoned with its hit flag rather than moved off-screen, and later
// bullets skip tombstones, so one enemy absorbs at most one bullet per
// frame. The cull phase in Step removes tombstones before the frame ends.
func (r *Round) resolveCollisions() int {
	kills := 0
	bw := 0
	for _, b := range r.bullets {
		br := rect{x: b.x, y: b.y, w: r.cfg.Bullet.Width, h: r.cfg.Bullet.Height}
		hit := false
		for i := range r.enemies {
			if r.enemies[i].hit {
				continue
			}
			if br.overlaps(r.enemyHitbox(i)) {
				r.sounds.Play(SoundExplosion)
				r.enemies[i].hit = true
				kills++
				hit = true
				break
			}
		}
		if !hit {
			r.bullets[bw] = b
			bw++
		}
	}
	r.bullets = r.bullets[:bw]
	return kills
}
