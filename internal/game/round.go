package game

import (
	"math/rand"

	"github.com/pkarhu/starfall/internal/config"
)

// Input is the player intent sampled for one frame.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Round owns one round's entity state and advances it one frame at a time
// until the player collides with an enemy. All collections are mutated only
// inside Step; rendering reads them between steps.
type Round struct {
	cfg     config.Config
	screenW float64
	screenH float64

	player  player
	bullets []bullet
	enemies []enemy

	score      int
	shotsFired int

	fireTimer  float64 // countdown until the next shot is allowed
	spawnTimer float64 // countdown until the next enemy spawn

	rng    *rand.Rand
	sounds Sounds
	over   bool
}

// NewRound starts a fresh round: empty collections, zero score, the player
// centered horizontally and anchored near the bottom of the screen.
func NewRound(cfg config.Config, rng *rand.Rand, sounds Sounds) *Round {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	return &Round{
		cfg:     cfg,
		screenW: w,
		screenH: h,
		player: player{
			x: w/2 - cfg.Player.Width/2,
			y: h - cfg.Player.Height - cfg.Player.BottomMargin,
		},
		spawnTimer: cfg.Enemy.SpawnDelay,
		rng:        rng,
		sounds:     sounds,
	}
}

// Step advances the round by one frame of dt seconds. The phase order is
// observable behaviour: fire before movement integration, collisions before
// the game-over check, the game-over check before off-screen culling.
func (r *Round) Step(dt float64, in Input) {
	if r.over {
		return
	}

	if r.fireTimer > 0 {
		r.fireTimer -= dt
	}

	// Horizontal movement, clamped to the screen.
	if in.Left {
		r.player.x -= r.cfg.Player.Speed * dt
	}
	if in.Right {
		r.player.x += r.cfg.Player.Speed * dt
	}
	if r.player.x < 0 {
		r.player.x = 0
	}
	if max := r.screenW - r.cfg.Player.Width; r.player.x > max {
		r.player.x = max
	}

	// Fire: one bullet centered on the player, gated by the cooldown.
	if in.Fire && r.fireTimer <= 0 {
		r.fireTimer = r.cfg.Bullet.Cooldown
		r.sounds.Play(SoundShoot)
		r.shotsFired++
		r.bullets = append(r.bullets, bullet{
			x: r.player.x + r.cfg.Player.Width/2 - r.cfg.Bullet.Width/2,
			y: r.player.y,
		})
	}

	// Integrate positions. A bullet fired this frame moves this frame too.
	for i := range r.bullets {
		r.bullets[i].y -= r.cfg.Bullet.Speed * dt
	}
	for i := range r.enemies {
		r.enemies[i].y += r.cfg.Enemy.Speed * dt
	}

	// Spawn one enemy above the screen at a uniform random x.
	r.spawnTimer -= dt
	if r.spawnTimer <= 0 {
		r.spawnTimer = r.cfg.Enemy.SpawnInterval
		r.enemies = append(r.enemies, enemy{
			x: r.uniform(0, r.screenW-r.cfg.Enemy.Width),
			y: -r.cfg.Enemy.Height,
		})
	}

	r.score += r.resolveCollisions()

	// Terminal condition: any live enemy hitbox touching the player hitbox
	// ends the round this frame.
	ph := hitbox(r.player.x, r.player.y, r.cfg.Player.Width, r.cfg.Player.Height, r.cfg.Player.HitboxInset)
	for i := range r.enemies {
		if r.enemies[i].hit {
			continue
		}
		if ph.overlaps(r.enemyHitbox(i)) {
			r.sounds.Play(SoundGameOver)
			r.over = true
			return
		}
	}

	// Cull consumed enemies and enemies whose top edge passed the bottom.
	ew := 0
	for _, e := range r.enemies {
		if e.hit || e.y >= r.screenH {
			continue
		}
		r.enemies[ew] = e
		ew++
	}
	r.enemies = r.enemies[:ew]

	// Cull bullets fully above the top of the screen.
	bw := 0
	for _, b := range r.bullets {
		if b.y+r.cfg.Bullet.Height < 0 {
			continue
		}
		r.bullets[bw] = b
		bw++
	}
	r.bullets = r.bullets[:bw]
}

// enemyHitbox returns the inset collision box of the i-th enemy.
func (r *Round) enemyHitbox(i int) rect {
	e := r.enemies[i]
	return hitbox(e.x, e.y, r.cfg.Enemy.Width, r.cfg.Enemy.Height, r.cfg.Enemy.HitboxInset)
}

// uniform draws from [min, max).
func (r *Round) uniform(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Over reports whether the terminal collision has fired.
func (r *Round) Over() bool { return r.over }

// Score returns the kill count accumulated so far this round.
func (r *Round) Score() int { return r.score }

// ShotsFired returns how many bullets this round has emitted.
func (r *Round) ShotsFired() int { return r.shotsFired }

// RoundSnapshot is a lightweight copy of the round state after a step.
type RoundSnapshot struct {
	PlayerX float64
	PlayerY float64
	Bullets []Point
	Enemies []Point
	Score   int
	Over    bool
}

// Snapshot captures the live entities. Tombstoned enemies never appear: the
// step that marks them also removes them before returning.
func (r *Round) Snapshot() RoundSnapshot {
	snap := RoundSnapshot{
		PlayerX: r.player.x,
		PlayerY: r.player.y,
		Score:   r.score,
		Over:    r.over,
	}
	for _, b := range r.bullets {
		snap.Bullets = append(snap.Bullets, Point{X: b.x, Y: b.y})
	}
	for _, e := range r.enemies {
		if e.hit {
			continue
		}
		snap.Enemies = append(snap.Enemies, Point{X: e.x, Y: e.y})
	}
	return snap
}
