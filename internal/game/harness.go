package game

import (
	"math/rand"

	"github.com/pkarhu/starfall/internal/config"
)

// TestRound is a headless wrapper around Round used by package tests and
// cmd/headless-report. It mirrors the session's playing step without any
// Ebiten dependency and supports deterministic seeding and scripted entity
// placement.
type TestRound struct {
	Round *Round

	cfg    config.Config
	seed   int64
	sounds Sounds
}

// roundOptionKind controls the pass in which an option is applied.
type roundOptionKind int

const (
	roundOptSetup  roundOptionKind = iota // config, seed, sounds — before the round exists
	roundOptEntity                        // scripted entity placement — after
)

// RoundOption is a builder function applied to a TestRound during
// construction.
type RoundOption struct {
	kind roundOptionKind
	fn   func(*TestRound)
}

// WithConfig replaces the default tuning.
func WithConfig(cfg config.Config) RoundOption {
	return RoundOption{roundOptSetup, func(tr *TestRound) { tr.cfg = cfg }}
}

// WithSeed sets the RNG seed for deterministic spawns.
func WithSeed(seed int64) RoundOption {
	return RoundOption{roundOptSetup, func(tr *TestRound) { tr.seed = seed }}
}

// WithSounds routes effect plays to s (for example a RecorderSounds).
func WithSounds(s Sounds) RoundOption {
	return RoundOption{roundOptSetup, func(tr *TestRound) { tr.sounds = s }}
}

// WithPlayerX moves the player to x before the first step.
func WithPlayerX(x float64) RoundOption {
	return RoundOption{roundOptEntity, func(tr *TestRound) { tr.Round.player.x = x }}
}

// WithEnemyAt places a live enemy at x,y.
func WithEnemyAt(x, y float64) RoundOption {
	return RoundOption{roundOptEntity, func(tr *TestRound) {
		tr.Round.enemies = append(tr.Round.enemies, enemy{x: x, y: y})
	}}
}

// WithBulletAt places a live bullet at x,y.
func WithBulletAt(x, y float64) RoundOption {
	return RoundOption{roundOptEntity, func(tr *TestRound) {
		tr.Round.bullets = append(tr.Round.bullets, bullet{x: x, y: y})
	}}
}

// WithSpawnTimer overrides the countdown to the next enemy spawn.
func WithSpawnTimer(seconds float64) RoundOption {
	return RoundOption{roundOptEntity, func(tr *TestRound) { tr.Round.spawnTimer = seconds }}
}

// NewTestRound constructs a headless round. Setup options apply first, then
// the round is created, then entity options.
func NewTestRound(opts ...RoundOption) *TestRound {
	tr := &TestRound{
		cfg:    config.Default(),
		seed:   1,
		sounds: NopSounds{},
	}
	for _, o := range opts {
		if o.kind == roundOptSetup {
			o.fn(tr)
		}
	}
	tr.Round = NewRound(tr.cfg, rand.New(rand.NewSource(tr.seed)), tr.sounds) // #nosec G404 -- test harness
	for _, o := range opts {
		if o.kind == roundOptEntity {
			o.fn(tr)
		}
	}
	return tr
}

// RunFrames advances the round n frames of dt seconds with the same input
// each frame.
func (tr *TestRound) RunFrames(n int, dt float64, in Input) {
	for i := 0; i < n; i++ {
		tr.Round.Step(dt, in)
	}
}

// RunUntilOver steps until the round terminates, up to maxFrames. It
// returns the number of frames stepped, or -1 if the round outlived the
// budget.
func (tr *TestRound) RunUntilOver(maxFrames int, dt float64, in Input) int {
	for i := 0; i < maxFrames; i++ {
		tr.Round.Step(dt, in)
		if tr.Round.Over() {
			return i + 1
		}
	}
	return -1
}

// Snapshot returns the live round state.
func (tr *TestRound) Snapshot() RoundSnapshot {
	return tr.Round.Snapshot()
}
