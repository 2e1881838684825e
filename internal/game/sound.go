package game

import "github.com/hajimehoshi/ebiten/v2/audio"

// SoundID names one of the three one-shot effects a round can trigger.
type SoundID int

const (
	SoundShoot SoundID = iota
	SoundExplosion
	SoundGameOver
	soundCount
)

// Sounds plays one-shot effects. Implementations must not block the
// simulation step; overlapping instances are allowed.
type Sounds interface {
	Play(id SoundID)
}

// NopSounds discards every effect. Used by headless runs.
type NopSounds struct{}

func (NopSounds) Play(SoundID) {}

// RecorderSounds counts effect plays; tests assert on the counters.
type RecorderSounds struct {
	Counts [soundCount]int
}

func (r *RecorderSounds) Play(id SoundID) {
	r.Counts[id]++
}

// oneShotPlayer plays decoded PCM buffers through a shared audio context.
// Each Play spawns an independent player so effects can overlap.
type oneShotPlayer struct {
	ctx *audio.Context
	pcm [soundCount][]byte
}

func (p *oneShotPlayer) Play(id SoundID) {
	if id < 0 || id >= soundCount || len(p.pcm[id]) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(p.pcm[id]).Play()
}
