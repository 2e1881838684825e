package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pkarhu/starfall/internal/config"
)

// mode is the session state: one round playing, or the game-over overlay
// waiting for a restart.
type mode int

const (
	modePlaying mode = iota
	modeGameOver
)

// Session is the ebiten.Game driving the whole process lifetime: it runs
// rounds back to back, showing the game-over overlay between them. There is
// no terminal state; the loop ends when the window is closed.
type Session struct {
	cfg    config.Config
	assets *Assets
	rng    *rand.Rand

	mode       mode
	round      *Round
	finalScore int
	paused     bool

	stats Stats
}

// NewSession starts in the playing state with a fresh round. assets may be
// nil for headless use; the session then runs silently and must not be
// passed to ebiten.RunGame.
func NewSession(cfg config.Config, assets *Assets, seed int64) *Session {
	s := &Session{
		cfg:    cfg,
		assets: assets,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay rng
	}
	s.round = NewRound(cfg, s.rng, s.sounds())
	return s
}

func (s *Session) sounds() Sounds {
	if s.assets == nil {
		return NopSounds{}
	}
	return s.assets.Sounds()
}

func (s *Session) Update() error {
	// The session report can be copied in either mode.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		_ = s.stats.CopyReport()
	}

	switch s.mode {
	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			s.paused = !s.paused
		}
		s.stepPlaying(1.0/float64(ebiten.TPS()), readInput())
	case modeGameOver:
		s.stepGameOver(inpututil.IsKeyJustPressed(ebiten.KeyEnter))
	}
	return nil
}

// stepPlaying advances the active round one frame and handles the
// playing -> game-over transition. Separated from Update so tests and the
// headless runner can drive it without ebiten.
func (s *Session) stepPlaying(dt float64, in Input) {
	if s.paused {
		return
	}
	s.round.Step(dt, in)
	if s.round.Over() {
		s.finalScore = s.round.Score()
		s.stats.RecordRound(s.round.Score(), s.round.ShotsFired())
		s.mode = modeGameOver
	}
}

// stepGameOver waits for the restart signal and starts a fresh round: all
// entity collections empty, score reset to zero.
func (s *Session) stepGameOver(restart bool) {
	if !restart {
		return
	}
	s.round = NewRound(s.cfg, s.rng, s.sounds())
	s.paused = false
	s.mode = modePlaying
}

// readInput samples the held movement and fire keys for this frame.
func readInput() Input {
	return Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (s *Session) Draw(screen *ebiten.Image) {
	switch s.mode {
	case modePlaying:
		s.drawRound(screen)
	case modeGameOver:
		s.drawGameOver(screen)
	}
}

func (s *Session) Layout(_, _ int) (int, int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// Stats exposes the accumulated session aggregates.
func (s *Session) Stats() Stats { return s.stats }
