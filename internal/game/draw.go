package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var bulletColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}

// overlayColor is the translucent darkening over the background on the
// game-over screen.
var overlayColor = color.RGBA{A: 178}

// drawRound renders one frame of the active round: stretched background,
// player sprite, bullets as filled rectangles, enemy sprites, score HUD.
func (s *Session) drawRound(screen *ebiten.Image) {
	s.drawBackground(screen)

	snap := s.round.Snapshot()
	s.drawSprite(screen, s.assets.Player, snap.PlayerX, snap.PlayerY, s.cfg.Player.Width, s.cfg.Player.Height)
	for _, b := range snap.Bullets {
		vector.FillRect(screen,
			float32(b.X), float32(b.Y),
			float32(s.cfg.Bullet.Width), float32(s.cfg.Bullet.Height),
			bulletColor, false)
	}
	for _, e := range snap.Enemies {
		s.drawSprite(screen, s.assets.Enemy, e.X, e.Y, s.cfg.Enemy.Width, s.cfg.Enemy.Height)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 8)
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), s.assets.HUD, op)

	if s.paused {
		s.drawCentered(screen, "PAUSED", s.assets.Body, float64(s.cfg.Window.Height)/2)
	}
}

// drawGameOver renders the blocking overlay: darkened background, headline,
// final score and restart prompt, each centered with its measured width.
func (s *Session) drawGameOver(screen *ebiten.Image) {
	s.drawBackground(screen)

	w := float64(s.cfg.Window.Width)
	h := float64(s.cfg.Window.Height)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	s.drawCentered(screen, "GAME OVER", s.assets.Headline, h/2-40)
	s.drawCentered(screen, fmt.Sprintf("Final Score: %d", s.finalScore), s.assets.Body, h/2+40)
	s.drawCentered(screen, "Press ENTER to play again", s.assets.Prompt, h/2+80)
}

// drawBackground stretches the background texture over the whole screen.
func (s *Session) drawBackground(screen *ebiten.Image) {
	bg := s.assets.Background
	bw := bg.Bounds().Dx()
	bh := bg.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(s.cfg.Window.Width)/float64(bw),
		float64(s.cfg.Window.Height)/float64(bh),
	)
	screen.DrawImage(bg, op)
}

// drawSprite draws img scaled to w x h with its top-left corner at x,y.
func (s *Session) drawSprite(screen *ebiten.Image, img *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(img.Bounds().Dx()), h/float64(img.Bounds().Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawCentered draws str horizontally centered with its bottom edge at y.
func (s *Session) drawCentered(screen *ebiten.Image, str string, face text.Face, y float64) {
	tw, th := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.cfg.Window.Width)/2-tw/2, y-th)
	text.Draw(screen, str, face, op)
}
