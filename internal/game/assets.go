package game

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	// Sprite and background decoders for ebitenutil.NewImageFromFile.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// sampleRate is the shared audio context rate; WAVs are resampled to it on
// load.
const sampleRate = 44100

// Overlay and HUD face sizes, in points at 72 DPI.
const (
	headlineFontSize = 80
	bodyFontSize     = 40
	promptFontSize   = 20
	hudFontSize      = 24
)

// Assets bundles every texture, sound and text face the game needs. Loaded
// once at startup, read-only afterwards.
type Assets struct {
	Player     *ebiten.Image
	Enemy      *ebiten.Image
	Background *ebiten.Image

	Headline text.Face // "GAME OVER"
	Body     text.Face // final score line
	Prompt   text.Face // restart hint
	HUD      text.Face // in-round score counter

	sounds *oneShotPlayer
}

// LoadAssets reads all sprites, sounds and fonts from dir. Any failure is
// returned wrapped; callers treat it as fatal — the simulation assumes
// assets are valid once it starts.
func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{}

	var err error
	if a.Player, err = loadImage(filepath.Join(dir, "player.png")); err != nil {
		return nil, err
	}
	if a.Enemy, err = loadImage(filepath.Join(dir, "enemy.png")); err != nil {
		return nil, err
	}
	if a.Background, err = loadImage(filepath.Join(dir, "background.png")); err != nil {
		return nil, err
	}

	a.sounds = &oneShotPlayer{ctx: audio.NewContext(sampleRate)}
	names := [soundCount]string{
		SoundShoot:     "shoot.wav",
		SoundExplosion: "explosion.wav",
		SoundGameOver:  "game_over.wav",
	}
	for id, name := range names {
		pcm, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		a.sounds.pcm[id] = pcm
	}

	if err := a.loadFaces(); err != nil {
		return nil, err
	}
	return a, nil
}

// Sounds returns the one-shot effect player backed by these assets.
func (a *Assets) Sounds() Sounds { return a.sounds }

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// loadWav decodes a WAV file to raw PCM at the context sample rate so it
// can be replayed cheaply through NewPlayerFromBytes.
func loadWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}
	defer f.Close()
	s, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	return pcm, nil
}

// loadFaces builds the overlay and HUD faces from the bundled Go Regular
// font so text layout never depends on files in the asset directory.
func (a *Assets) loadFaces() error {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	sizes := []struct {
		size float64
		dst  *text.Face
	}{
		{headlineFontSize, &a.Headline},
		{bodyFontSize, &a.Body},
		{promptFontSize, &a.Prompt},
		{hudFontSize, &a.HUD},
	}
	for _, fc := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    fc.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("failed to build %vpt face: %w", fc.size, err)
		}
		*fc.dst = text.NewGoXFace(face)
	}
	return nil
}
