package main

import (
	"flag"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pkarhu/starfall/internal/config"
	"github.com/pkarhu/starfall/internal/game"
)

func main() {
	var cfgPath string
	var assetDir string
	var seed int64
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	flag.StringVar(&assetDir, "assets", "", "override the asset directory")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}
	if assetDir != "" {
		cfg.Assets.Dir = assetDir
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assets, err := game.LoadAssets(cfg.Assets.Dir)
	if err != nil {
		log.Fatal("could not load assets", "dir", cfg.Assets.Dir, "err", err)
	}

	log.Info("starting", "window", cfg.Window.Title, "seed", seed)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game.NewSession(cfg, assets, seed)); err != nil {
		log.Fatal("game loop failed", "err", err)
	}
}
