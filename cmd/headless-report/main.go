// Command headless-report runs scripted rounds without a window and prints
// aggregate gameplay statistics. Useful for sanity-checking tuning changes
// before playing them.
package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/pkarhu/starfall/internal/config"
	"github.com/pkarhu/starfall/internal/game"
)

func main() {
	var runs int
	var maxFrames int
	var dt float64
	var seedBase int64
	var seedStep int64
	var cfgPath string

	flag.IntVar(&runs, "runs", 10, "number of headless rounds")
	flag.IntVar(&maxFrames, "max-frames", 36000, "frame budget per round")
	flag.Float64Var(&dt, "dt", 1.0/60.0, "simulated frame time in seconds")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	flag.Parse()

	if runs <= 0 {
		log.Fatal("-runs must be > 0")
	}
	if dt <= 0 {
		log.Fatal("-dt must be > 0")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}

	var stats game.Stats
	totalFrames := 0
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		tr := game.NewTestRound(game.WithConfig(cfg), game.WithSeed(seed))

		frames := 0
		for frames < maxFrames && !tr.Round.Over() {
			tr.Round.Step(dt, autopilot(tr.Snapshot(), cfg))
			frames++
		}
		totalFrames += frames

		stats.RecordRound(tr.Round.Score(), tr.Round.ShotsFired())
		log.Info("run complete",
			"run", i+1,
			"seed", seed,
			"score", tr.Round.Score(),
			"survived_s", fmt.Sprintf("%.1f", float64(frames)*dt),
			"ended", tr.Round.Over(),
		)
	}

	fmt.Println()
	fmt.Print(stats.Report())
	fmt.Printf("mean survival:  %.1fs\n", float64(totalFrames)*dt/float64(runs))
}

// autopilot steers under the lowest enemy and holds fire, backing off when
// that enemy is close enough to collide.
func autopilot(snap game.RoundSnapshot, cfg config.Config) game.Input {
	in := game.Input{Fire: true}
	if len(snap.Enemies) == 0 {
		return in
	}

	lowest := snap.Enemies[0]
	for _, e := range snap.Enemies[1:] {
		if e.Y > lowest.Y {
			lowest = e
		}
	}

	playerCx := snap.PlayerX + cfg.Player.Width/2
	enemyCx := lowest.X + cfg.Enemy.Width/2

	// Near the player's row the priority flips from aiming to dodging.
	if lowest.Y+cfg.Enemy.Height > snap.PlayerY-cfg.Enemy.Height {
		if enemyCx >= playerCx {
			in.Left = true
		} else {
			in.Right = true
		}
		return in
	}

	if math.Abs(enemyCx-playerCx) > cfg.Bullet.Width {
		if enemyCx > playerCx {
			in.Right = true
		} else {
			in.Left = true
		}
	}
	return in
}
