// Package config provides YAML-based tuning for the shooter: window,
// entity sizes and speeds, spawn pacing and collision insets.
package config

import "fmt"

// Config holds every gameplay tunable. It is built once at startup and
// treated as read-only by the round and session for the process lifetime.
type Config struct {
	Window Window `yaml:"window"`
	Player Player `yaml:"player"`
	Bullet Bullet `yaml:"bullet"`
	Enemy  Enemy  `yaml:"enemy"`
	Assets Assets `yaml:"assets"`
}

// Window defines the logical screen and the OS window title.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Player defines the avatar sprite size, movement speed and collision inset.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // horizontal, px/s
	// BottomMargin is the gap between the player's bottom edge and the
	// bottom of the screen at round start.
	BottomMargin float64 `yaml:"bottom_margin"`
	// HitboxInset shrinks the player's collision box on all four sides so
	// near misses feel fair.
	HitboxInset float64 `yaml:"hitbox_inset"`
}

// Bullet defines projectile size, upward speed and the fire cooldown.
type Bullet struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`    // upward, px/s
	Cooldown float64 `yaml:"cooldown"` // seconds between shots while firing
}

// Enemy defines adversary size, descent speed, spawn pacing and collision
// inset. The same inset is used for bullet-vs-enemy and player-vs-enemy.
type Enemy struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // downward, px/s
	// SpawnDelay is the countdown to the first spawn of a round.
	SpawnDelay float64 `yaml:"spawn_delay"`
	// SpawnInterval is the countdown between subsequent spawns.
	SpawnInterval float64 `yaml:"spawn_interval"`
	HitboxInset   float64 `yaml:"hitbox_inset"`
}

// Assets points at the directory holding sprites and sound effects.
type Assets struct {
	Dir string `yaml:"dir"`
}

// Default returns the canonical tuning.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Starfall",
			Width:  800,
			Height: 600,
		},
		Player: Player{
			Width:        64,
			Height:       64,
			Speed:        700,
			BottomMargin: 10,
			HitboxInset:  10,
		},
		Bullet: Bullet{
			Width:    10,
			Height:   20,
			Speed:    800,
			Cooldown: 0.4,
		},
		Enemy: Enemy{
			Width:         64,
			Height:        64,
			Speed:         400,
			SpawnDelay:    0.5,
			SpawnInterval: 1.5,
			HitboxInset:   8,
		},
		Assets: Assets{
			Dir: "assets",
		},
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.0fx%.0f", c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > float64(c.Window.Width) {
		return fmt.Errorf("player width %.0f exceeds screen width %d", c.Player.Width, c.Window.Width)
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		return fmt.Errorf("bullet size must be positive, got %.0fx%.0f", c.Bullet.Width, c.Bullet.Height)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return fmt.Errorf("enemy size must be positive, got %.0fx%.0f", c.Enemy.Width, c.Enemy.Height)
	}
	if c.Enemy.Width > float64(c.Window.Width) {
		return fmt.Errorf("enemy width %.0f exceeds screen width %d", c.Enemy.Width, c.Window.Width)
	}
	if c.Player.Speed <= 0 || c.Bullet.Speed <= 0 || c.Enemy.Speed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	if c.Bullet.Cooldown <= 0 {
		return fmt.Errorf("bullet cooldown must be positive, got %v", c.Bullet.Cooldown)
	}
	if c.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("enemy spawn interval must be positive, got %v", c.Enemy.SpawnInterval)
	}
	if c.Player.HitboxInset*2 >= c.Player.Width || c.Player.HitboxInset*2 >= c.Player.Height {
		return fmt.Errorf("player hitbox inset %v collapses the hitbox", c.Player.HitboxInset)
	}
	if c.Enemy.HitboxInset*2 >= c.Enemy.Width || c.Enemy.HitboxInset*2 >= c.Enemy.Height {
		return fmt.Errorf("enemy hitbox inset %v collapses the hitbox", c.Enemy.HitboxInset)
	}
	return nil
}
