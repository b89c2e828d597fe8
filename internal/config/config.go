// Package config provides YAML-based configuration loading for gridsnake.
// Arena geometry, timing intervals and the starting layout are fixed inputs
// to the simulation; they are read once at startup and never renegotiated.
package config

import "fmt"

// Config contains all tunable parameters of the simulation.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
}

// ArenaConfig defines the playfield dimensions in grid cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the two independent interval timers, in milliseconds.
type TimingConfig struct {
	MoveIntervalMS int `yaml:"move_interval_ms"`
	FoodIntervalMS int `yaml:"food_interval_ms"`
}

// StartConfig defines the snake's starting layout after launch and after
// every game-over reset.
type StartConfig struct {
	HeadX     int    `yaml:"head_x"`
	HeadY     int    `yaml:"head_y"`
	SegmentX  int    `yaml:"segment_x"`
	SegmentY  int    `yaml:"segment_y"`
	Direction string `yaml:"direction"` // left, up, right or down
}

// Default returns the built-in configuration: a 20x20 arena, 150 ms movement
// interval, 10 s food-spawn interval, head at (3,3) over a segment at (3,2),
// moving up.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			MoveIntervalMS: 150,
			FoodIntervalMS: 10000,
		},
		Start: StartConfig{
			HeadX:     3,
			HeadY:     3,
			SegmentX:  3,
			SegmentY:  2,
			Direction: "up",
		},
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Timing.MoveIntervalMS <= 0 {
		return fmt.Errorf("config: move_interval_ms must be positive, got %d", c.Timing.MoveIntervalMS)
	}
	if c.Timing.FoodIntervalMS <= 0 {
		return fmt.Errorf("config: food_interval_ms must be positive, got %d", c.Timing.FoodIntervalMS)
	}
	if !inArena(c.Start.HeadX, c.Start.HeadY, c.Arena) {
		return fmt.Errorf("config: start head (%d,%d) outside arena", c.Start.HeadX, c.Start.HeadY)
	}
	if !inArena(c.Start.SegmentX, c.Start.SegmentY, c.Arena) {
		return fmt.Errorf("config: start segment (%d,%d) outside arena", c.Start.SegmentX, c.Start.SegmentY)
	}
	switch c.Start.Direction {
	case "left", "up", "right", "down":
	default:
		return fmt.Errorf("config: unknown start direction %q", c.Start.Direction)
	}
	return nil
}

func inArena(x, y int, a ArenaConfig) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height
}
