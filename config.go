package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config drives a tournament run. Unset fields keep their defaults.
type Config struct {
	Layout     string       `toml:"layout"`
	Games      int          `toml:"games"`
	MaxTurns   int          `toml:"max_turns"`
	Seed       uint64       `toml:"seed"`
	ResultsDir string       `toml:"results_dir"`
	LogLevel   string       `toml:"log_level"`
	Pacman     PacmanConfig `toml:"pacman"`
	Ghosts     GhostConfig  `toml:"ghosts"`
}

type PacmanConfig struct {
	// Kind is one of reflex, closest-dot, minimax, alphabeta,
	// expectimax, qlearning.
	Kind       string  `toml:"kind"`
	Depth      int     `toml:"depth"`
	Evaluation string  `toml:"evaluation"`
	Alpha      float64 `toml:"alpha"`
	Discount   float64 `toml:"discount"`
	Epsilon    float64 `toml:"epsilon"`
	TrainGames int     `toml:"train_games"`
}

type GhostConfig struct {
	// Kind is one of random, directional.
	Kind string `toml:"kind"`
}

func defaultConfig() Config {
	return Config{
		Layout:     "test-maze",
		Games:      10,
		MaxTurns:   1000,
		Seed:       1,
		ResultsDir: "results",
		LogLevel:   "info",
		Pacman: PacmanConfig{
			Kind:       "alphabeta",
			Depth:      2,
			Evaluation: "survival",
			Alpha:      0.2,
			Discount:   0.8,
			Epsilon:    0.05,
			TrainGames: 2000,
		},
		Ghosts: GhostConfig{Kind: "random"},
	}
}

// loadConfig decodes a TOML file over the defaults. An empty path
// returns the defaults untouched.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if _, err := toml.Decode(string(bytes), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return cfg, nil
}
