package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cajowils/pacman-tourney/agent"
	"github.com/cajowils/pacman-tourney/engine"
	"github.com/cajowils/pacman-tourney/experiments/metrics"
	"github.com/cajowils/pacman-tourney/game"
	"github.com/cajowils/pacman-tourney/searcher"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func run(cfg Config) error {
	layout, err := resolveLayout(cfg.Layout)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	collector := metrics.NewCollector()

	newPacman, qlearner, err := pacmanBuilder(cfg.Pacman, rng, collector)
	if err != nil {
		return err
	}

	if qlearner != nil {
		log.Info().Msgf("training q-learning pacman for %d games", cfg.Pacman.TrainGames)
		for i := 0; i < cfg.Pacman.TrainGames; i++ {
			if _, _, err := playGame(cfg, layout, qlearner, rng, nil); err != nil {
				return fmt.Errorf("training game %d failed: %w", i+1, err)
			}
		}
		qlearner.SetEpsilon(0)
	}

	writer, err := metrics.NewWriter(cfg.ResultsDir)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	wins := 0
	for i := 0; i < cfg.Games; i++ {
		pacman, err := newPacman()
		if err != nil {
			return err
		}

		metric, moves, err := playGame(cfg, layout, pacman, rng, collector)
		if err != nil {
			return fmt.Errorf("game %d failed: %w", i+1, err)
		}
		metric.Layout = cfg.Layout
		if metric.Winner == engine.WinnerPacman {
			wins++
		}

		id := uuid.New()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     cfg.Pacman.Kind,
			Agent2:     cfg.Ghosts.Kind,
			GameMetric: metric,
		})
		for _, move := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: move})
		}
		log.Info().Msgf("game %d/%d: winner %s, score %d, %d turns", i+1, cfg.Games, metric.Winner, metric.Score, metric.Turns)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("pacman won %d/%d games; records written to %s", wins, cfg.Games, writer.Dir())
	return nil
}

// playGame runs one game of the configured matchup. A nil collector
// skips move metrics (used for training episodes).
func playGame(cfg Config, layout *game.Layout, pacman agent.Agent, rng *rand.Rand, collector metrics.Collector) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gs := game.NewGameState(layout)

	agents := []agent.Agent{pacman}
	for i := 1; i < gs.NumAgents(); i++ {
		ghost, err := newGhost(cfg.Ghosts, i, rng)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents = append(agents, ghost)
	}

	var moves []metrics.MoveMetric
	options := []engine.Option{engine.WithMaxTurns(cfg.MaxTurns)}
	if collector != nil {
		turn := 0
		options = append(options, engine.WithObserver(engine.ObserverFunc(func(gs *game.GameState, agentIndex int, action game.Direction) {
			if agentIndex == 0 {
				moves = append(moves, metrics.MoveMetric{Turn: turn, Agent: agentIndex, SearchMetric: collector.Complete()})
			}
			turn++
		})))
	}

	e, err := engine.New(gs, agents, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	metric, err := e.Run(context.Background())
	return metric, moves, err
}

// pacmanBuilder returns a factory for fresh pacman agents, plus the
// shared learning agent when the configured kind learns across games.
func pacmanBuilder(cfg PacmanConfig, rng *rand.Rand, collector metrics.Collector) (func() (agent.Agent, error), *agent.QLearningAgent, error) {
	evaluate, err := resolveEvaluation(cfg.Evaluation)
	if err != nil {
		return nil, nil, err
	}

	searchOptions := []searcher.Option{
		searcher.WithDepth(cfg.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(collector),
	}

	switch cfg.Kind {
	case "reflex":
		return func() (agent.Agent, error) {
			return agent.NewReflexAgent(evaluate, rng), nil
		}, nil, nil
	case "closest-dot":
		return func() (agent.Agent, error) {
			return agent.NewClosestDotAgent(), nil
		}, nil, nil
	case "minimax":
		return func() (agent.Agent, error) {
			return agent.NewAdversarialAgent(searcher.NewMinimax(searchOptions...)), nil
		}, nil, nil
	case "alphabeta":
		return func() (agent.Agent, error) {
			return agent.NewAdversarialAgent(searcher.NewAlphaBeta(searchOptions...)), nil
		}, nil, nil
	case "expectimax":
		return func() (agent.Agent, error) {
			return agent.NewAdversarialAgent(searcher.NewExpectimax(searchOptions...)), nil
		}, nil, nil
	case "qlearning":
		learner := agent.NewQLearningAgent(cfg.Alpha, cfg.Discount, cfg.Epsilon, rng)
		return func() (agent.Agent, error) {
			return learner, nil
		}, learner, nil
	default:
		return nil, nil, fmt.Errorf("unknown pacman kind %q", cfg.Kind)
	}
}

func newGhost(cfg GhostConfig, index int, rng *rand.Rand) (agent.Agent, error) {
	switch cfg.Kind {
	case "random":
		return agent.NewRandomGhost(index, rng), nil
	case "directional":
		return agent.NewDirectionalGhost(index, rng), nil
	default:
		return nil, fmt.Errorf("unknown ghost kind %q", cfg.Kind)
	}
}

func resolveEvaluation(name string) (game.Evaluate, error) {
	switch name {
	case "score":
		return game.EvaluateScore, nil
	case "survival", "":
		return game.EvaluateSurvival, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}

// resolveLayout accepts a built-in layout name or a path to a layout
// file.
func resolveLayout(name string) (*game.Layout, error) {
	switch name {
	case "test-maze":
		return game.ParseLayout(game.TestMaze)
	case "small-classic":
		return game.ParseLayout(game.SmallClassic)
	}

	if strings.HasSuffix(name, ".lay") {
		bytes, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout file %s: %w", name, err)
		}
		return game.ParseLayout(string(bytes))
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}
