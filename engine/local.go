package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cajowils/pacman-tourney/agent"
	"github.com/cajowils/pacman-tourney/experiments/metrics"
	"github.com/cajowils/pacman-tourney/game"
	"github.com/rs/zerolog/log"
)

// Engine drives one local game from an initial state to a terminal
// state or the turn cap.
type Engine struct {
	state     *game.GameState
	agents    []agent.Agent
	observers []Observer
	maxTurns  int
}

type Option func(*Engine)

// WithObserver registers an observer; observers are notified in
// registration order after every move.
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// New builds an engine for a game. Every agent in the state needs a
// controller: agents[i] acts for agent index i.
func New(gs *game.GameState, agents []agent.Agent, options ...Option) (*Engine, error) {
	if gs.NumAgents() != len(agents) {
		return nil, fmt.Errorf("state has %d agents but %d controllers were given", gs.NumAgents(), len(agents))
	}

	e := &Engine{
		state:    gs,
		agents:   agents,
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// State returns the current (after Run: final) game state.
func (e *Engine) State() *game.GameState { return e.state }

// Run plays the game to a terminal state or the turn cap. An agent
// failing to act or playing an illegal action aborts the game with an
// error; that is a bug in the agent, not a game outcome.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, error) {
	start := time.Now()
	log.Info().Msgf("starting game with %d agents", e.state.NumAgents())

	turns := 0
	for !e.state.IsOver() && turns < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return e.gameMetric(start, turns), fmt.Errorf("game interrupted: %w", err)
		}

		agentIndex := turns % e.state.NumAgents()
		controller := e.agents[agentIndex]

		action, err := controller.Action(ctx, e.state)
		if err != nil {
			return e.gameMetric(start, turns), fmt.Errorf("agent %d failed to act: %w", agentIndex, err)
		}

		next, err := e.state.GenerateSuccessor(agentIndex, action)
		if err != nil {
			return e.gameMetric(start, turns), fmt.Errorf("agent %d played an illegal action: %w", agentIndex, err)
		}
		log.Debug().Msgf("turn %d: agent %d plays %v (score %d)", turns, agentIndex, action, next.Score())

		if learner, ok := controller.(agent.Learner); ok {
			learner.Observe(e.state, action, next)
		}
		for _, observer := range e.observers {
			observer.Notify(next, agentIndex, action)
		}

		e.state = next
		turns++
	}

	metric := e.gameMetric(start, turns)
	log.Info().Msgf("game over after %d turns: winner %s, score %d", metric.Turns, metric.Winner, metric.Score)
	return metric, nil
}

func (e *Engine) gameMetric(start time.Time, turns int) metrics.GameMetric {
	winner := WinnerNone
	switch {
	case e.state.IsWin():
		winner = WinnerPacman
	case e.state.IsLose():
		winner = WinnerGhosts
	}

	end := time.Now()
	return metrics.GameMetric{
		Winner:    winner,
		Score:     e.state.Score(),
		Turns:     turns,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}
