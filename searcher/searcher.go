// Package searcher implements adversarial game-tree search over game
// states: minimax, minimax with alpha-beta pruning, and expectimax.
//
// Depth is counted in plies - one ply is a full round of every agent
// acting once - and decrements only after the last agent of a round.
// Agent 0 maximizes; all other agents minimize (or average, for
// expectimax) in index order.
package searcher

import (
	"context"
	"math"

	"github.com/cajowils/pacman-tourney/experiments/metrics"
	"github.com/cajowils/pacman-tourney/game"
)

const (
	DefaultDepth = 2

	// MaxDepth caps the ply count so a misconfigured caller cannot blow
	// the call stack; recursion depth is bounded by depth times the
	// agent count.
	MaxDepth = 64
)

// Strategy picks the best action for agent 0 at a state and reports the
// value the search assigned to it. Implementations honor ctx between
// root actions: on cancellation they return the best action found so
// far. A terminal root yields (Stop, evaluation).
type Strategy interface {
	FindAction(ctx context.Context, gs *game.GameState) (game.Direction, float64)
}

type settings struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Option func(*settings)

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = min(depth, MaxDepth)
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func newSettings(options ...Option) settings {
	s := settings{
		depth:    DefaultDepth,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// nextTurn advances to the following agent, consuming one ply of depth
// when the round wraps back to agent 0.
func nextTurn(agent, numAgents, depth int) (nextAgent, nextDepth int) {
	nextAgent = (agent + 1) % numAgents
	nextDepth = depth
	if nextAgent == 0 {
		nextDepth--
	}
	return nextAgent, nextDepth
}

// successor resolves one in-tree move. Actions always come from
// LegalActions on a non-terminal state, so a failure here means the
// state model itself is broken.
func successor(gs *game.GameState, agent int, action game.Direction) *game.GameState {
	succ, err := gs.GenerateSuccessor(agent, action)
	if err != nil {
		panic(err)
	}
	return succ
}

var negInf = math.Inf(-1)
var posInf = math.Inf(1)
