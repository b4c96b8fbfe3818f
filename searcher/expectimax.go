package searcher

import (
	"context"

	"github.com/cajowils/pacman-tourney/game"
)

// Expectimax models the opponents as uniformly random instead of
// adversarial: ghost turns become chance nodes whose value is the
// arithmetic mean of their children.
type Expectimax struct {
	settings
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{settings: newSettings(options...)}
}

func (e *Expectimax) FindAction(ctx context.Context, gs *game.GameState) (game.Direction, float64) {
	e.metrics.Start(e.depth)
	defer e.metrics.Complete()

	if gs.IsOver() {
		return game.Stop, e.evaluate(gs)
	}

	best := game.Stop
	bestValue := negInf
	for i, action := range gs.LegalActions(0) {
		if i > 0 && ctx.Err() != nil {
			break
		}
		agent, depth := nextTurn(0, gs.NumAgents(), e.depth)
		value := e.value(successor(gs, 0, action), depth, agent)
		if value > bestValue {
			bestValue = value
			best = action
		}
	}
	return best, bestValue
}

func (e *Expectimax) value(gs *game.GameState, depth, agent int) float64 {
	e.metrics.AddNode()
	if gs.IsOver() || depth == 0 {
		e.metrics.AddLeaf()
		return e.evaluate(gs)
	}
	if agent == 0 {
		return e.maxValue(gs, depth)
	}
	return e.expectedValue(gs, depth, agent)
}

func (e *Expectimax) maxValue(gs *game.GameState, depth int) float64 {
	actions := gs.LegalActions(0)
	if len(actions) == 0 {
		return e.evaluate(gs)
	}

	v := negInf
	for _, action := range actions {
		agent, nextDepth := nextTurn(0, gs.NumAgents(), depth)
		if value := e.value(successor(gs, 0, action), nextDepth, agent); value > v {
			v = value
		}
	}
	return v
}

func (e *Expectimax) expectedValue(gs *game.GameState, depth, agent int) float64 {
	actions := gs.LegalActions(agent)
	if len(actions) == 0 {
		return e.evaluate(gs)
	}

	total := 0.0
	for _, action := range actions {
		nextAgent, nextDepth := nextTurn(agent, gs.NumAgents(), depth)
		total += e.value(successor(gs, agent, action), nextDepth, nextAgent)
	}
	return total / float64(len(actions))
}
