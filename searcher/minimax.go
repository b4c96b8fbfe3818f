package searcher

import (
	"context"

	"github.com/cajowils/pacman-tourney/game"
)

// Minimax searches the full game tree to a fixed ply depth: agent 0
// picks the action maximizing its value assuming every other agent
// responds to minimize it.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options...)}
}

func (m *Minimax) FindAction(ctx context.Context, gs *game.GameState) (game.Direction, float64) {
	m.metrics.Start(m.depth)
	defer m.metrics.Complete()

	if gs.IsOver() {
		return game.Stop, m.evaluate(gs)
	}

	best := game.Stop
	bestValue := negInf
	for i, action := range gs.LegalActions(0) {
		// Interruptible between root actions: keep the best so far.
		if i > 0 && ctx.Err() != nil {
			break
		}
		agent, depth := nextTurn(0, gs.NumAgents(), m.depth)
		value := m.value(successor(gs, 0, action), depth, agent)
		if value > bestValue {
			bestValue = value
			best = action
		}
	}
	return best, bestValue
}

func (m *Minimax) value(gs *game.GameState, depth, agent int) float64 {
	m.metrics.AddNode()
	if gs.IsOver() || depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(gs)
	}
	if agent == 0 {
		return m.maxValue(gs, depth)
	}
	return m.minValue(gs, depth, agent)
}

func (m *Minimax) maxValue(gs *game.GameState, depth int) float64 {
	actions := gs.LegalActions(0)
	if len(actions) == 0 {
		return m.evaluate(gs)
	}

	v := negInf
	for _, action := range actions {
		agent, nextDepth := nextTurn(0, gs.NumAgents(), depth)
		if value := m.value(successor(gs, 0, action), nextDepth, agent); value > v {
			v = value
		}
	}
	return v
}

func (m *Minimax) minValue(gs *game.GameState, depth, agent int) float64 {
	actions := gs.LegalActions(agent)
	if len(actions) == 0 {
		return m.evaluate(gs)
	}

	v := posInf
	for _, action := range actions {
		nextAgent, nextDepth := nextTurn(agent, gs.NumAgents(), depth)
		if value := m.value(successor(gs, agent, action), nextDepth, nextAgent); value < v {
			v = value
		}
	}
	return v
}
