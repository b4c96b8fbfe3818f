package searcher

import (
	"context"

	"github.com/cajowils/pacman-tourney/game"
)

// AlphaBeta is minimax with alpha-beta pruning. It always picks the same
// action as an unpruned Minimax with the same depth and evaluation
// (first-seen tie-break included); pruning only cuts the work.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options...)}
}

func (ab *AlphaBeta) FindAction(ctx context.Context, gs *game.GameState) (game.Direction, float64) {
	ab.metrics.Start(ab.depth)
	defer ab.metrics.Complete()

	if gs.IsOver() {
		return game.Stop, ab.evaluate(gs)
	}

	best := game.Stop
	bestValue := negInf
	alpha := negInf
	for i, action := range gs.LegalActions(0) {
		if i > 0 && ctx.Err() != nil {
			break
		}
		agent, depth := nextTurn(0, gs.NumAgents(), ab.depth)
		value := ab.value(successor(gs, 0, action), depth, agent, alpha, posInf)
		if value > bestValue {
			bestValue = value
			best = action
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	return best, bestValue
}

func (ab *AlphaBeta) value(gs *game.GameState, depth, agent int, alpha, beta float64) float64 {
	ab.metrics.AddNode()
	if gs.IsOver() || depth == 0 {
		ab.metrics.AddLeaf()
		return ab.evaluate(gs)
	}
	if agent == 0 {
		return ab.maxValue(gs, depth, alpha, beta)
	}
	return ab.minValue(gs, depth, agent, alpha, beta)
}

func (ab *AlphaBeta) maxValue(gs *game.GameState, depth int, alpha, beta float64) float64 {
	actions := gs.LegalActions(0)
	if len(actions) == 0 {
		return ab.evaluate(gs)
	}

	v := negInf
	for _, action := range actions {
		agent, nextDepth := nextTurn(0, gs.NumAgents(), depth)
		if value := ab.value(successor(gs, 0, action), nextDepth, agent, alpha, beta); value > v {
			v = value
		}
		// The minimizer above already has beta available; nothing here
		// can improve past it.
		if v >= beta {
			ab.metrics.AddPrune()
			return v
		}
		if v > alpha {
			alpha = v
		}
	}
	return v
}

func (ab *AlphaBeta) minValue(gs *game.GameState, depth, agent int, alpha, beta float64) float64 {
	actions := gs.LegalActions(agent)
	if len(actions) == 0 {
		return ab.evaluate(gs)
	}

	v := posInf
	for _, action := range actions {
		nextAgent, nextDepth := nextTurn(agent, gs.NumAgents(), depth)
		if value := ab.value(successor(gs, agent, action), nextDepth, nextAgent, alpha, beta); value < v {
			v = value
		}
		if v <= alpha {
			ab.metrics.AddPrune()
			return v
		}
		if v < beta {
			beta = v
		}
	}
	return v
}
