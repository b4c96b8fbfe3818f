// Package agent implements the playable agents: reflex, planning,
// adversarial and learning pacman agents, plus the ghost opponents.
// Agents are composed from strategy pieces (evaluation functions,
// search strategies, learners) instead of an inheritance hierarchy.
package agent

import (
	"context"

	"github.com/cajowils/pacman-tourney/game"
)

// Agent picks one action per turn. Implementations act for a fixed
// agent index; pacman agents always act for index 0.
type Agent interface {
	Action(ctx context.Context, gs *game.GameState) (game.Direction, error)
}

// Learner is implemented by agents that learn from experience. The
// engine feeds a learning agent every transition its own moves produce.
type Learner interface {
	Observe(prev *game.GameState, action game.Direction, next *game.GameState)
}
