package agent

import (
	"context"

	"github.com/cajowils/pacman-tourney/game"
	"github.com/cajowils/pacman-tourney/search"
	"github.com/rs/zerolog/log"
)

// Planner produces a full action sequence from a state.
type Planner func(*game.GameState) []game.Direction

// SearchAgent plans a complete action sequence on its first turn and
// replays it one action per turn. Once the plan runs out it stops.
type SearchAgent struct {
	plan    Planner
	queue   []game.Direction
	planned bool
}

func NewSearchAgent(plan Planner) *SearchAgent {
	return &SearchAgent{plan: plan}
}

func (a *SearchAgent) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	if !a.planned {
		a.queue = a.plan(gs)
		a.planned = true
		log.Debug().Msgf("search agent planned %d actions", len(a.queue))
	}
	if len(a.queue) == 0 {
		return game.Stop, nil
	}
	action := a.queue[0]
	a.queue = a.queue[1:]
	return action, nil
}

// ClosestDotAgent greedily chases the nearest food: whenever its
// current path segment runs out it plans a fresh shortest path to the
// closest remaining food. Greedy segment chaining is not globally
// optimal, but every segment is.
type ClosestDotAgent struct {
	queue []game.Direction
}

func NewClosestDotAgent() *ClosestDotAgent {
	return &ClosestDotAgent{}
}

func (a *ClosestDotAgent) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	if len(a.queue) == 0 {
		a.queue = search.BreadthFirst[game.Position](search.NewAnyFoodProblem(gs))
	}
	if len(a.queue) == 0 {
		// No reachable food left.
		return game.Stop, nil
	}
	action := a.queue[0]
	a.queue = a.queue[1:]
	return action, nil
}
