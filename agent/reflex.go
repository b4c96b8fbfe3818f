package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cajowils/pacman-tourney/game"
	"golang.org/x/exp/rand"
)

// ReflexAgent rates each legal move by evaluating the state it leads to
// and picks uniformly among the best. It looks exactly one move ahead.
type ReflexAgent struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

func NewReflexAgent(evaluate game.Evaluate, rng *rand.Rand) *ReflexAgent {
	if evaluate == nil {
		evaluate = game.EvaluateSurvival
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &ReflexAgent{evaluate: evaluate, rng: rng}
}

func (a *ReflexAgent) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	actions := gs.LegalActions(0)
	if len(actions) == 0 {
		return game.Stop, fmt.Errorf("no legal actions for pacman")
	}

	var best []game.Direction
	bestValue := math.Inf(-1)
	for _, action := range actions {
		succ, err := gs.GenerateSuccessor(0, action)
		if err != nil {
			return game.Stop, fmt.Errorf("failed to rate action %v: %w", action, err)
		}
		value := a.evaluate(succ)
		switch {
		case value > bestValue:
			best = append(best[:0], action)
			bestValue = value
		case value == bestValue:
			best = append(best, action)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}
