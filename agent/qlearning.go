package agent

import (
	"context"
	"fmt"

	"github.com/cajowils/pacman-tourney/game"
	"github.com/cajowils/pacman-tourney/learning"
	"golang.org/x/exp/rand"
)

// QLearningAgent learns pacman action values over state hashes, using
// the score change of each move as its reward signal. Train it by
// running episodes with a positive epsilon, then set epsilon to 0 to
// play greedily.
type QLearningAgent struct {
	learner *learning.QLearner[game.StateHash, game.Direction]
}

func NewQLearningAgent(alpha, discount, epsilon float64, rng *rand.Rand) *QLearningAgent {
	return &QLearningAgent{
		learner: learning.NewQLearner[game.StateHash, game.Direction](alpha, discount, epsilon, rng),
	}
}

func (a *QLearningAgent) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	action, ok := a.learner.SelectAction(gs.Hash(), gs.LegalActions(0))
	if !ok {
		return game.Stop, fmt.Errorf("no legal actions for pacman")
	}
	return action, nil
}

// Observe folds the score delta of one of this agent's own moves into
// the learner.
func (a *QLearningAgent) Observe(prev *game.GameState, action game.Direction, next *game.GameState) {
	reward := float64(next.Score() - prev.Score())
	a.learner.Update(prev.Hash(), action, next.Hash(), next.LegalActions(0), reward)
}

// SetEpsilon adjusts the exploration rate.
func (a *QLearningAgent) SetEpsilon(epsilon float64) {
	a.learner.SetEpsilon(epsilon)
}
