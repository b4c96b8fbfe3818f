package agent

import (
	"context"
	"fmt"

	"github.com/cajowils/pacman-tourney/game"
	"github.com/cajowils/pacman-tourney/searcher"
	"github.com/rs/zerolog/log"
)

// AdversarialAgent plays the action a tree-search strategy picks each
// turn.
type AdversarialAgent struct {
	strategy searcher.Strategy
}

func NewAdversarialAgent(strategy searcher.Strategy) *AdversarialAgent {
	return &AdversarialAgent{strategy: strategy}
}

func (a *AdversarialAgent) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	if gs.IsOver() {
		return game.Stop, fmt.Errorf("cannot act on a finished game")
	}
	action, value := a.strategy.FindAction(ctx, gs)
	log.Debug().Msgf("adversarial agent picked %v (value %.2f)", action, value)
	return action, nil
}
