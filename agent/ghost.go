package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/cajowils/pacman-tourney/game"
	"golang.org/x/exp/rand"
)

// RandomGhost picks uniformly among its legal moves.
type RandomGhost struct {
	index int
	rng   *rand.Rand
}

func NewRandomGhost(index int, rng *rand.Rand) *RandomGhost {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &RandomGhost{index: index, rng: rng}
}

func (g *RandomGhost) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	actions := gs.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, fmt.Errorf("no legal actions for ghost %d", g.index)
	}
	return actions[g.rng.Intn(len(actions))], nil
}

// DirectionalGhost beelines for pacman while brave and flees while
// scared, judging moves by Manhattan distance and breaking ties at
// random.
type DirectionalGhost struct {
	index int
	rng   *rand.Rand
}

func NewDirectionalGhost(index int, rng *rand.Rand) *DirectionalGhost {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &DirectionalGhost{index: index, rng: rng}
}

func (g *DirectionalGhost) Action(ctx context.Context, gs *game.GameState) (game.Direction, error) {
	actions := gs.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, fmt.Errorf("no legal actions for ghost %d", g.index)
	}

	self := gs.AgentState(g.index)
	pacman := gs.PacmanPosition()

	var best []game.Direction
	bestDistance := 0
	for i, action := range actions {
		dx, dy := action.Vector()
		to := game.Position{X: self.Position.X + dx, Y: self.Position.Y + dy}
		distance := game.Manhattan(to, pacman)

		better := distance < bestDistance
		if self.Scared() {
			better = distance > bestDistance
		}
		switch {
		case i == 0 || better:
			best = append(best[:0], action)
			bestDistance = distance
		case distance == bestDistance:
			best = append(best, action)
		}
	}
	return best[g.rng.Intn(len(best))], nil
}
