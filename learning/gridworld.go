package learning

import "github.com/cajowils/pacman-tourney/game"

// GridworldSink is the absorbing state every exit action leads to. It
// has no actions, so it is terminal.
var GridworldSink = game.Position{X: -1, Y: -1}

// Gridworld is a small stochastic grid MDP: moves slip sideways with
// probability noise, bumping a wall stays in place, and exit cells
// offer a single Stop action that collects the exit reward and ends the
// episode.
type Gridworld struct {
	width        int
	height       int
	walls        map[game.Position]bool
	exits        map[game.Position]float64
	start        game.Position
	noise        float64
	livingReward float64
}

type GridworldOption func(*Gridworld)

// WithNoise sets the probability mass that a move slips to one of the
// two perpendicular directions (split evenly between them).
func WithNoise(noise float64) GridworldOption {
	return func(g *Gridworld) {
		if noise >= 0 && noise <= 1 {
			g.noise = noise
		}
	}
}

// WithLivingReward sets the reward collected on every non-exit move.
func WithLivingReward(reward float64) GridworldOption {
	return func(g *Gridworld) {
		g.livingReward = reward
	}
}

func NewGridworld(width, height int, options ...GridworldOption) *Gridworld {
	g := &Gridworld{
		width:  width,
		height: height,
		walls:  make(map[game.Position]bool),
		exits:  make(map[game.Position]float64),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Gridworld) SetWall(x, y int) {
	g.walls[game.Position{X: x, Y: y}] = true
}

func (g *Gridworld) SetExit(x, y int, reward float64) {
	g.exits[game.Position{X: x, Y: y}] = reward
}

func (g *Gridworld) SetStart(x, y int) {
	g.start = game.Position{X: x, Y: y}
}

func (g *Gridworld) Start() game.Position { return g.start }

// States enumerates every non-wall cell plus the sink, in a stable
// order.
func (g *Gridworld) States() []game.Position {
	states := make([]game.Position, 0, g.width*g.height+1)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			pos := game.Position{X: x, Y: y}
			if !g.walls[pos] {
				states = append(states, pos)
			}
		}
	}
	return append(states, GridworldSink)
}

func (g *Gridworld) PossibleActions(state game.Position) []game.Direction {
	if state == GridworldSink {
		return nil
	}
	if _, ok := g.exits[state]; ok {
		return []game.Direction{game.Stop}
	}
	actions := make([]game.Direction, len(game.Cardinal))
	copy(actions, game.Cardinal)
	return actions
}

func (g *Gridworld) Transitions(state game.Position, action game.Direction) []Transition[game.Position] {
	if state == GridworldSink {
		return nil
	}
	if _, ok := g.exits[state]; ok {
		return []Transition[game.Position]{{Next: GridworldSink, Prob: 1}}
	}

	var transitions []Transition[game.Position]
	add := func(next game.Position, prob float64) {
		if prob == 0 {
			return
		}
		for i := range transitions {
			if transitions[i].Next == next {
				transitions[i].Prob += prob
				return
			}
		}
		transitions = append(transitions, Transition[game.Position]{Next: next, Prob: prob})
	}

	add(g.move(state, action), 1-g.noise)
	for _, side := range perpendicular(action) {
		add(g.move(state, side), g.noise/2)
	}
	return transitions
}

func (g *Gridworld) Reward(state game.Position, action game.Direction, next game.Position) float64 {
	if reward, ok := g.exits[state]; ok {
		return reward
	}
	if state == GridworldSink {
		return 0
	}
	return g.livingReward
}

// move resolves one deterministic step; bumping a wall or the edge
// stays in place.
func (g *Gridworld) move(from game.Position, direction game.Direction) game.Position {
	dx, dy := direction.Vector()
	to := game.Position{X: from.X + dx, Y: from.Y + dy}
	if to.X < 0 || to.X >= g.width || to.Y < 0 || to.Y >= g.height || g.walls[to] {
		return from
	}
	return to
}

func perpendicular(direction game.Direction) [2]game.Direction {
	switch direction {
	case game.North, game.South:
		return [2]game.Direction{game.East, game.West}
	default:
		return [2]game.Direction{game.North, game.South}
	}
}
