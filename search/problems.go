package search

import "github.com/cajowils/pacman-tourney/game"

// stepSuccessors enumerates the wall-free neighbor cells of a position
// in Cardinal order, with unit cost.
func stepSuccessors(layout *game.Layout, pos game.Position) []Successor[game.Position] {
	var successors []Successor[game.Position]
	for _, d := range game.Cardinal {
		dx, dy := d.Vector()
		next := game.Position{X: pos.X + dx, Y: pos.Y + dy}
		if !layout.Wall(next.X, next.Y) {
			successors = append(successors, Successor[game.Position]{State: next, Action: d, Cost: 1})
		}
	}
	return successors
}

// PositionProblem finds a path from pacman's position to a fixed goal
// cell. The search state is just a position.
type PositionProblem struct {
	layout *game.Layout
	start  game.Position
	goal   game.Position

	// Expanded counts Successors calls, for comparing strategies.
	Expanded int
}

func NewPositionProblem(gs *game.GameState, goal game.Position) *PositionProblem {
	return &PositionProblem{
		layout: gs.Layout(),
		start:  gs.PacmanPosition(),
		goal:   goal,
	}
}

func (p *PositionProblem) Start() game.Position { return p.start }

func (p *PositionProblem) IsGoal(pos game.Position) bool { return pos == p.goal }

func (p *PositionProblem) Successors(pos game.Position) []Successor[game.Position] {
	p.Expanded++
	return stepSuccessors(p.layout, pos)
}

// ActionsCost returns the length of an action sequence, or a prohibitive
// cost if the sequence ever walks into a wall.
func (p *PositionProblem) ActionsCost(actions []game.Direction) int {
	const illegal = 999999

	pos := p.start
	for _, a := range actions {
		dx, dy := a.Vector()
		pos.X += dx
		pos.Y += dy
		if p.layout.Wall(pos.X, pos.Y) {
			return illegal
		}
	}
	return len(actions)
}

// CornersState is a position augmented with which of the four corners
// have been visited so far.
type CornersState struct {
	Pos     game.Position
	Visited [4]bool
}

// CornersProblem finds a shortest tour through the four inner corners of
// the board.
type CornersProblem struct {
	layout  *game.Layout
	start   game.Position
	Corners [4]game.Position

	Expanded int
}

func NewCornersProblem(gs *game.GameState) *CornersProblem {
	layout := gs.Layout()
	top := layout.Height - 2
	right := layout.Width - 2
	return &CornersProblem{
		layout: layout,
		start:  gs.PacmanPosition(),
		Corners: [4]game.Position{
			{X: 1, Y: 1},
			{X: 1, Y: top},
			{X: right, Y: 1},
			{X: right, Y: top},
		},
	}
}

func (p *CornersProblem) Start() CornersState {
	state := CornersState{Pos: p.start}
	for i, corner := range p.Corners {
		if p.start == corner {
			state.Visited[i] = true
		}
	}
	return state
}

func (p *CornersProblem) IsGoal(state CornersState) bool {
	for _, visited := range state.Visited {
		if !visited {
			return false
		}
	}
	return true
}

func (p *CornersProblem) Successors(state CornersState) []Successor[CornersState] {
	p.Expanded++

	var successors []Successor[CornersState]
	for _, step := range stepSuccessors(p.layout, state.Pos) {
		next := CornersState{Pos: step.State, Visited: state.Visited}
		for i, corner := range p.Corners {
			if step.State == corner {
				next.Visited[i] = true
			}
		}
		successors = append(successors, Successor[CornersState]{State: next, Action: step.Action, Cost: 1})
	}
	return successors
}

// FoodState is a position plus the remaining food, keyed by the packed
// grid so states reached by eating the same food in different orders
// compare equal.
type FoodState struct {
	Pos  game.Position
	Food string
}

// FoodProblem finds a shortest path that eats every food on the board.
// Food grids are interned by key so successor generation can recover the
// actual grid from a comparable state.
type FoodProblem struct {
	layout    *game.Layout
	start     FoodState
	grids     map[string]*game.Grid
	distancer *game.Distancer

	Expanded int
}

func NewFoodProblem(gs *game.GameState) *FoodProblem {
	food := gs.Food()
	start := FoodState{Pos: gs.PacmanPosition(), Food: food.Key()}
	return &FoodProblem{
		layout:    gs.Layout(),
		start:     start,
		grids:     map[string]*game.Grid{start.Food: food},
		distancer: game.NewDistancer(gs.Layout()),
	}
}

func (p *FoodProblem) Start() FoodState { return p.start }

func (p *FoodProblem) IsGoal(state FoodState) bool {
	return p.grids[state.Food].Count() == 0
}

func (p *FoodProblem) Successors(state FoodState) []Successor[FoodState] {
	p.Expanded++

	food := p.grids[state.Food]
	var successors []Successor[FoodState]
	for _, step := range stepSuccessors(p.layout, state.Pos) {
		key := state.Food
		if food.At(step.State.X, step.State.Y) {
			eaten := food.Copy()
			eaten.Set(step.State.X, step.State.Y, false)
			key = eaten.Key()
			if _, ok := p.grids[key]; !ok {
				p.grids[key] = eaten
			}
		}
		successors = append(successors, Successor[FoodState]{
			State:  FoodState{Pos: step.State, Food: key},
			Action: step.Action,
			Cost:   1,
		})
	}
	return successors
}

// FoodAt recovers the interned food grid for a state of this problem.
func (p *FoodProblem) FoodAt(state FoodState) *game.Grid {
	return p.grids[state.Food]
}

// AnyFoodProblem finds a path to the closest food: same state space as
// PositionProblem, with "standing on any food" as the goal test.
type AnyFoodProblem struct {
	layout *game.Layout
	start  game.Position
	food   *game.Grid

	Expanded int
}

func NewAnyFoodProblem(gs *game.GameState) *AnyFoodProblem {
	return &AnyFoodProblem{
		layout: gs.Layout(),
		start:  gs.PacmanPosition(),
		food:   gs.Food(),
	}
}

func (p *AnyFoodProblem) Start() game.Position { return p.start }

func (p *AnyFoodProblem) IsGoal(pos game.Position) bool {
	return p.food.At(pos.X, pos.Y)
}

func (p *AnyFoodProblem) Successors(pos game.Position) []Successor[game.Position] {
	p.Expanded++
	return stepSuccessors(p.layout, pos)
}
