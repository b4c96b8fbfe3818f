package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Scoring and timing constants for the standard rules.
const (
	FoodPoints  = 10
	GhostPoints = 200
	WinPoints   = 500
	LosePoints  = -500
	TimePenalty = 1
	ScaredTurns = 40
)

// StateHash identifies a game state up to value equality. Two states that
// compare Equal always produce the same hash, so hashes can key visited
// sets and transposition tables.
type StateHash uint64

// IllegalActionError reports a GenerateSuccessor call with an action that
// is not legal for the agent, or any action on a finished game. It means
// a bug in the calling agent and is not recoverable here.
type IllegalActionError struct {
	AgentIndex int
	Action     Direction
	Reason     string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %v for agent %d: %s", e.Action, e.AgentIndex, e.Reason)
}

// GameState is the full dynamic state of a game: food, capsules, agent
// states, and score. The layout stays shared and immutable.
//
// States are immutable by convention - every mutation happens on a fresh
// successor. The food grid and capsule list are shared with the parent
// until the first eat, which clones the shared container before writing
// (copy on write). Agent states are copied on every successor because
// positions change every turn.
type GameState struct {
	layout         *Layout
	food           *Grid
	foodCopied     bool
	capsules       []Position
	capsulesCopied bool
	agents         []AgentState
	score          int
	over           bool
	win            bool
}

// NewGameState builds the starting state for a layout.
func NewGameState(layout *Layout) *GameState {
	agents := make([]AgentState, len(layout.Agents))
	for i, slot := range layout.Agents {
		agents[i] = newAgentState(slot)
	}
	return &GameState{
		layout:   layout,
		food:     layout.Food,
		capsules: layout.Capsules,
		agents:   agents,
	}
}

// initSuccessor starts a successor that looks exactly like this state.
// Food and capsules stay shared until first write; agent states are
// always copied.
func (gs *GameState) initSuccessor() *GameState {
	agents := make([]AgentState, len(gs.agents))
	copy(agents, gs.agents)
	return &GameState{
		layout:   gs.layout,
		food:     gs.food,
		capsules: gs.capsules,
		agents:   agents,
		score:    gs.score,
		over:     gs.over,
		win:      gs.win,
	}
}

func (gs *GameState) Layout() *Layout { return gs.layout }
func (gs *GameState) NumAgents() int  { return len(gs.agents) }
func (gs *GameState) Score() int      { return gs.score }
func (gs *GameState) IsOver() bool    { return gs.over }
func (gs *GameState) IsWin() bool     { return gs.over && gs.win }
func (gs *GameState) IsLose() bool    { return gs.over && !gs.win }

// Food returns the food grid. Callers must treat it as read-only; it may
// be shared with other states in the game tree.
func (gs *GameState) Food() *Grid { return gs.food }

func (gs *GameState) NumFood() int { return gs.food.Count() }

func (gs *GameState) HasFood(x, y int) bool { return gs.food.At(x, y) }

// Capsules returns the remaining capsule positions. Read-only for the
// same sharing reason as Food.
func (gs *GameState) Capsules() []Position { return gs.capsules }

func (gs *GameState) HasCapsule(x, y int) bool {
	return slices.Contains(gs.capsules, Position{x, y})
}

func (gs *GameState) AgentState(index int) AgentState { return gs.agents[index] }

func (gs *GameState) AgentPosition(index int) Position { return gs.agents[index].Position }

func (gs *GameState) PacmanPosition() Position { return gs.agents[0].Position }

// GhostStates returns the states of every ghost agent, in index order.
func (gs *GameState) GhostStates() []AgentState {
	var ghosts []AgentState
	for _, a := range gs.agents {
		if !a.IsPacman {
			ghosts = append(ghosts, a)
		}
	}
	return ghosts
}

// AddScore adjusts this state's score. Because successors never share
// score storage with their parents, this only ever affects the state it
// is called on.
func (gs *GameState) AddScore(delta int) {
	gs.score += delta
}

// EatFood clears the food at (x, y). A no-op if the cell is already
// empty. The first eat on a state clones the shared food grid.
func (gs *GameState) EatFood(x, y int) {
	if !gs.food.At(x, y) {
		return
	}
	if !gs.foodCopied {
		gs.food = gs.food.Copy()
		gs.foodCopied = true
	}
	gs.food.Set(x, y, false)
}

// EatCapsule removes the capsule at (x, y). A no-op if there is none.
// The first eat on a state clones the shared capsule list.
func (gs *GameState) EatCapsule(x, y int) {
	pos := Position{x, y}
	i := slices.Index(gs.capsules, pos)
	if i < 0 {
		return
	}
	if !gs.capsulesCopied {
		gs.capsules = slices.Clone(gs.capsules)
		gs.capsulesCopied = true
	}
	gs.capsules = slices.Delete(gs.capsules, i, i+1)
}

// LegalActions returns the moves open to an agent, in Cardinal order.
// Moves into walls are excluded. Pacman may additionally Stop; ghosts
// never stop and never reverse unless reversing is the only way out.
// A finished game has no legal actions.
func (gs *GameState) LegalActions(agentIndex int) []Direction {
	if gs.over {
		return nil
	}

	a := gs.agents[agentIndex]
	var actions []Direction
	for _, d := range Cardinal {
		dx, dy := d.Vector()
		if !gs.layout.Wall(a.Position.X+dx, a.Position.Y+dy) {
			actions = append(actions, d)
		}
	}

	if a.IsPacman {
		return append(actions, Stop)
	}

	// Ghosts keep their heading when possible.
	if a.Direction != Stop && len(actions) > 1 {
		if i := slices.Index(actions, a.Direction.Reverse()); i >= 0 {
			actions = slices.Delete(actions, i, i+1)
		}
	}
	return actions
}

// GenerateSuccessor returns the state after one agent takes one action.
// The receiver is left untouched. Fails with IllegalActionError if the
// game is over or the action is not in LegalActions(agentIndex).
func (gs *GameState) GenerateSuccessor(agentIndex int, action Direction) (*GameState, error) {
	if gs.over {
		return nil, &IllegalActionError{AgentIndex: agentIndex, Action: action, Reason: "game is over"}
	}
	if !slices.Contains(gs.LegalActions(agentIndex), action) {
		return nil, &IllegalActionError{AgentIndex: agentIndex, Action: action, Reason: "not a legal action"}
	}

	succ := gs.initSuccessor()
	agent := &succ.agents[agentIndex]
	dx, dy := action.Vector()
	agent.Position.X += dx
	agent.Position.Y += dy
	if action != Stop {
		agent.Direction = action
	}

	if agent.IsPacman {
		succ.applyPacmanRules(agentIndex)
	} else {
		succ.applyGhostRules(agentIndex)
	}
	return succ, nil
}

func (gs *GameState) applyPacmanRules(agentIndex int) {
	pos := gs.agents[agentIndex].Position
	gs.score -= TimePenalty

	if gs.food.At(pos.X, pos.Y) {
		gs.EatFood(pos.X, pos.Y)
		gs.score += FoodPoints
		if gs.food.Count() == 0 {
			gs.score += WinPoints
			gs.over = true
			gs.win = true
			return
		}
	}

	if gs.HasCapsule(pos.X, pos.Y) {
		gs.EatCapsule(pos.X, pos.Y)
		for i := range gs.agents {
			if !gs.agents[i].IsPacman {
				gs.agents[i].ScaredTimer = ScaredTurns
			}
		}
	}

	for i := range gs.agents {
		if !gs.agents[i].IsPacman && gs.agents[i].Position == pos {
			gs.resolveCollision(i)
			if gs.over {
				return
			}
		}
	}
}

func (gs *GameState) applyGhostRules(agentIndex int) {
	ghost := &gs.agents[agentIndex]
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	if ghost.Position == gs.PacmanPosition() {
		gs.resolveCollision(agentIndex)
	}
}

// resolveCollision settles pacman and a ghost sharing a cell: a scared
// ghost is eaten and respawns, an unscared ghost ends the game.
func (gs *GameState) resolveCollision(ghostIndex int) {
	ghost := &gs.agents[ghostIndex]
	if ghost.Scared() {
		gs.score += GhostPoints
		ghost.respawn()
		return
	}
	gs.score += LosePoints
	gs.over = true
	gs.win = false
}

// Equal reports value equality: same score, terminal flags, food,
// capsules, agent states, and layout. The move sequence that produced a
// state does not matter.
func (gs *GameState) Equal(other *GameState) bool {
	if gs == other {
		return true
	}
	if other == nil {
		return false
	}
	if gs.score != other.score || gs.over != other.over || gs.win != other.win {
		return false
	}
	if !slices.Equal(gs.capsules, other.capsules) {
		return false
	}
	if !gs.food.Equal(other.food) {
		return false
	}
	if !slices.Equal(gs.agents, other.agents) {
		return false
	}
	return gs.layout == other.layout
}

// Hash folds the equality fields into an fnv64a digest. Equal states
// always hash the same, so StateHash works as a transposition key.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.score))
	binary.Write(hasher, binary.LittleEndian, gs.over)
	binary.Write(hasher, binary.LittleEndian, gs.win)

	hasher.Write([]byte(gs.food.Key()))
	for _, c := range gs.capsules {
		binary.Write(hasher, binary.LittleEndian, int64(c.X))
		binary.Write(hasher, binary.LittleEndian, int64(c.Y))
	}
	for _, a := range gs.agents {
		binary.Write(hasher, binary.LittleEndian, int64(a.Position.X))
		binary.Write(hasher, binary.LittleEndian, int64(a.Position.Y))
		binary.Write(hasher, binary.LittleEndian, int64(a.Direction))
		binary.Write(hasher, binary.LittleEndian, int64(a.ScaredTimer))
		binary.Write(hasher, binary.LittleEndian, a.IsPacman)
	}

	return StateHash(hasher.Sum64())
}
