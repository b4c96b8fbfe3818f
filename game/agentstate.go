package game

// AgentState is one agent's dynamic state: where it is, which way it
// faces, and for ghosts how many turns of vulnerability remain. Agent
// states are plain values; successor creation copies the whole list so a
// state never shares agent storage with its parent.
type AgentState struct {
	Position    Position
	Direction   Direction
	IsPacman    bool
	ScaredTimer int
	Start       Position
}

func newAgentState(slot LayoutAgent) AgentState {
	return AgentState{
		Position:  slot.Position,
		Direction: Stop,
		IsPacman:  slot.IsPacman,
		Start:     slot.Position,
	}
}

// Scared reports whether a ghost is currently vulnerable.
func (a AgentState) Scared() bool {
	return a.ScaredTimer > 0
}

// respawn sends an eaten ghost back to its start cell.
func (a *AgentState) respawn() {
	a.Position = a.Start
	a.Direction = Stop
	a.ScaredTimer = 0
}
