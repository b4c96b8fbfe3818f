// Package engine runs local games: it sequences agent turns, applies
// each chosen action to the live state, notifies observers after every
// move, and reports the finished game's metrics.
package engine

import "github.com/cajowils/pacman-tourney/game"

// DefaultMaxTurns caps runaway games that never reach a terminal state.
const DefaultMaxTurns = 10000

// Winner labels for finished games.
const (
	WinnerPacman = "pacman"
	WinnerGhosts = "ghosts"
	WinnerNone   = "none"
)

// Observer is notified after every applied move. Renderers and
// recorders hang off this hook; the engine itself never reads back
// from it.
type Observer interface {
	Notify(gs *game.GameState, agentIndex int, action game.Direction)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(gs *game.GameState, agentIndex int, action game.Direction)

func (f ObserverFunc) Notify(gs *game.GameState, agentIndex int, action game.Direction) {
	f(gs, agentIndex, action)
}
