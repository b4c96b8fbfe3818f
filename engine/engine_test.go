package engine

import (
	"context"
	"testing"

	"github.com/cajowils/pacman-tourney/agent"
	"github.com/cajowils/pacman-tourney/game"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests the local game loop:
- happy path: a food-clearing pacman wins with the expected score and
  turn count, observers see every move
- agent bugs abort the game: action errors and illegal actions
  propagate with the underlying error preserved
- the turn cap ends games that never terminate, reported as no winner
- learning agents observe exactly their own moves
- construction rejects a controller count that does not match the state
- a cancelled context interrupts the game
*/

// stuckAgent always plays the same action.
type stuckAgent struct {
	action game.Direction
}

func (a *stuckAgent) Action(context.Context, *game.GameState) (game.Direction, error) {
	return a.action, nil
}

// countingLearner stops every turn and counts its observations.
type countingLearner struct {
	stuckAgent
	observed int
}

func (l *countingLearner) Observe(*game.GameState, game.Direction, *game.GameState) {
	l.observed++
}

func mustParse(t *testing.T, text string) *game.GameState {
	t.Helper()
	layout, err := game.ParseLayout(text)
	require.NoError(t, err, "Test layout should parse")
	return game.NewGameState(layout)
}

func TestRunHappyPath(t *testing.T) {
	gs := mustParse(t, `
%%%%%%
%P.. %
%%%%%%
`)
	moves := 0
	e, err := New(gs, []agent.Agent{agent.NewClosestDotAgent()},
		WithObserver(ObserverFunc(func(gs *game.GameState, agentIndex int, action game.Direction) {
			moves++
		})))
	require.NoError(t, err, "Engine should build")

	metric, err := e.Run(context.Background())

	require.NoError(t, err, "A clean game should finish without error")
	require.Equal(t, WinnerPacman, metric.Winner, "Clearing the food should win")
	require.Equal(t, 2, metric.Turns, "Two foods east should take two moves")
	require.Equal(t, 2*game.FoodPoints+game.WinPoints-2*game.TimePenalty, metric.Score, "Score should match the rules")
	require.Equal(t, 2, moves, "Observer should see every move")
	require.True(t, e.State().IsWin(), "Final state should be the won game")
}

func TestRunAbortsOnAgentBugs(t *testing.T) {
	t.Run("illegal action propagates", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P.. %
%%%%%%
`)
		e, err := New(gs, []agent.Agent{&stuckAgent{action: game.North}})
		require.NoError(t, err, "Engine should build")

		_, err = e.Run(context.Background())
		require.Error(t, err, "Walking into a wall should abort the game")

		var illegal *game.IllegalActionError
		require.ErrorAs(t, err, &illegal, "The underlying illegal action should be preserved")
		require.Equal(t, 0, illegal.AgentIndex, "The offending agent should be identified")
	})

	t.Run("action error propagates", func(t *testing.T) {
		gs := mustParse(t, game.TestMaze)
		e, err := New(gs, []agent.Agent{&failingAgent{}, agent.NewRandomGhost(1, rand.New(rand.NewSource(1)))})
		require.NoError(t, err, "Engine should build")

		_, err = e.Run(context.Background())
		require.ErrorContains(t, err, "agent 0 failed to act", "The agent's own error should surface")
	})
}

type failingAgent struct{}

func (failingAgent) Action(context.Context, *game.GameState) (game.Direction, error) {
	return game.Stop, context.DeadlineExceeded
}

func TestRunTurnCap(t *testing.T) {
	gs := mustParse(t, `
%%%%%%
%P.. %
%%%%%%
`)
	e, err := New(gs, []agent.Agent{&stuckAgent{action: game.Stop}}, WithMaxTurns(5))
	require.NoError(t, err, "Engine should build")

	metric, err := e.Run(context.Background())

	require.NoError(t, err, "Hitting the cap is not an error")
	require.Equal(t, WinnerNone, metric.Winner, "A capped game has no winner")
	require.Equal(t, 5, metric.Turns, "The cap should bound the turn count")
}

func TestRunFeedsLearners(t *testing.T) {
	gs := mustParse(t, game.TestMaze)
	learner := &countingLearner{stuckAgent: stuckAgent{action: game.Stop}}
	ghost := agent.NewRandomGhost(1, rand.New(rand.NewSource(1)))

	e, err := New(gs, []agent.Agent{learner, ghost}, WithMaxTurns(10))
	require.NoError(t, err, "Engine should build")

	metric, err := e.Run(context.Background())
	require.NoError(t, err, "The capped game should finish without error")
	require.Equal(t, (metric.Turns+1)/2, learner.observed, "Learner should observe exactly its own moves")
}

func TestNewRejectsControllerMismatch(t *testing.T) {
	gs := mustParse(t, game.TestMaze)
	_, err := New(gs, []agent.Agent{&stuckAgent{action: game.Stop}})
	require.Error(t, err, "A two-agent state needs two controllers")
}

func TestRunInterruption(t *testing.T) {
	gs := mustParse(t, game.TestMaze)
	e, err := New(gs, []agent.Agent{&stuckAgent{action: game.Stop}, agent.NewRandomGhost(1, rand.New(rand.NewSource(1)))})
	require.NoError(t, err, "Engine should build")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled, "Cancellation should interrupt the game")
}
