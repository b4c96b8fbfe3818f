package searcher

import (
	"context"
	"math"
	"testing"

	"github.com/cajowils/pacman-tourney/experiments/metrics"
	"github.com/cajowils/pacman-tourney/game"
	"github.com/stretchr/testify/require"
)

/**
Tests depth-limited adversarial search:
- turn bookkeeping: depth burns one ply only when the round wraps to agent 0
- minimax:
	- terminal root -> (Stop, evaluation)
	- depth 1 picks the highest scoring immediate move
	- value matches a brute-force reference on real boards
- alpha-beta:
	- identical action and value to minimax on every board/depth/evaluation combo
	- visits fewer nodes and records prunes on a board deep enough to cut
- expectimax:
	- root action and value match a brute-force uniform-mean reference
	- chance averaging is strictly more optimistic than minimizing when a
	  ghost has a losing reply
- cancellation: a cancelled context stops after the first root action
- options: depth clamping and ignored nil/non-positive options
*/

func newState(t *testing.T, text string) *game.GameState {
	t.Helper()
	layout, err := game.ParseLayout(text)
	require.NoError(t, err, "Test layout should parse")
	return game.NewGameState(layout)
}

// refValue is plain depth-limited minimax (chance=false) or expectimax
// (chance=true) with no pruning, used as ground truth.
func refValue(gs *game.GameState, depth, agent int, evaluate game.Evaluate, chance bool) float64 {
	if gs.IsOver() || depth == 0 {
		return evaluate(gs)
	}
	actions := gs.LegalActions(agent)
	if len(actions) == 0 {
		return evaluate(gs)
	}

	if agent != 0 && chance {
		total := 0.0
		for _, action := range actions {
			next, err := gs.GenerateSuccessor(agent, action)
			if err != nil {
				panic(err)
			}
			nextAgent, nextDepth := nextTurn(agent, gs.NumAgents(), depth)
			total += refValue(next, nextDepth, nextAgent, evaluate, chance)
		}
		return total / float64(len(actions))
	}

	best := math.Inf(-1)
	if agent != 0 {
		best = math.Inf(1)
	}
	for _, action := range actions {
		next, err := gs.GenerateSuccessor(agent, action)
		if err != nil {
			panic(err)
		}
		nextAgent, nextDepth := nextTurn(agent, gs.NumAgents(), depth)
		v := refValue(next, nextDepth, nextAgent, evaluate, chance)
		if agent == 0 && v > best || agent != 0 && v < best {
			best = v
		}
	}
	return best
}

func refRoot(gs *game.GameState, depth int, evaluate game.Evaluate, chance bool) (game.Direction, float64) {
	best := game.Stop
	bestValue := math.Inf(-1)
	for _, action := range gs.LegalActions(0) {
		next, err := gs.GenerateSuccessor(0, action)
		if err != nil {
			panic(err)
		}
		agent, nextDepth := nextTurn(0, gs.NumAgents(), depth)
		if v := refValue(next, nextDepth, agent, evaluate, chance); v > bestValue {
			bestValue = v
			best = action
		}
	}
	return best, bestValue
}

func TestNextTurn(t *testing.T) {
	t.Run("advancing within a round keeps the depth", func(t *testing.T) {
		agent, depth := nextTurn(0, 3, 2)
		require.Equal(t, 1, agent, "Agent 1 should follow agent 0")
		require.Equal(t, 2, depth, "Depth should not change mid-round")
	})

	t.Run("wrapping to agent 0 burns one ply", func(t *testing.T) {
		agent, depth := nextTurn(2, 3, 2)
		require.Equal(t, 0, agent, "Round should wrap back to agent 0")
		require.Equal(t, 1, depth, "Depth should decrement on wrap")
	})

	t.Run("a lone agent burns one ply per move", func(t *testing.T) {
		agent, depth := nextTurn(0, 1, 3)
		require.Equal(t, 0, agent, "Single agent should keep the turn")
		require.Equal(t, 2, depth, "Every move should cost a ply")
	})
}

func TestMinimaxFindAction(t *testing.T) {
	t.Run("terminal root returns Stop and the evaluation", func(t *testing.T) {
		gs := newState(t, `
%%%%
%PG%
%%%%
`)
		lost, err := gs.GenerateSuccessor(0, game.East)
		require.NoError(t, err, "Walking into the ghost should be legal")
		require.True(t, lost.IsLose(), "Walking into the ghost should lose")

		action, value := NewMinimax().FindAction(context.Background(), lost)

		require.Equal(t, game.Stop, action, "Terminal state should yield Stop")
		require.Equal(t, game.EvaluateScore(lost), value, "Terminal state should yield its evaluation")
	})

	t.Run("depth one picks the winning food move", func(t *testing.T) {
		// West eats the only food and wins; East and Stop just burn score.
		gs := newState(t, `
%%%%%%%
% .P  %
%%%%%%%
`)
		action, value := NewMinimax(WithDepth(1)).FindAction(context.Background(), gs)

		require.Equal(t, game.West, action, "Eating the last food should win")
		want := float64(game.FoodPoints + game.WinPoints - game.TimePenalty)
		require.Equal(t, want, value, "Value should be the winning score")
	})

	t.Run("value matches the brute-force reference", func(t *testing.T) {
		gs := newState(t, game.TestMaze)
		for depth := 1; depth <= 3; depth++ {
			mm := NewMinimax(WithDepth(depth))
			action, value := mm.FindAction(context.Background(), gs)

			wantAction, wantValue := refRoot(gs, depth, game.EvaluateScore, false)
			require.Equal(t, wantAction, action, "Minimax action should match reference at depth %d", depth)
			require.Equal(t, wantValue, value, "Minimax value should match reference at depth %d", depth)
		}
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := map[string]struct {
		text     string
		maxDepth int
	}{
		"one ghost maze":      {game.TestMaze, 3},
		"two ghost classic":   {game.SmallClassic, 2},
		"cramped ghost alley": {"%%%%%%\n%.GP.%\n%%%%%%", 3},
		"three ghost room":    {"%%%%%%%\n%G P G%\n% .G. %\n%%%%%%%", 2},
	}
	evaluations := map[string]game.Evaluate{
		"raw score":           game.EvaluateScore,
		"survival evaluation": game.EvaluateSurvival,
	}

	for boardName, board := range boards {
		for evalName, evaluate := range evaluations {
			t.Run(boardName+" with "+evalName, func(t *testing.T) {
				gs := newState(t, board.text)
				for depth := 1; depth <= board.maxDepth; depth++ {
					mm := NewMinimax(WithDepth(depth), WithEvaluationFn(evaluate))
					ab := NewAlphaBeta(WithDepth(depth), WithEvaluationFn(evaluate))

					mmAction, mmValue := mm.FindAction(context.Background(), gs)
					abAction, abValue := ab.FindAction(context.Background(), gs)

					require.Equal(t, mmAction, abAction, "Pruning should not change the action at depth %d", depth)
					require.Equal(t, mmValue, abValue, "Pruning should not change the value at depth %d", depth)
				}
			})
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	gs := newState(t, game.TestMaze)

	mmCollector := metrics.NewCollector()
	abCollector := metrics.NewCollector()
	mm := NewMinimax(WithDepth(3), WithMetrics(mmCollector))
	ab := NewAlphaBeta(WithDepth(3), WithMetrics(abCollector))

	mm.FindAction(context.Background(), gs)
	ab.FindAction(context.Background(), gs)

	mmMetric := mmCollector.Complete()
	abMetric := abCollector.Complete()

	require.Zero(t, mmMetric.Prunes, "Minimax should never prune")
	require.Positive(t, abMetric.Prunes, "Alpha-beta should prune at depth 3")
	require.Less(t, abMetric.Nodes, mmMetric.Nodes, "Alpha-beta should visit fewer nodes")
	require.LessOrEqual(t, abMetric.Leaves, abMetric.Nodes, "Leaves are a subset of nodes")
	require.Equal(t, 3, abMetric.Depth, "Metric should record the configured depth")
}

func TestExpectimaxFindAction(t *testing.T) {
	t.Run("root matches the brute-force uniform mean", func(t *testing.T) {
		gs := newState(t, game.TestMaze)
		for depth := 1; depth <= 2; depth++ {
			em := NewExpectimax(WithDepth(depth))
			action, value := em.FindAction(context.Background(), gs)

			wantAction, wantValue := refRoot(gs, depth, game.EvaluateScore, true)
			require.Equal(t, wantAction, action, "Expectimax action should match reference at depth %d", depth)
			require.InDelta(t, wantValue, value, 1e-9, "Expectimax value should match reference at depth %d", depth)
		}
	})

	t.Run("averaging beats minimizing when a ghost reply loses", func(t *testing.T) {
		// The ghost next to pacman has one losing reply; the mean over its
		// replies is strictly above the worst case.
		gs := newState(t, `
%%%%%%
%.GP.%
%%%%%%
`)
		_, mmValue := NewMinimax(WithDepth(2)).FindAction(context.Background(), gs)
		_, emValue := NewExpectimax(WithDepth(2)).FindAction(context.Background(), gs)

		require.Greater(t, emValue, mmValue, "Uniform ghosts should look safer than adversarial ones")
	})

	t.Run("terminal root returns Stop and the evaluation", func(t *testing.T) {
		gs := newState(t, `
%%%%
%PG%
%%%%
`)
		lost, err := gs.GenerateSuccessor(0, game.East)
		require.NoError(t, err, "Walking into the ghost should be legal")

		action, value := NewExpectimax().FindAction(context.Background(), lost)

		require.Equal(t, game.Stop, action, "Terminal state should yield Stop")
		require.Equal(t, game.EvaluateScore(lost), value, "Terminal state should yield its evaluation")
	})
}

func TestFindActionCancellation(t *testing.T) {
	gs := newState(t, game.TestMaze)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := gs.LegalActions(0)[0]
	next, err := gs.GenerateSuccessor(0, first)
	require.NoError(t, err, "First legal action should apply")
	agent, depth := nextTurn(0, gs.NumAgents(), 2)
	firstValue := refValue(next, depth, agent, game.EvaluateScore, false)
	firstMean := refValue(next, depth, agent, game.EvaluateScore, true)

	strategies := map[string]struct {
		strategy Strategy
		want     float64
	}{
		"minimax":    {NewMinimax(WithDepth(2)), firstValue},
		"alpha-beta": {NewAlphaBeta(WithDepth(2)), firstValue},
		"expectimax": {NewExpectimax(WithDepth(2)), firstMean},
	}

	for name, tc := range strategies {
		t.Run(name+" keeps the first root action", func(t *testing.T) {
			action, value := tc.strategy.FindAction(ctx, gs)
			require.Equal(t, first, action, "Cancellation should keep the best action so far")
			require.InDelta(t, tc.want, value, 1e-9, "Value should be the first subtree's value")
		})
	}
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := newSettings()
		require.Equal(t, DefaultDepth, s.depth, "Depth should default")
		require.NotNil(t, s.evaluate, "Evaluation should default")
		require.NotNil(t, s.metrics, "Metrics should default to the dummy collector")
	})

	t.Run("depth clamps to the maximum", func(t *testing.T) {
		s := newSettings(WithDepth(MaxDepth + 1))
		require.Equal(t, MaxDepth, s.depth, "Depth should clamp")
	})

	t.Run("non-positive depth is ignored", func(t *testing.T) {
		s := newSettings(WithDepth(0), WithDepth(-3))
		require.Equal(t, DefaultDepth, s.depth, "Invalid depths should keep the default")
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		s := newSettings(WithEvaluationFn(nil), WithMetrics(nil))
		require.NotNil(t, s.evaluate, "Nil evaluation should keep the default")
		require.NotNil(t, s.metrics, "Nil collector should keep the default")
	})
}
