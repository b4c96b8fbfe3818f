package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	require.Equal(t, 0, Manhattan(Position{3, 4}, Position{3, 4}))
	require.Equal(t, 7, Manhattan(Position{0, 0}, Position{3, 4}))
	require.Equal(t, 7, Manhattan(Position{3, 4}, Position{0, 0}), "Manhattan is symmetric")
}

func TestDistancer(t *testing.T) {
	layout := mustParse(t, TestMaze)
	distancer := NewDistancer(layout)

	t.Run("equals manhattan along an open corridor", func(t *testing.T) {
		require.Equal(t, 4, distancer.Distance(Position{1, 1}, Position{5, 1}))
	})

	t.Run("routes around walls", func(t *testing.T) {
		// (3, 1) to (3, 3) is 2 by manhattan but the inner wall block
		// forces the long way around.
		require.Greater(t, distancer.Distance(Position{3, 1}, Position{3, 3}), 2)
	})

	t.Run("is symmetric", func(t *testing.T) {
		a, b := Position{1, 1}, Position{6, 5}
		require.Equal(t, distancer.Distance(a, b), distancer.Distance(b, a))
	})

	t.Run("satisfies the triangle inequality", func(t *testing.T) {
		a, b, c := Position{1, 1}, Position{5, 3}, Position{6, 5}
		require.LessOrEqual(t, distancer.Distance(a, c),
			distancer.Distance(a, b)+distancer.Distance(b, c))
	})

	t.Run("never shorter than manhattan", func(t *testing.T) {
		a, b := Position{1, 1}, Position{6, 3}
		require.GreaterOrEqual(t, distancer.Distance(a, b), Manhattan(a, b))
	})

	t.Run("unreachable cells report -1", func(t *testing.T) {
		require.Equal(t, -1, distancer.Distance(Position{1, 1}, Position{0, 0}),
			"A wall cell is unreachable")
	})

	t.Run("repeated queries reuse the cached flood", func(t *testing.T) {
		first := distancer.Distance(Position{1, 1}, Position{4, 3})
		second := distancer.Distance(Position{1, 1}, Position{4, 3})
		require.Equal(t, first, second)
	})
}
