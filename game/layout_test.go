package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("parses walls, food, capsules and agents", func(t *testing.T) {
		layout, err := ParseLayout(TestMaze)

		require.NoError(t, err)
		require.Equal(t, 8, layout.Width)
		require.Equal(t, 7, layout.Height)
		require.True(t, layout.Walls.At(0, 0), "Border should be wall")
		require.True(t, layout.Food.At(2, 1), "Corridor cell should hold food")
		require.Equal(t, []Position{{6, 1}}, layout.Capsules)
		require.Len(t, layout.Agents, 2)
		require.True(t, layout.Agents[0].IsPacman, "Agent 0 is always the pacman")
		require.Equal(t, Position{1, 1}, layout.Agents[0].Position)
		require.Equal(t, Position{6, 5}, layout.Agents[1].Position)
	})

	t.Run("pacman is agent 0 even when listed after the ghosts", func(t *testing.T) {
		layout, err := ParseLayout("%%%%\n%G.%\n%P %\n%%%%")

		require.NoError(t, err)
		require.True(t, layout.Agents[0].IsPacman)
		require.False(t, layout.Agents[1].IsPacman)
	})

	t.Run("out of bounds counts as wall", func(t *testing.T) {
		layout, err := ParseLayout(TestMaze)

		require.NoError(t, err)
		require.True(t, layout.Wall(-1, 0))
		require.True(t, layout.Wall(0, layout.Height))
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseLayout("%%%%\n%P%\n%%%%")

		require.ErrorContains(t, err, "width")
	})

	t.Run("rejects a board without pacman", func(t *testing.T) {
		_, err := ParseLayout("%%%\n%.%\n%%%")

		require.ErrorContains(t, err, "no pacman")
	})

	t.Run("rejects duplicate pacman starts", func(t *testing.T) {
		_, err := ParseLayout("%%%%\n%PP%\n%%%%")

		require.ErrorContains(t, err, "more than one pacman")
	})

	t.Run("rejects unknown characters", func(t *testing.T) {
		_, err := ParseLayout("%%%%\n%P?%\n%%%%")

		require.ErrorContains(t, err, "unknown layout character")
	})

	t.Run("built-in boards parse", func(t *testing.T) {
		for name, text := range map[string]string{"smallClassic": SmallClassic, "testMaze": TestMaze} {
			_, err := ParseLayout(text)
			require.NoError(t, err, "Built-in layout %s should parse", name)
		}
	})
}
