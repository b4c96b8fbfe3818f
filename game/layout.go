package game

import (
	"fmt"
	"strings"
)

// Layout is the static board description: walls, initial food and
// capsules, and agent start positions. A Layout is built once and shared
// by reference across every state in a game tree; it is never mutated
// after construction.
type Layout struct {
	Width    int
	Height   int
	Walls    *Grid
	Food     *Grid
	Capsules []Position
	Agents   []LayoutAgent
}

// LayoutAgent is an agent start slot. Agent 0 is always the pacman.
type LayoutAgent struct {
	IsPacman bool
	Position Position
}

// Wall reports whether (x, y) is blocked. Cells outside the board count
// as walls.
func (l *Layout) Wall(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return true
	}
	return l.Walls.At(x, y)
}

// ParseLayout reads a board from its text form:
//
//	%  wall
//	.  food
//	o  capsule
//	P  pacman start
//	G  ghost start
//
// The first text line is the top row of the board. The pacman is placed
// at agent index 0 regardless of where it appears in the text; ghosts
// follow in reading order.
func ParseLayout(text string) (*Layout, error) {
	lines := []string{}
	for _, line := range strings.Split(strings.Trim(text, "\n"), "\n") {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	height := len(lines)
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("layout row %d has width %d, want %d", i, len(line), width)
		}
	}

	layout := &Layout{
		Width:  width,
		Height: height,
		Walls:  NewGrid(width, height),
		Food:   NewGrid(width, height),
	}

	var pacman *Position
	var ghosts []Position
	for row, line := range lines {
		y := height - 1 - row
		for x, char := range line {
			pos := Position{x, y}
			switch char {
			case '%':
				layout.Walls.Set(x, y, true)
			case '.':
				layout.Food.Set(x, y, true)
			case 'o':
				layout.Capsules = append(layout.Capsules, pos)
			case 'P':
				if pacman != nil {
					return nil, fmt.Errorf("layout has more than one pacman start")
				}
				p := pos
				pacman = &p
			case 'G':
				ghosts = append(ghosts, pos)
			case ' ':
			default:
				return nil, fmt.Errorf("unknown layout character %q at (%d, %d)", char, x, y)
			}
		}
	}

	if pacman == nil {
		return nil, fmt.Errorf("layout has no pacman start")
	}
	layout.Agents = append(layout.Agents, LayoutAgent{IsPacman: true, Position: *pacman})
	for _, g := range ghosts {
		layout.Agents = append(layout.Agents, LayoutAgent{IsPacman: false, Position: g})
	}

	return layout, nil
}

// SmallClassic is a compact board with two ghosts, used by the default
// tournament config and the tests.
const SmallClassic = `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`

// TestMaze is a single-ghost board small enough for exhaustive search in
// tests and quick experiments.
const TestMaze = `
%%%%%%%%
%.    G%
% %%%% %
% %....%
% %%%%.%
%P....o%
%%%%%%%%
`
