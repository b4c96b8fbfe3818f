package game

// Position is a cell on the board. (0, 0) is the bottom-left corner.
type Position struct {
	X, Y int
}

// Grid is a fixed-size 2D boolean grid used for walls and food. A Grid is
// shared by reference between a state and its successors until the first
// write, so callers must go through Copy before mutating a shared grid.
type Grid struct {
	width  int
	height int
	cells  []bool
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At reports the value at (x, y). Out-of-bounds cells read as false.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[x*g.height+y]
}

func (g *Grid) Set(x, y int, value bool) {
	g.cells[x*g.height+y] = value
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// Positions returns the true cells in column-major order, which is the
// stable enumeration order for food lists.
func (g *Grid) Positions() []Position {
	var positions []Position
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[x*g.height+y] {
				positions = append(positions, Position{x, y})
			}
		}
	}
	return positions
}

// Copy materializes a private copy. This is the copy-on-write escape
// hatch: GameState calls it once before the first mutation of a shared
// food grid.
func (g *Grid) Copy() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

func (g *Grid) Equal(other *Grid) bool {
	if g == other {
		return true
	}
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Key packs the grid into a string so it can be used as part of a
// comparable search-state key.
func (g *Grid) Key() string {
	packed := make([]byte, (len(g.cells)+7)/8)
	for i, c := range g.cells {
		if c {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return string(packed)
}
