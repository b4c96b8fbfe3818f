package game

// Direction is a grid move for a single agent. Stop is legal for pacman
// only; ghosts always keep moving.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Cardinal is the enumeration order used everywhere legal actions are
// generated. Tie-breaking in the search layers depends on this order
// being stable.
var Cardinal = []Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Vector returns the (dx, dy) offset of one step in this direction.
func (d Direction) Vector() (int, int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction. Stop reverses to Stop.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}
