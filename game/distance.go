package game

// Manhattan is the wall-blind grid distance. Cheap, and admissible as a
// heuristic because walls only ever make the real path longer.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Distancer computes true shortest-path distances on a layout,
// respecting walls, and memoizes full BFS layers per source cell. Maze
// distance is symmetric and satisfies the triangle inequality, but each
// uncached source costs a whole-board BFS, so share one Distancer per
// layout.
type Distancer struct {
	layout *Layout
	cache  map[Position]map[Position]int
}

func NewDistancer(layout *Layout) *Distancer {
	return &Distancer{
		layout: layout,
		cache:  make(map[Position]map[Position]int),
	}
}

// Distance returns the maze distance between two cells, or -1 when no
// wall-free path connects them.
func (d *Distancer) Distance(from, to Position) int {
	layer, ok := d.cache[from]
	if !ok {
		layer = d.flood(from)
		d.cache[from] = layer
	}
	dist, ok := layer[to]
	if !ok {
		return -1
	}
	return dist
}

// flood runs BFS over the open cells reachable from a source.
func (d *Distancer) flood(from Position) map[Position]int {
	dist := map[Position]int{from: 0}
	queue := []Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Cardinal {
			dx, dy := dir.Vector()
			next := Position{current.X + dx, current.Y + dy}
			if d.layout.Wall(next.X, next.Y) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
