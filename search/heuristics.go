package search

import "github.com/cajowils/pacman-tourney/game"

// Null is the zero heuristic; A* with Null degenerates to UCS.
func Null[S comparable](S) float64 { return 0 }

// ManhattanToGoal is the classic admissible heuristic for position
// search: walls only ever lengthen the real path.
func ManhattanToGoal(goal game.Position) Heuristic[game.Position] {
	return func(pos game.Position) float64 {
		return float64(game.Manhattan(pos, goal))
	}
}

// CornersHeuristic chains greedy nearest-corner hops by manhattan
// distance: the distance to the nearest unvisited corner, then from that
// corner to its nearest remaining one, until all corners are accounted
// for.
func CornersHeuristic(problem *CornersProblem) Heuristic[CornersState] {
	return func(state CornersState) float64 {
		var remaining []game.Position
		for i, corner := range problem.Corners {
			if !state.Visited[i] {
				remaining = append(remaining, corner)
			}
		}

		total := 0
		reference := state.Pos
		for len(remaining) > 0 {
			nearest := 0
			nearestDist := game.Manhattan(reference, remaining[0])
			for i, corner := range remaining[1:] {
				if d := game.Manhattan(reference, corner); d < nearestDist {
					nearestDist = d
					nearest = i + 1
				}
			}
			total += nearestDist
			reference = remaining[nearest]
			remaining = append(remaining[:nearest], remaining[nearest+1:]...)
		}
		return float64(total)
	}
}

// FoodHeuristic estimates the cost of eating all remaining food as the
// largest pairwise manhattan distance between two foods, plus the true
// maze distance from the current position to the nearer of those two.
// Inadmissible in the worst case: A* with it can return a slightly
// longer path than UCS.
func FoodHeuristic(problem *FoodProblem) Heuristic[FoodState] {
	return func(state FoodState) float64 {
		foods := problem.FoodAt(state).Positions()
		if len(foods) == 0 {
			return 0
		}

		maxDist := -1
		var far1, far2 game.Position
		for _, a := range foods {
			for _, b := range foods {
				if d := game.Manhattan(a, b); d > maxDist {
					maxDist = d
					far1, far2 = a, b
				}
			}
		}

		d1 := problem.distancer.Distance(state.Pos, far1)
		d2 := problem.distancer.Distance(state.Pos, far2)
		if d2 < d1 {
			d1 = d2
		}
		return float64(maxDist + d1)
	}
}
