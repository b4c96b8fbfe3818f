// Package search implements the generic state-space search engine: one
// loop, parameterized by the frontier's ordering discipline, covers
// depth-first, breadth-first, uniform-cost, and A* search.
package search

import "github.com/cajowils/pacman-tourney/game"

// Successor is one outgoing edge of a search state.
type Successor[S comparable] struct {
	State  S
	Action game.Direction
	Cost   float64
}

// Problem defines a search space. State types must be comparable so the
// engine can deduplicate transpositions in its visited set.
type Problem[S comparable] interface {
	Start() S
	IsGoal(S) bool
	Successors(S) []Successor[S]
}

// Heuristic estimates remaining cost to a goal. A* is only optimal when
// the heuristic never overestimates; that is the caller's contract, not
// checked here.
type Heuristic[S comparable] func(S) float64

// DepthFirst expands the deepest frontier node first. Complete on finite
// graphs, not optimal.
func DepthFirst[S comparable](problem Problem[S]) []game.Direction {
	return run(problem, newStack[S](), nil)
}

// BreadthFirst expands the shallowest frontier node first. Optimal for
// unit step costs.
func BreadthFirst[S comparable](problem Problem[S]) []game.Direction {
	return run(problem, newQueue[S](), nil)
}

// UniformCost expands the cheapest frontier node first. Optimal for
// non-negative step costs.
func UniformCost[S comparable](problem Problem[S]) []game.Direction {
	return run(problem, newPriorityQueue[S](), nil)
}

// AStar expands the node minimizing cost plus heuristic. Optimal when
// the heuristic is admissible.
func AStar[S comparable](problem Problem[S], heuristic Heuristic[S]) []game.Direction {
	return run(problem, newPriorityQueue[S](), heuristic)
}

type backPointer[S comparable] struct {
	parent S
	action game.Direction
}

// run is the unified search loop. A state is expanded at most once, on
// its first pop; for cost-ordered frontiers that pop is guaranteed to be
// via the cheapest discovered path because step costs are non-negative.
// States may sit on the frontier several times - stale entries are
// skipped when popped. An exhausted frontier means no solution, which is
// a normal outcome reported as an empty action sequence.
func run[S comparable](problem Problem[S], frontier Frontier[S], heuristic Heuristic[S]) []game.Direction {
	estimate := func(s S) float64 {
		if heuristic == nil {
			return 0
		}
		return heuristic(s)
	}

	start := problem.Start()
	frontier.Push(entry[S]{state: start, cost: 0}, estimate(start))

	parents := map[S]backPointer[S]{}
	bestCost := map[S]float64{start: 0}
	visited := map[S]struct{}{}

	for {
		current, ok := frontier.Pop()
		if !ok {
			return nil
		}
		if problem.IsGoal(current.state) {
			return reconstruct(parents, start, current.state)
		}
		if _, seen := visited[current.state]; seen {
			continue
		}
		visited[current.state] = struct{}{}

		for _, succ := range problem.Successors(current.state) {
			if _, seen := visited[succ.State]; seen {
				continue
			}
			cost := current.cost + succ.Cost
			if known, ok := bestCost[succ.State]; ok && known <= cost {
				continue
			}
			bestCost[succ.State] = cost
			parents[succ.State] = backPointer[S]{parent: current.state, action: succ.Action}
			frontier.Push(entry[S]{state: succ.State, cost: cost}, cost+estimate(succ.State))
		}
	}
}

// reconstruct walks the back-pointers from the goal to the start and
// reverses the collected actions.
func reconstruct[S comparable](parents map[S]backPointer[S], start, goal S) []game.Direction {
	actions := []game.Direction{}
	for state := goal; state != start; {
		bp := parents[state]
		actions = append(actions, bp.action)
		state = bp.parent
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
