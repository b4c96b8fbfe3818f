package game

// Evaluate scores a state from pacman's perspective; higher is better.
// The adversarial searchers apply it at their leaf nodes.
type Evaluate func(*GameState) float64

// Hard bounds returned when a state is already decided. Large enough to
// dominate any positional score.
const (
	wonScore  = 999999.0
	lostScore = -999999.0
)

// EvaluateScore uses the game score alone. The default leaf evaluation.
func EvaluateScore(gs *GameState) float64 {
	return float64(gs.Score())
}

// EvaluateSurvival weighs the game score with proximity to food and
// ghosts, rewarding closeness to food and to scared ghosts while heavily
// penalizing standing next to a hunting ghost.
func EvaluateSurvival(gs *GameState) float64 {
	if gs.IsWin() {
		return wonScore + float64(gs.Score())
	}
	if gs.IsLose() {
		return lostScore + float64(gs.Score())
	}

	const (
		foodWeight   = 1.0
		ghostWeight  = 10.0
		scaredWeight = 1.0
	)

	pacman := gs.PacmanPosition()
	eval := float64(gs.Score())

	minScared := -1
	for _, ghost := range gs.GhostStates() {
		dist := Manhattan(ghost.Position, pacman)
		if dist <= 2 && !ghost.Scared() {
			return lostScore
		}
		if dist > 0 {
			if ghost.ScaredTimer > dist {
				eval += ghostWeight / float64(dist)
			} else {
				eval -= ghostWeight / float64(dist)
			}
		}
		if minScared < 0 || ghost.ScaredTimer < minScared {
			minScared = ghost.ScaredTimer
		}
	}
	if minScared > 0 {
		eval += scaredWeight * float64(minScared)
	}

	if dist := nearestFoodDistance(gs, pacman); dist > 0 {
		eval += foodWeight / float64(dist)
	}
	return eval
}

func nearestFoodDistance(gs *GameState, from Position) int {
	nearest := -1
	for _, food := range gs.Food().Positions() {
		dist := Manhattan(from, food)
		if nearest < 0 || dist < nearest {
			nearest = dist
		}
	}
	return nearest
}
