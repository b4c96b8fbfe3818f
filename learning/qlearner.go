package learning

import (
	"time"

	"golang.org/x/exp/rand"
)

// QLearner learns a sparse tabular action-value function from observed
// transitions. It never needs the MDP model: callers feed it the legal
// actions of whatever environment they run it in.
type QLearner[S comparable, A comparable] struct {
	alpha    float64
	discount float64
	epsilon  float64
	qvalues  map[qkey[S, A]]float64
	rng      *rand.Rand
}

type qkey[S comparable, A comparable] struct {
	state  S
	action A
}

func NewQLearner[S comparable, A comparable](alpha, discount, epsilon float64, rng *rand.Rand) *QLearner[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &QLearner[S, A]{
		alpha:    alpha,
		discount: discount,
		epsilon:  epsilon,
		qvalues:  make(map[qkey[S, A]]float64),
		rng:      rng,
	}
}

// SetEpsilon adjusts the exploration rate, typically to 0 when
// switching from training to evaluation.
func (q *QLearner[S, A]) SetEpsilon(epsilon float64) {
	q.epsilon = epsilon
}

// QValue returns the learned value for the pair, 0 when unseen.
func (q *QLearner[S, A]) QValue(state S, action A) float64 {
	return q.qvalues[qkey[S, A]{state, action}]
}

// MaxValue is the value of the best action at the state, 0 when the
// state is terminal (no actions).
func (q *QLearner[S, A]) MaxValue(state S, actions []A) float64 {
	if len(actions) == 0 {
		return 0
	}
	best := q.QValue(state, actions[0])
	for _, action := range actions[1:] {
		if v := q.QValue(state, action); v > best {
			best = v
		}
	}
	return best
}

// Update folds one observed transition into the table:
// Q(s,a) <- (1-alpha)*Q(s,a) + alpha*(r + discount*max_a' Q(s',a')).
func (q *QLearner[S, A]) Update(state S, action A, next S, nextActions []A, reward float64) {
	sample := reward + q.discount*q.MaxValue(next, nextActions)
	key := qkey[S, A]{state, action}
	q.qvalues[key] = (1-q.alpha)*q.qvalues[key] + q.alpha*sample
}

// SelectAction is epsilon-greedy: with probability epsilon a uniform
// random legal action, otherwise the argmax (first-seen tie-break).
// Terminal states report ok=false.
func (q *QLearner[S, A]) SelectAction(state S, actions []A) (A, bool) {
	if len(actions) == 0 {
		var none A
		return none, false
	}
	if q.rng.Float64() < q.epsilon {
		return actions[q.rng.Intn(len(actions))], true
	}

	best := actions[0]
	bestQ := q.QValue(state, best)
	for _, action := range actions[1:] {
		if v := q.QValue(state, action); v > bestQ {
			best = action
			bestQ = v
		}
	}
	return best, true
}
