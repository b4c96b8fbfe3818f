package learning

import (
	"time"

	"golang.org/x/exp/rand"
)

// FeatureExtractor maps a state-action pair to a sparse feature vector.
// Absent features are treated as 0.
type FeatureExtractor[S comparable, A comparable] func(state S, action A) map[string]float64

// ApproximateQLearner generalizes across states with a linear value
// function over extracted features instead of a per-pair table.
type ApproximateQLearner[S comparable, A comparable] struct {
	alpha    float64
	discount float64
	epsilon  float64
	extract  FeatureExtractor[S, A]
	weights  map[string]float64
	rng      *rand.Rand
}

func NewApproximateQLearner[S comparable, A comparable](alpha, discount, epsilon float64, extract FeatureExtractor[S, A], rng *rand.Rand) *ApproximateQLearner[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &ApproximateQLearner[S, A]{
		alpha:    alpha,
		discount: discount,
		epsilon:  epsilon,
		extract:  extract,
		weights:  make(map[string]float64),
		rng:      rng,
	}
}

// QValue is the dot product of the weight vector with the pair's
// features. Unseen features carry weight 0.
func (q *ApproximateQLearner[S, A]) QValue(state S, action A) float64 {
	total := 0.0
	for name, value := range q.extract(state, action) {
		total += q.weights[name] * value
	}
	return total
}

// MaxValue is the value of the best action at the state, 0 when the
// state is terminal (no actions).
func (q *ApproximateQLearner[S, A]) MaxValue(state S, actions []A) float64 {
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

// Update nudges every active feature's weight towards the observed
// sample: w[f] += alpha * (target - Q(s,a)) * feature[f].
func (q *ApproximateQLearner[S, A]) Update(state S, action A, next S, nextActions []A, reward float64) {
	target := reward + q.discount*q.MaxValue(next, nextActions)
	correction := target - q.QValue(state, action)
	for name, value := range q.extract(state, action) {
		q.weights[name] += q.alpha * correction * value
	}
}

// Weight returns the learned weight for a feature, 0 when unseen.
func (q *ApproximateQLearner[S, A]) Weight(name string) float64 {
	return q.weights[name]
}

// SelectAction is epsilon-greedy, identical in contract to the tabular
// learner's.
func (q *ApproximateQLearner[S, A]) SelectAction(state S, actions []A) (A, bool) {
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
