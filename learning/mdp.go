// Package learning implements value models over Markov decision
// processes: batch value iteration for planning when the full model is
// known, and tabular or linear-feature Q-learning when it is not.
package learning

// Transition is one stochastic outcome of taking an action.
type Transition[S comparable] struct {
	Next S
	Prob float64
}

// MDP exposes a finite Markov decision process. A state with no
// possible actions is terminal.
type MDP[S comparable, A comparable] interface {
	States() []S
	PossibleActions(state S) []A
	Transitions(state S, action A) []Transition[S]
	Reward(state S, action A, next S) float64
}

// Planner holds the value table produced by batch value iteration.
type Planner[S comparable, A comparable] struct {
	mdp      MDP[S, A]
	discount float64
	values   map[S]float64
}

// NewPlanner runs synchronous value iteration for the given number of
// sweeps: every sweep computes each state's new value from the previous
// sweep's full table, never from values updated within the same sweep.
func NewPlanner[S comparable, A comparable](mdp MDP[S, A], discount float64, iterations int) *Planner[S, A] {
	p := &Planner[S, A]{
		mdp:      mdp,
		discount: discount,
		values:   make(map[S]float64),
	}
	for i := 0; i < iterations; i++ {
		next := make(map[S]float64, len(p.values))
		for _, state := range mdp.States() {
			if action, ok := p.Policy(state); ok {
				next[state] = p.QValue(state, action)
			}
		}
		p.values = next
	}
	return p
}

// Value returns the state's estimated value; terminal and unseen states
// are worth 0.
func (p *Planner[S, A]) Value(state S) float64 {
	return p.values[state]
}

// QValue is the expected discounted return of taking the action and
// following the current value table afterwards.
func (p *Planner[S, A]) QValue(state S, action A) float64 {
	q := 0.0
	for _, t := range p.mdp.Transitions(state, action) {
		q += t.Prob * (p.mdp.Reward(state, action, t.Next) + p.discount*p.Value(t.Next))
	}
	return q
}

// Policy returns the action maximizing QValue, ties broken by the
// MDP's action enumeration order. Terminal states report ok=false.
func (p *Planner[S, A]) Policy(state S) (A, bool) {
	actions := p.mdp.PossibleActions(state)
	if len(actions) == 0 {
		var none A
		return none, false
	}

	best := actions[0]
	bestQ := p.QValue(state, best)
	for _, action := range actions[1:] {
		if q := p.QValue(state, action); q > bestQ {
			best = action
			bestQ = q
		}
	}
	return best, true
}
