package search

import "container/heap"

// entry is a frontier element: a candidate state and the accumulated
// path cost used to reach it.
type entry[S comparable] struct {
	state S
	cost  float64
}

// Frontier is the ordering discipline that turns the one generic search
// loop into DFS, BFS, UCS, or A*. Push receives the priority alongside
// the entry; unordered frontiers ignore it.
type Frontier[S comparable] interface {
	Push(e entry[S], priority float64)
	Pop() (entry[S], bool)
}

// stack pops newest-first: depth-first search.
type stack[S comparable] struct {
	items []entry[S]
}

func newStack[S comparable]() *stack[S] { return &stack[S]{} }

func (s *stack[S]) Push(e entry[S], _ float64) {
	s.items = append(s.items, e)
}

func (s *stack[S]) Pop() (entry[S], bool) {
	if len(s.items) == 0 {
		var zero entry[S]
		return zero, false
	}
	e := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return e, true
}

// queue pops oldest-first: breadth-first search.
type queue[S comparable] struct {
	items []entry[S]
}

func newQueue[S comparable]() *queue[S] { return &queue[S]{} }

func (q *queue[S]) Push(e entry[S], _ float64) {
	q.items = append(q.items, e)
}

func (q *queue[S]) Pop() (entry[S], bool) {
	if len(q.items) == 0 {
		var zero entry[S]
		return zero, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e, true
}

// priorityQueue pops cheapest-first, breaking ties by insertion order so
// results stay deterministic. Used for UCS (priority = cost) and A*
// (priority = cost + heuristic).
type priorityQueue[S comparable] struct {
	heap pqHeap[S]
	seq  int
}

func newPriorityQueue[S comparable]() *priorityQueue[S] { return &priorityQueue[S]{} }

func (pq *priorityQueue[S]) Push(e entry[S], priority float64) {
	pq.seq++
	heap.Push(&pq.heap, pqItem[S]{entry: e, priority: priority, seq: pq.seq})
}

func (pq *priorityQueue[S]) Pop() (entry[S], bool) {
	if pq.heap.Len() == 0 {
		var zero entry[S]
		return zero, false
	}
	item := heap.Pop(&pq.heap).(pqItem[S])
	return item.entry, true
}

type pqItem[S comparable] struct {
	entry    entry[S]
	priority float64
	seq      int
}

type pqHeap[S comparable] []pqItem[S]

func (h pqHeap[S]) Len() int { return len(h) }

func (h pqHeap[S]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[S]) Push(x any) { *h = append(*h, x.(pqItem[S])) }

func (h *pqHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
