package search

import (
	"container/heap"
	"fmt"
)

// MinCost runs best-first search on sp from start and returns the minimum
// accumulated cost to reach a goal state.
//
// Returns:
//
//   - cost: minimum total transition cost to the first goal dequeued, or
//     NoPath if the frontier empties without reaching one.
//   - err:  ErrNilSpace/ErrNilStart for invalid input, ErrOptionViolation
//     for a bad option, ErrNegativeCost if sp emits a negative-cost
//     transition, ErrBudgetExhausted if WithMaxExpansions is hit.
//
// The engine is deterministic given a deterministic Expand: equal-priority
// heap entries tie-break on insertion order, which carries no semantic
// meaning but keeps runs reproducible.
//
// Complexity: O(N·B log N) time, O(N·B) space — see package doc.
func MinCost(sp Space, start State, opts ...Option) (int64, error) {
	// Build and validate options before touching the space.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return NoPath, cfg.err
	}

	if sp == nil {
		return NoPath, ErrNilSpace
	}
	if start == nil {
		return NoPath, ErrNilStart
	}

	r := &runner{
		space: sp,
		opts:  cfg,
		best:  make(map[string]int64),
	}
	heap.Init(&r.pq)
	r.push(start, 0)

	return r.process()
}

// runner holds the mutable state of a single MinCost execution. It is
// private to one invocation and never reused.
type runner struct {
	space    Space
	opts     Options
	best     map[string]int64 // state key → best known accumulated cost
	pq       entryPQ          // min-heap on f = cost + estimate
	expanded int              // dequeued states, checked against the budget
}

// push records cost as the best known for s and enqueues it with priority
// cost + Estimate(s). Lazy decrease-key: an already-queued entry for the
// same key is left in place and skipped when dequeued stale.
func (r *runner) push(s State, cost int64) {
	r.best[s.Key()] = cost
	heap.Push(&r.pq, &entry{
		state:    s,
		cost:     cost,
		priority: cost + r.space.Estimate(s),
	})
}

// process is the main loop: dequeue the lowest-priority entry, skip it if
// stale, stop at the goal, otherwise relax its transitions.
func (r *runner) process() (int64, error) {
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(*entry)

		// Stale entry: a cheaper path to this state was found after it
		// was enqueued.
		if e.cost > r.best[e.state.Key()] {
			continue
		}

		if r.space.Goal(e.state) {
			return e.cost, nil
		}

		r.expanded++
		if r.expanded > r.opts.MaxExpansions {
			return NoPath, ErrBudgetExhausted
		}

		if err := r.relax(e); err != nil {
			return NoPath, err
		}
	}

	// Frontier exhausted: no goal is reachable from start.
	return NoPath, nil
}

// relax pushes every transition out of e.state that improves on the best
// known cost of its successor.
func (r *runner) relax(e *entry) error {
	for _, tr := range r.space.Expand(e.state) {
		if tr.Cost < 0 {
			return fmt.Errorf("%w: %d from state %q", ErrNegativeCost, tr.Cost, e.state.Key())
		}
		next := e.cost + tr.Cost
		if prev, seen := r.best[tr.To.Key()]; seen && next >= prev {
			continue
		}
		r.push(tr.To, next)
	}

	return nil
}

// entry is one frontier element: a state, its accumulated cost, and its
// heap priority (cost + estimate).
type entry struct {
	state    State
	cost     int64
	priority int64
}

// entryPQ is a min-heap of *entry ordered by priority ascending, following
// the lazy-decrease-key pattern: superseded entries stay queued and are
// discarded when popped.
type entryPQ []*entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the lowest-priority element.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
