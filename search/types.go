// Package search defines the capability interface, options, and sentinel
// errors for the best-first engine.
package search

import (
	"errors"
	"math"
)

// NoPath is returned by MinCost (with a nil error) when the frontier
// empties before any goal state is dequeued. Callers must check for it;
// it is an outcome, not a failure of the engine.
const NoPath int64 = -1

// Sentinel errors for the search engine.
var (
	// ErrNilSpace indicates a nil Space was passed to MinCost.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrNilStart indicates a nil start State was passed to MinCost.
	ErrNilStart = errors.New("search: start state is nil")

	// ErrBudgetExhausted indicates the expansion budget was hit before a
	// goal state was dequeued.
	ErrBudgetExhausted = errors.New("search: expansion budget exhausted")

	// ErrOptionViolation indicates an invalid Option value was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNegativeCost indicates a Space produced a transition with a
	// negative cost, which breaks the non-decreasing frontier invariant.
	ErrNegativeCost = errors.New("search: negative transition cost")
)

// State is a node of the explored space. Key must be a structural
// identity: two states with equal keys are the same node regardless of
// the path that produced them.
type State interface {
	Key() string
}

// Transition is one outgoing edge of the space: a successor state and the
// non-negative cost of reaching it from the expanded state.
type Transition struct {
	To   State
	Cost int64
}

// Space is the capability contract a domain implements to be searchable.
//
// Expand enumerates every legal transition out of s. Goal reports whether
// s is terminal. Estimate returns an admissible lower bound on the cost
// remaining from s to any goal; return 0 for plain uniform-cost search.
type Space interface {
	Goal(s State) bool
	Expand(s State) []Transition
	Estimate(s State) int64
}

// Options configures a MinCost run.
//
// MaxExpansions – cap on dequeued (expanded) states, a defense against
// malformed instances whose spaces never reach a goal. Default is
// math.MaxInt (no cap).
type Options struct {
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring MinCost.
type Option func(*Options)

// DefaultOptions returns Options with no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpansions: math.MaxInt}
}

// WithMaxExpansions caps the number of states the engine may expand.
//
//	n > 0: expand at most n states, then fail with ErrBudgetExhausted
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxExpansions = n
	}
}
