// Package pursuit defines the cut type, options, and sentinel errors for
// the containment solver.
package pursuit

import (
	"errors"
	"math"
)

// Sentinel errors for the pursuit solver.
var (
	// ErrNilGraph indicates a nil graph was passed to Solve.
	ErrNilGraph = errors.New("pursuit: graph is nil")

	// ErrNodeNotFound indicates the virus start node is not in the graph.
	ErrNodeNotFound = errors.New("pursuit: start node not found")

	// ErrNoStrategy indicates no cut sequence can keep the virus away
	// from every gateway. It is an outcome, distinguishable from input
	// errors via errors.Is.
	ErrNoStrategy = errors.New("pursuit: no containment strategy exists")

	// ErrOptionViolation indicates an invalid Option value was supplied.
	ErrOptionViolation = errors.New("pursuit: invalid option supplied")
)

// Cut is one severed edge: a gateway and the neighbor it was cut from.
type Cut struct {
	Gateway string
	Node    string
}

// String formats the cut the way the collaborator expects a result line:
// "gatewayLabel-neighborLabel".
func (c Cut) String() string { return c.Gateway + "-" + c.Node }

// Strings renders a cut sequence as result lines, in application order.
func Strings(cuts []Cut) []string {
	out := make([]string, len(cuts))
	for i, c := range cuts {
		out[i] = c.String()
	}

	return out
}

// Options configures a Solve run.
//
// MaxTurns – cap on simulated defender turns (recursion depth), a defense
// against pathological instances. Default is math.MaxInt (unbounded);
// exceeding the cap counts as a failed branch, not an error.
type Options struct {
	MaxTurns int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with no turn cap.
func DefaultOptions() Options {
	return Options{MaxTurns: math.MaxInt}
}

// WithMaxTurns caps the number of defender turns explored per branch.
//
//	n > 0: explore at most n turns deep
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxTurns(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxTurns = n
	}
}
