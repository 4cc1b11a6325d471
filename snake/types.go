// Package snake defines types, options, and sentinel errors for the
// Hamiltonian path solvers.
package snake

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsnake/grid"
)

// Sentinel errors for solver invocation. Search exhaustion is never an
// error; it is reported as Result{Found: false}.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to a solver.
	ErrNilGrid = errors.New("snake: grid is nil")
	// ErrUnknownMethod is returned by Solve and ParseMethod for a method
	// that is neither Recursive nor Iterative.
	ErrUnknownMethod = errors.New("snake: unknown solve method")
)

// Method selects the search strategy.
type Method int

const (
	// Recursive uses call-stack based depth-first backtracking.
	Recursive Method = iota
	// Iterative uses an explicit frame stack, equivalent to Recursive.
	Iterative
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a method name ("recursive" or "iterative") to its Method.
// Returns ErrUnknownMethod (wrapped with the input) otherwise.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("snake: %q: %w", name, ErrUnknownMethod)
	}
}

// Result holds the outcome of a solve. When Found is true, Path visits
// every grid point exactly once, begins at the grid's start, ends at its
// end, and every consecutive pair is a 4-connected neighbor pair.
// When Found is false, Path is nil.
type Result struct {
	Found bool
	Path  []grid.Point
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for the Solve dispatcher.
type Options struct {
	// Method selects the search strategy; defaults to Recursive.
	Method Method
}

// DefaultOptions returns the dispatcher defaults: the Recursive method.
func DefaultOptions() Options {
	return Options{Method: Recursive}
}

// WithMethod returns an Option selecting the search strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}
