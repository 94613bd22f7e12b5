// Package lexerr declares the error kinds shared across lexdist's packages.
//
// Callers distinguish kinds with errors.Is; each exported sentinel is wrapped
// with fmt.Errorf("...: %w", ...) at the call site the way the rest of this
// codebase wraps os/io errors.
package lexerr

import "errors"

var (
	// ErrNullArgument marks a required capability argument that was absent
	// (a nil comparer passed to a DP kernel, a nil metric passed to
	// bktree.New).
	ErrNullArgument = errors.New("lexdist: argument must not be nil")

	// ErrWrongType marks a type-erased comparison that received a value of
	// unexpected runtime shape.
	ErrWrongType = errors.New("lexdist: value has unexpected type")

	// ErrOutOfRange marks indexed access past the end of a match collection.
	ErrOutOfRange = errors.New("lexdist: index out of range")

	// ErrInsufficientDestination marks a CopyTo whose destination cannot
	// hold the remaining elements.
	ErrInsufficientDestination = errors.New("lexdist: destination too small")

	// ErrReadOnly marks a mutation attempted on a read-only collection.
	ErrReadOnly = errors.New("lexdist: collection is read-only")
)
