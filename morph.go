// Package morph implements structure-aware random mutation of values, the
// building block for property-based testing and coverage-guided fuzzing.
//
// A Mutator describes every small change that could be made to a value of
// some type; a Session picks one of those changes uniformly at random and
// applies it in place. Mutators compose: combinators such as OneOf, Map and
// Proj assemble mutators for structured types out of mutators for their
// parts, and the mutators subpackage provides implementations for the
// built-in types.
//
// Sessions can run in shrink mode, in which every mutation makes the value
// simpler rather than merely different. The check subpackage builds a
// property-based test harness on top of that.
package morph

// Mutator mutates values of type T in place.
//
// Mutate must register each mutation it could perform on *value by calling
// c.Mutation, returning early with any non-nil error Candidates hands back.
// It must not mutate *value outside a registered closure, and it must
// register the same candidates every time it is called with an equivalent
// value and session state.
type Mutator[T any] interface {
	Mutate(c *Candidates, value *T) error
}

// Generator produces new values of type T from scratch, for contexts where
// there is no existing value to mutate (for example materializing a pointer
// that is currently nil).
type Generator[T any] interface {
	Generate(ctx *Context) (T, error)
}

// Generative is satisfied by mutators that can also generate fresh values.
type Generative[T any] interface {
	Mutator[T]
	Generator[T]
}

// RangeMutator mutates values of type T while keeping them inside the
// inclusive range [start, end]. Implementations return ErrInvalidRange when
// start > end and must leave *value untouched in that case.
type RangeMutator[T any] interface {
	MutateInRange(c *Candidates, value *T, start, end T) error
}
