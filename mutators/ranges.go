package mutators

import "github.com/mouse-blink/morph"

// RangeWith fixes the bounds of a range-aware mutator, turning it into a
// plain mutator whose every candidate keeps the value inside the inclusive
// range [start, end]. An inverted range surfaces as morph.ErrInvalidRange
// on every call.
func RangeWith[T any](start, end T, m morph.RangeMutator[T]) morph.Mutator[T] {
	return rangeMutator[T]{m: m, start: start, end: end}
}

// Range returns a mutator producing integers in [start, end].
func Range[T Integer](start, end T) morph.Mutator[T] {
	return RangeWith(start, end, Int[T]())
}

// RuneRange returns a mutator producing valid scalar values in the code
// point range [start, end].
func RuneRange(start, end rune) morph.Mutator[rune] {
	return RangeWith(start, end, Rune())
}

type rangeMutator[T any] struct {
	m          morph.RangeMutator[T]
	start, end T
}

func (rm rangeMutator[T]) Mutate(c *morph.Candidates, value *T) error {
	return rm.m.MutateInRange(c, value, rm.start, rm.end)
}
