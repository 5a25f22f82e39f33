package mutators

import "github.com/mouse-blink/morph"

// SliceMutator lifts an element mutator over a slice: every element
// contributes its own candidates, so longer slices offer proportionally
// more mutations. It never changes the slice's length.
type SliceMutator[T any] struct {
	elem morph.Mutator[T]
}

// Slice returns a mutator over []T values using elem for the elements.
func Slice[T any](elem morph.Mutator[T]) SliceMutator[T] {
	return SliceMutator[T]{elem: elem}
}

// Mutate implements morph.Mutator. An empty slice has no candidates and
// reports exhaustion.
func (s SliceMutator[T]) Mutate(c *morph.Candidates, value *[]T) error {
	for i := range *value {
		if err := s.elem.Mutate(c, &(*value)[i]); err != nil {
			return err
		}
	}
	return nil
}

// PtrMutator mutates a pointer: a nil pointer can be materialized with a
// generated value, a non-nil pointer can have its pointee mutated or be set
// back to nil. In shrink mode nil is the simplest form, so materializing is
// never offered and a nil pointer reports exhaustion.
type PtrMutator[T any] struct {
	elem morph.Generative[T]
}

// Ptr returns a mutator over *T values. elem must be able to generate
// fresh values for filling in nil pointers.
func Ptr[T any](elem morph.Generative[T]) PtrMutator[T] {
	return PtrMutator[T]{elem: elem}
}

// Mutate implements morph.Mutator.
func (p PtrMutator[T]) Mutate(c *morph.Candidates, value **T) error {
	if *value == nil {
		if c.Shrink() {
			return nil
		}
		return c.Mutation(func(ctx *morph.Context) error {
			v, err := p.elem.Generate(ctx)
			if err != nil {
				return err
			}
			*value = &v
			return nil
		})
	}

	if err := p.elem.Mutate(c, *value); err != nil {
		return err
	}
	return c.Mutation(func(*morph.Context) error {
		*value = nil
		return nil
	})
}
