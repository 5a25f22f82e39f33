package mutators

import "github.com/mouse-blink/morph"

// Result holds either a success value or an error value, mirroring the
// usual (T, error) pair as one mutable unit so a mutator can flip a value
// between the two states.
type Result[T, E any] struct {
	ok  bool
	val T
	err E
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, val: v}
}

// Err returns a Result holding the error value e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value and whether it is present.
func (r Result[T, E]) Value() (T, bool) {
	return r.val, r.ok
}

// Err returns the error value and whether it is present.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// ResultMutator mutates Result values. Either side's value can be mutated
// in place, and the result can flip state by generating a value for the
// other side. The success state counts as the simpler one: in shrink mode
// an error can still flip to a success, but never the other way around.
type ResultMutator[T, E any] struct {
	ok  morph.Generative[T]
	err morph.Generative[E]
}

// ResultOf returns a mutator over Result[T, E] values.
func ResultOf[T, E any](ok morph.Generative[T], err morph.Generative[E]) ResultMutator[T, E] {
	return ResultMutator[T, E]{ok: ok, err: err}
}

// Mutate implements morph.Mutator.
func (m ResultMutator[T, E]) Mutate(c *morph.Candidates, value *Result[T, E]) error {
	if value.ok {
		if err := m.ok.Mutate(c, &value.val); err != nil {
			return err
		}
		if c.Shrink() {
			return nil
		}
		return c.Mutation(func(ctx *morph.Context) error {
			e, err := m.err.Generate(ctx)
			if err != nil {
				return err
			}
			*value = Err[T, E](e)
			return nil
		})
	}

	if err := m.err.Mutate(c, &value.err); err != nil {
		return err
	}
	return c.Mutation(func(ctx *morph.Context) error {
		v, err := m.ok.Generate(ctx)
		if err != nil {
			return err
		}
		*value = Ok[T, E](v)
		return nil
	})
}
