package morph

// Func adapts a plain function into a Mutator. The function is subject to
// the same contract as Mutator.Mutate.
func Func[T any](f func(c *Candidates, value *T) error) Mutator[T] {
	return funcMutator[T](f)
}

type funcMutator[T any] func(c *Candidates, value *T) error

func (f funcMutator[T]) Mutate(c *Candidates, value *T) error {
	return f(c, value)
}

// OneOf combines mutators for the same type into one that draws uniformly
// from the union of their candidates. A sub-mutator exhausted for the
// current value simply contributes no candidates; OneOf itself is exhausted
// only when all of them are.
func OneOf[T any](ms ...Mutator[T]) Mutator[T] {
	return &oneOf[T]{ms: ms}
}

type oneOf[T any] struct {
	ms []Mutator[T]
}

func (o *oneOf[T]) Mutate(c *Candidates, value *T) error {
	for _, m := range o.ms {
		if err := m.Mutate(c, value); err != nil {
			return err
		}
	}
	return nil
}

// Just returns a mutator with exactly one candidate: overwrite the value
// with the given constant. It offers that candidate in shrink mode too, so
// combine it with care when the constant is not a simple value.
func Just[T any](value T) Mutator[T] {
	return just[T]{value: value}
}

type just[T any] struct {
	value T
}

func (j just[T]) Mutate(c *Candidates, value *T) error {
	return c.Mutation(func(*Context) error {
		*value = j.value
		return nil
	})
}

// Map wraps m so that f runs on the value right after one of m's mutations
// is applied. f contributes no candidates of its own: the wrapped mutator
// has exactly m's candidates, and f rides along with whichever one fires.
// An error from f aborts the engine call and is returned to the caller.
func Map[T any](m Mutator[T], f func(ctx *Context, value *T) error) Mutator[T] {
	return &mapMutator[T]{m: m, f: f}
}

type mapMutator[T any] struct {
	m Mutator[T]
	f func(ctx *Context, value *T) error
}

func (mm *mapMutator[T]) Mutate(c *Candidates, value *T) error {
	err := mm.m.Mutate(c, value)
	if err != errEarlyExit {
		return err
	}
	if ferr := mm.f(c.ctx, value); ferr != nil {
		return ferr
	}
	return err
}

// Proj focuses a mutator for a field type onto the containing struct type,
// using get to project a pointer to the outer value down to the field.
// Combining Proj with OneOf gives a mutator for a whole struct:
//
//	morph.OneOf(
//		morph.Proj(mutators.Int[int32](), func(p *point) *int32 { return &p.x }),
//		morph.Proj(mutators.Int[int32](), func(p *point) *int32 { return &p.y }),
//	)
func Proj[O, I any](m Mutator[I], get func(outer *O) *I) Mutator[O] {
	return &proj[O, I]{m: m, get: get}
}

type proj[O, I any] struct {
	m   Mutator[I]
	get func(outer *O) *I
}

func (p *proj[O, I]) Mutate(c *Candidates, value *O) error {
	return p.m.Mutate(c, p.get(value))
}
