package mutators

import "github.com/mouse-blink/morph"

// BoolMutator toggles a boolean. In shrink mode only true can change, false
// being the simplest boolean, so a false value reports exhaustion.
type BoolMutator struct{}

// Bool returns a mutator for bool values.
func Bool() BoolMutator {
	return BoolMutator{}
}

// Mutate implements morph.Mutator.
func (BoolMutator) Mutate(c *morph.Candidates, value *bool) error {
	if c.Shrink() && !*value {
		return nil
	}
	return c.Mutation(func(*morph.Context) error {
		*value = !*value
		return nil
	})
}

// Generate implements morph.Generator.
func (BoolMutator) Generate(ctx *morph.Context) (bool, error) {
	return ctx.Rng().Bool(), nil
}
