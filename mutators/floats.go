package mutators

import (
	"math"

	"github.com/mouse-blink/morph"
)

// Float64Mutator mutates float64 values.
//
// Outside shrink mode it offers a handful of special values (zero, one,
// epsilon, the extremes, the infinities, NaN) alongside uniform draws over
// the positive and negative finite ranges. In shrink mode it scales the
// value toward zero; NaN and the infinities first collapse to a finite
// value, and zero reports exhaustion.
type Float64Mutator struct{}

// Float64 returns a mutator for float64 values.
func Float64() Float64Mutator {
	return Float64Mutator{}
}

// Mutate implements morph.Mutator.
func (Float64Mutator) Mutate(c *morph.Candidates, value *float64) error {
	finite := func() error {
		for _, v := range [...]float64{
			0, 1, -1,
			0x1p-52, // machine epsilon
			math.SmallestNonzeroFloat64,
			math.MaxFloat64,
			-math.MaxFloat64,
		} {
			if err := c.Mutation(func(*morph.Context) error {
				*value = v
				return nil
			}); err != nil {
				return err
			}
		}
		if err := c.Mutation(func(ctx *morph.Context) error {
			*value = ctx.Rng().Float64() * math.MaxFloat64
			return nil
		}); err != nil {
			return err
		}
		return c.Mutation(func(ctx *morph.Context) error {
			*value = ctx.Rng().Float64() * -math.MaxFloat64
			return nil
		})
	}

	if c.Shrink() {
		if *value == 0 {
			return nil
		}
		if math.IsNaN(*value) || math.IsInf(*value, 0) {
			return finite()
		}
		return c.Mutation(func(ctx *morph.Context) error {
			*value *= ctx.Rng().Float64()
			return nil
		})
	}

	if err := finite(); err != nil {
		return err
	}
	for _, v := range [...]float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if err := c.Mutation(func(*morph.Context) error {
			*value = v
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// Float32Mutator mutates float32 values. See Float64Mutator for the
// candidate structure, which is identical up to the type's constants.
type Float32Mutator struct{}

// Float32 returns a mutator for float32 values.
func Float32() Float32Mutator {
	return Float32Mutator{}
}

// Mutate implements morph.Mutator.
func (Float32Mutator) Mutate(c *morph.Candidates, value *float32) error {
	finite := func() error {
		for _, v := range [...]float32{
			0, 1, -1,
			0x1p-23, // machine epsilon
			math.SmallestNonzeroFloat32,
			math.MaxFloat32,
			-math.MaxFloat32,
		} {
			if err := c.Mutation(func(*morph.Context) error {
				*value = v
				return nil
			}); err != nil {
				return err
			}
		}
		if err := c.Mutation(func(ctx *morph.Context) error {
			*value = ctx.Rng().Float32() * math.MaxFloat32
			return nil
		}); err != nil {
			return err
		}
		return c.Mutation(func(ctx *morph.Context) error {
			*value = ctx.Rng().Float32() * -math.MaxFloat32
			return nil
		})
	}

	if c.Shrink() {
		if *value == 0 {
			return nil
		}
		if f := float64(*value); math.IsNaN(f) || math.IsInf(f, 0) {
			return finite()
		}
		return c.Mutation(func(ctx *morph.Context) error {
			*value *= ctx.Rng().Float32()
			return nil
		})
	}

	if err := finite(); err != nil {
		return err
	}
	for _, v := range [...]float32{
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	} {
		if err := c.Mutation(func(*morph.Context) error {
			*value = v
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
