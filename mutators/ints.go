package mutators

import "github.com/mouse-blink/morph"

// IntMutator mutates any built-in integer type by redrawing it.
//
// In shrink mode it redraws strictly between zero and the current value, so
// repeated mutations walk the magnitude down to zero, where it reports
// exhaustion. Negative values shrink through smaller negative values, never
// jumping the sign.
type IntMutator[T Integer] struct{}

// Int returns a mutator for the integer type T.
//
// Note that rune and byte are aliases of int32 and uint8: Int[int32]() is
// the registered default for rune values, use Rune() explicitly to get
// Unicode-aware mutation.
func Int[T Integer]() IntMutator[T] {
	return IntMutator[T]{}
}

// Mutate implements morph.Mutator.
func (IntMutator[T]) Mutate(c *morph.Candidates, value *T) error {
	if c.Shrink() && *value == 0 {
		return nil
	}
	return c.Mutation(func(ctx *morph.Context) error {
		if ctx.Shrink() {
			*value = shrinkInt(ctx.Rng(), *value)
		} else {
			*value = T(ctx.Rng().Uint64())
		}
		return nil
	})
}

// Generate implements morph.Generator with a uniform draw over T's domain.
func (IntMutator[T]) Generate(ctx *morph.Context) (T, error) {
	return T(ctx.Rng().Uint64()), nil
}

// MutateInRange implements morph.RangeMutator. In shrink mode the effective
// upper bound is clamped to the current value, so the result never moves
// further from start.
func (IntMutator[T]) MutateInRange(c *morph.Candidates, value *T, start, end T) error {
	if start > end {
		return morph.ErrInvalidRange
	}
	if c.Shrink() && *value == start {
		return nil
	}
	return c.Mutation(func(ctx *morph.Context) error {
		lo, hi := start, end
		if ctx.Shrink() {
			if *value < hi {
				hi = *value
			}
			if hi < lo {
				hi = lo
			}
		}
		*value = intInRange(ctx.Rng(), lo, hi)
		return nil
	})
}

// shrinkInt draws a replacement strictly between zero and v. v must be
// non-zero.
func shrinkInt[T Integer](r *morph.Rng, v T) T {
	if v > 0 {
		return T(r.Uint64N(uint64(v)))
	}
	// Negative: draw a magnitude in [0, |v|). Two's complement makes the
	// negation safe even for the minimum value of T.
	mag := uint64(-int64(v))
	return -T(r.Uint64N(mag))
}

// intInRange draws a uniform value in the inclusive range [lo, hi]. The
// offset arithmetic runs in uint64 so it holds for every width and for
// signed ranges straddling zero; a span that wraps to zero means the full
// 64-bit domain.
func intInRange[T Integer](r *morph.Rng, lo, hi T) T {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return T(r.Uint64())
	}
	return T(uint64(lo) + r.Uint64N(span))
}
