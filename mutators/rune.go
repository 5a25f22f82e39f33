package mutators

import "github.com/mouse-blink/morph"

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxRune      = 0x10FFFF
)

// runeBlocks are the ranges the rune mutator biases its draws toward:
// printable ASCII first, then the assigned stretches of the supplementary
// planes. The ranges still contain some unassigned code points; listing only
// assigned ones is not worth the upkeep.
//
// See https://en.wikipedia.org/wiki/Plane_(Unicode)#Overview.
var runeBlocks = [...][2]rune{
	{0x20, 0x7E},       // printable ASCII
	{0x0000, 0xFFFF},   // plane 0, Basic Multilingual
	{0x10000, 0x14FFF}, // plane 1
	{0x16000, 0x18FFF},
	{0x1A000, 0x1FFFF},
	{0x20000, 0x2FFFF}, // plane 2, CJK extensions
	{0x30000, 0x32FFF}, // plane 3
}

// RuneMutator mutates runes while always producing valid Unicode scalar
// values: surrogate code points never come out of it. Outside shrink mode
// draws are biased toward the blocks above, with one extra candidate
// covering the whole domain. In shrink mode it redraws strictly below the
// current rune, so values walk down to NUL, which reports exhaustion.
type RuneMutator struct{}

// Rune returns a mutator for rune values.
//
// The registered default mutator for rune is Int[int32], since rune is an
// alias of int32; use this mutator explicitly when values must stay valid
// scalar values.
func Rune() RuneMutator {
	return RuneMutator{}
}

// Mutate implements morph.Mutator.
func (m RuneMutator) Mutate(c *morph.Candidates, value *rune) error {
	if c.Shrink() {
		if *value == 0 {
			return nil
		}
		return c.Mutation(func(ctx *morph.Context) error {
			*value = runeInRange(ctx.Rng(), 0, *value-1)
			return nil
		})
	}

	for _, b := range runeBlocks {
		if err := m.MutateInRange(c, value, b[0], b[1]); err != nil {
			return err
		}
	}
	return c.Mutation(func(ctx *morph.Context) error {
		*value = ctx.Rng().Rune()
		return nil
	})
}

// Generate implements morph.Generator with a uniform scalar value.
func (RuneMutator) Generate(ctx *morph.Context) (rune, error) {
	return ctx.Rng().Rune(), nil
}

// MutateInRange implements morph.RangeMutator. The range is over code
// points, but the draw skips the surrogate block; a range lying entirely
// inside it has no valid scalar values and reports exhaustion.
func (RuneMutator) MutateInRange(c *morph.Candidates, value *rune, start, end rune) error {
	if start > end {
		return morph.ErrInvalidRange
	}
	if start >= surrogateMin && end <= surrogateMax {
		return nil
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
		*value = runeInRange(ctx.Rng(), lo, hi)
		return nil
	})
}

// runeInRange draws a uniform valid scalar value in [lo, hi]. The range
// must contain at least one: callers clamp away ranges living entirely
// inside the surrogate block.
func runeInRange(r *morph.Rng, lo, hi rune) rune {
	const surrogates = surrogateMax - surrogateMin + 1

	// Pull endpoints out of the surrogate block first.
	if lo >= surrogateMin && lo <= surrogateMax {
		lo = surrogateMax + 1
	}
	if hi >= surrogateMin && hi <= surrogateMax {
		hi = surrogateMin - 1
	}

	total := uint64(hi - lo + 1)
	straddles := lo < surrogateMin && hi > surrogateMax
	if straddles {
		total -= surrogates
	}
	v := lo + rune(r.Uint64N(total))
	if straddles && v >= surrogateMin {
		v += surrogates
	}
	return v
}
