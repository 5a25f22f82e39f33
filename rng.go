package morph

// Rng is a small, deterministic pseudo-random number generator based on
// SplitMix64. It is deliberately self-contained so that a given seed yields
// the same sequence on every platform and every version of this module,
// which keeps recorded failing seeds reproducible.
//
// It is not cryptographically secure and must never be used where security
// matters.
type Rng struct {
	state uint64
}

// NewRng returns a generator seeded with seed.
func NewRng(seed uint64) Rng {
	return Rng{state: seed}
}

// Uint64 returns the next value in the sequence.
func (r *Rng) Uint64() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Uint64N returns a value in [0, n). It returns 0 when n is 0. The draw
// uses plain modulo reduction: the bias is far below anything candidate
// counts can surface, and keeping the mapping trivial keeps recorded seed
// streams stable.
func (r *Rng) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return r.Uint64() % n
}

// Index returns a uniform index into a collection of length n. The second
// result is false if and only if n is not positive, in which case there is
// nothing to index.
func (r *Rng) Index(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return int(r.Uint64N(uint64(n))), true
}

// Bool returns a uniform boolean.
func (r *Rng) Bool() bool {
	return r.Uint64()&1 == 1
}

// Uint8 returns a uniform uint8.
func (r *Rng) Uint8() uint8 {
	return uint8(r.Uint64())
}

// Uint16 returns a uniform uint16.
func (r *Rng) Uint16() uint16 {
	return uint16(r.Uint64())
}

// Uint32 returns a uniform uint32.
func (r *Rng) Uint32() uint32 {
	return uint32(r.Uint64())
}

// Int8 returns a uniform int8.
func (r *Rng) Int8() int8 {
	return int8(r.Uint64())
}

// Int16 returns a uniform int16.
func (r *Rng) Int16() int16 {
	return int16(r.Uint64())
}

// Int32 returns a uniform int32.
func (r *Rng) Int32() int32 {
	return int32(r.Uint64())
}

// Int64 returns a uniform int64.
func (r *Rng) Int64() int64 {
	return int64(r.Uint64())
}

// Float64 returns a uniform float64 in [0, 1).
func (r *Rng) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Float32 returns a uniform float32 in [0, 1).
func (r *Rng) Float32() float32 {
	return float32(r.Uint64()>>40) / (1 << 24)
}

// Fill fills buf with random bytes.
func (r *Rng) Fill(buf []byte) {
	for len(buf) > 0 {
		v := r.Uint64()
		n := min(len(buf), 8)
		for i := 0; i < n; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		buf = buf[n:]
	}
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxRune      = 0x10FFFF
)

// Rune returns a uniform Unicode scalar value: any code point in
// [0, 0x10FFFF] except the surrogate block.
func (r *Rng) Rune() rune {
	const surrogates = surrogateMax - surrogateMin + 1
	v := r.Uint64N(maxRune + 1 - surrogates)
	if v >= surrogateMin {
		v += surrogates
	}
	return rune(v)
}
