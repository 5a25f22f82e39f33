package cli

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/mouse-blink/morph/mutators"
)

// bucketInt groups integers by sign and power of two: "2^7" covers
// [128, 256), "-2^3" covers (-16, -8].
func bucketInt[T mutators.Integer](v T) string {
	if v == 0 {
		return "zero"
	}
	if v < 0 {
		mag := uint64(-int64(v))
		return fmt.Sprintf("-2^%d", bits.Len64(mag)-1)
	}
	return fmt.Sprintf("2^%d", bits.Len64(uint64(v))-1)
}

// bucketFloat64 groups floats coarsely by class and magnitude.
func bucketFloat64(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "zero"
	case v > 0 && v < 1:
		return "(0, 1)"
	case v >= 1 && v < 1e100:
		return "[1, 1e100)"
	case v >= 1e100:
		return "[1e100, +Inf)"
	case v > -1:
		return "(-1, 0)"
	case v > -1e100:
		return "(-1e100, -1]"
	default:
		return "(-Inf, -1e100]"
	}
}

func bucketFloat32(v float32) string {
	return bucketFloat64(float64(v))
}

func bucketBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// bucketRune groups runes by the regions the rune mutator is biased
// toward.
func bucketRune(v rune) string {
	switch {
	case v >= 0x20 && v <= 0x7E:
		return "printable ascii"
	case v <= 0xFFFF:
		return "plane 0"
	case v <= 0x1FFFF:
		return "plane 1"
	case v <= 0x2FFFF:
		return "plane 2"
	case v <= 0x3FFFF:
		return "plane 3"
	default:
		return "planes 4-16"
	}
}
