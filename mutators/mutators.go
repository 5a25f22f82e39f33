// Package mutators provides morph.Mutator implementations for Go's built-in
// types, plus the container mutators (slices, pointers, results) that lift a
// mutator for an element type to a mutator for the container.
//
// Importing this package registers default mutators for the built-in types,
// which is what makes morph.Mutate work out of the box:
//
//	import _ "github.com/mouse-blink/morph/mutators"
package mutators

import "github.com/mouse-blink/morph"

// Default returns the registered canonical mutator for T. It is shorthand
// for morph.DefaultFor.
func Default[T any]() (morph.Mutator[T], error) {
	return morph.DefaultFor[T]()
}

// Integer covers the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func init() {
	morph.RegisterDefault(func() morph.Mutator[bool] { return Bool() })
	morph.RegisterDefault(func() morph.Mutator[int] { return Int[int]() })
	morph.RegisterDefault(func() morph.Mutator[int8] { return Int[int8]() })
	morph.RegisterDefault(func() morph.Mutator[int16] { return Int[int16]() })
	morph.RegisterDefault(func() morph.Mutator[int32] { return Int[int32]() })
	morph.RegisterDefault(func() morph.Mutator[int64] { return Int[int64]() })
	morph.RegisterDefault(func() morph.Mutator[uint] { return Int[uint]() })
	morph.RegisterDefault(func() morph.Mutator[uint8] { return Int[uint8]() })
	morph.RegisterDefault(func() morph.Mutator[uint16] { return Int[uint16]() })
	morph.RegisterDefault(func() morph.Mutator[uint32] { return Int[uint32]() })
	morph.RegisterDefault(func() morph.Mutator[uint64] { return Int[uint64]() })
	morph.RegisterDefault(func() morph.Mutator[uintptr] { return Int[uintptr]() })
	morph.RegisterDefault(func() morph.Mutator[float32] { return Float32() })
	morph.RegisterDefault(func() morph.Mutator[float64] { return Float64() })
}
