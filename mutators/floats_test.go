package mutators

import (
	"errors"
	"math"
	"testing"

	"github.com/mouse-blink/morph"
)

func TestFloat64MutateProducesSpecialValues(t *testing.T) {
	s := morph.NewSession().Seed(8)
	m := Float64()

	sawNaN, sawInf, sawZero := false, false, false
	for _it := 0; _it < 500; _it++ {
		v := 2.5
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		switch {
		case math.IsNaN(v):
			sawNaN = true
		case math.IsInf(v, 0):
			sawInf = true
		case v == 0:
			sawZero = true
		}
	}
	if !sawNaN || !sawInf || !sawZero {
		t.Fatalf("special values missing: nan=%v inf=%v zero=%v", sawNaN, sawInf, sawZero)
	}
}

func TestFloat64ShrinkNeverGrowsMagnitude(t *testing.T) {
	s := morph.NewSession().Seed(9).Shrink(true)
	m := Float64()

	v := 1e300
	for _it := 0; _it < 200; _it++ {
		if v == 0 {
			break
		}
		prev := v
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(v) > math.Abs(prev) {
			t.Fatalf("shrink grew magnitude from %v to %v", prev, v)
		}
	}
}

func TestFloat64ShrinkCollapsesNonFinite(t *testing.T) {
	s := morph.NewSession().Seed(12).Shrink(true)
	m := Float64()

	for _, start := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := start
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error from %v: %v", start, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("shrinking %v produced non-finite %v", start, v)
		}
	}
}

func TestFloat64ShrinkExhaustedAtZero(t *testing.T) {
	s := morph.NewSession().Seed(1).Shrink(true)
	v := 0.0
	err := morph.MutateWith(s, Float64(), &v)
	if !errors.Is(err, morph.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestFloat32ShrinkNeverGrowsMagnitude(t *testing.T) {
	s := morph.NewSession().Seed(9).Shrink(true)
	m := Float32()

	v := float32(3e38)
	for _it := 0; _it < 200; _it++ {
		if v == 0 {
			break
		}
		prev := v
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(float64(v)) > math.Abs(float64(prev)) {
			t.Fatalf("shrink grew magnitude from %v to %v", prev, v)
		}
	}
}

func TestFloat32ShrinkExhaustedAtZero(t *testing.T) {
	s := morph.NewSession().Seed(1).Shrink(true)
	v := float32(0)
	err := morph.MutateWith(s, Float32(), &v)
	if !errors.Is(err, morph.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}
