package mutators

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/mouse-blink/morph"
)

func TestRuneMutateAlwaysValid(t *testing.T) {
	s := morph.NewSession().Seed(14)
	m := Rune()

	v := 'a'
	for _it := 0; _it < 2000; _it++ {
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !utf8.ValidRune(v) || (v >= surrogateMin && v <= surrogateMax) {
			t.Fatalf("mutation produced invalid rune %U", v)
		}
	}
}

func TestRuneShrinkWalksToNUL(t *testing.T) {
	s := morph.NewSession().Seed(15).Shrink(true)
	m := Rune()

	v := rune(0x10FFFF)
	prev := v
	for v != 0 {
		if err := morph.MutateWith(s, m, &v); err != nil {
			t.Fatalf("unexpected error at %U: %v", v, err)
		}
		if v >= prev {
			t.Fatalf("shrink went from %U to %U", prev, v)
		}
		if v >= surrogateMin && v <= surrogateMax {
			t.Fatalf("shrink produced surrogate %U", v)
		}
		prev = v
	}

	err := morph.MutateWith(s, m, &v)
	if !errors.Is(err, morph.ErrExhausted) {
		t.Fatalf("expected ErrExhausted at NUL, got %v", err)
	}
}

func TestRuneRangeContainment(t *testing.T) {
	tests := []struct {
		name       string
		start, end rune
	}{
		{name: "ascii", start: 'a', end: 'z'},
		{name: "straddles surrogates", start: 0xD000, end: 0xE800},
		{name: "single point", start: '!', end: '!'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := morph.NewSession().Seed(16)
			m := RuneRange(tt.start, tt.end)
			v := rune(0x10FFFF)
			for _it := 0; _it < 500; _it++ {
				if err := morph.MutateWith(s, m, &v); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if v < tt.start || v > tt.end {
					t.Fatalf("rune %U escaped [%U, %U]", v, tt.start, tt.end)
				}
				if v >= surrogateMin && v <= surrogateMax {
					t.Fatalf("rune %U is a surrogate", v)
				}
			}
		})
	}
}

func TestRuneRangeAllSurrogatesExhausted(t *testing.T) {
	s := morph.NewSession().Seed(16)
	m := RuneRange(0xD800, 0xDFFF)
	v := 'x'
	err := morph.MutateWith(s, m, &v)
	if !errors.Is(err, morph.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if v != 'x' {
		t.Fatalf("value must be untouched, got %U", v)
	}
}

func TestRuneRangeInvalid(t *testing.T) {
	s := morph.NewSession().Seed(16)
	m := RuneRange('z', 'a')
	v := 'x'
	err := morph.MutateWith(s, m, &v)
	if !errors.Is(err, morph.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
