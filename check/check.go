// Package check is a property-based testing harness built on morph. It
// mutates a corpus of seed values, runs a property over every variant it
// produces, and shrinks any failing input down to a small counterexample
// before reporting it.
package check

import (
	"errors"
	"io"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/morph"
)

// panicMessage is the failure message recorded when a property panics
// instead of returning an error.
const panicMessage = "property panicked"

// ErrEmptyCorpus reports that Run was handed no seed values to start from.
var ErrEmptyCorpus = errors.New("cannot check an empty corpus")

// Failure is the result of a failed check: the smallest failing input the
// shrinker could find, together with the message the property failed with.
type Failure[T any] struct {
	Value   T
	Message string
}

// Error implements the error interface.
func (f *Failure[T]) Error() string {
	return fmt.Sprintf("check failed on input %v: %s", f.Value, f.Message)
}

// Checker configures property checks. The zero value is not useful; start
// from New and chain the option methods:
//
//	err := check.Run(check.New().Iters(5000), m, corpus, property)
type Checker struct {
	iters       int
	shrinkIters int
	seed        uint64
	seeded      bool
	log         *slog.Logger
}

// New returns a checker with the default budget of 1000 mutation iterations
// and 1000 shrink iterations, logging discarded.
func New() *Checker {
	return &Checker{
		iters:       1000,
		shrinkIters: 1000,
		log:         slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(12)})),
	}
}

// Iters sets how many mutations to run the property against.
func (c *Checker) Iters(n int) *Checker {
	c.iters = n
	return c
}

// ShrinkIters sets how many mutations to spend shrinking a failing input.
// Zero disables shrinking and reports the original failure.
func (c *Checker) ShrinkIters(n int) *Checker {
	c.shrinkIters = n
	return c
}

// Seed makes the whole check reproducible from the given seed.
func (c *Checker) Seed(seed uint64) *Checker {
	c.seed = seed
	c.seeded = true
	return c
}

// Logger sets the logger progress and shrink steps are reported to.
func (c *Checker) Logger(l *slog.Logger) *Checker {
	c.log = l
	return c
}

// session builds a mutation or shrink session per the checker's seed
// configuration. The shrink session gets an offset seed so the two phases
// draw independent streams even under an explicit seed.
func (c *Checker) session(shrink bool) *morph.Session {
	s := morph.NewSession()
	if c.seeded {
		seed := c.seed
		if shrink {
			seed++
		}
		s.Seed(seed)
	}
	return s.Shrink(shrink)
}

// Run checks property against mutations of the corpus.
//
// Every corpus member is verified against the property first. Then, for the
// configured number of iterations, a random member is mutated in place with
// m and re-checked; a member m can no longer mutate is dropped from the
// corpus. The first failing value found is shrunk and returned inside a
// *Failure[T]. Run returns nil when the property held throughout, which
// includes the corpus running dry.
func Run[T any](c *Checker, m morph.Mutator[T], corpus []T, property func(*T) error) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}

	working := make([]T, len(corpus))
	copy(working, corpus)

	for i := range working {
		if msg, ok := holds(&working[i], property); !ok {
			return shrink(c, m, clone(working[i]), property, msg)
		}
	}

	session := c.session(false)
	for _it := 0; _it < c.iters; _it++ {
		idx, _ := session.Rng().Index(len(working))
		err := morph.MutateWith(session, m, &working[idx])
		if errors.Is(err, morph.ErrExhausted) {
			// This member has no mutations left in it. Swap-remove it and
			// move on.
			working[idx] = working[len(working)-1]
			working = working[:len(working)-1]
			if len(working) == 0 {
				c.log.Debug("corpus exhausted, nothing left to mutate")
				return nil
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("mutating corpus member: %w", err)
		}
		if msg, ok := holds(&working[idx], property); !ok {
			return shrink(c, m, clone(working[idx]), property, msg)
		}
	}
	return nil
}

// shrink spends the shrink budget minimizing a failing value, keeping a
// mutation only when the property still fails on the result.
func shrink[T any](c *Checker, m morph.Mutator[T], value T, property func(*T) error, message string) error {
	c.log.Warn("property failed", "value", value, "message", message)
	if c.shrinkIters <= 0 {
		return &Failure[T]{Value: value, Message: message}
	}

	session := c.session(true)
	for _it := 0; _it < c.shrinkIters; _it++ {
		candidate := clone(value)
		err := morph.MutateWith(session, m, &candidate)
		if errors.Is(err, morph.ErrExhausted) {
			break
		}
		if err != nil {
			// Mutator hiccups are not worth aborting a shrink over.
			c.log.Debug("ignoring mutator error while shrinking", "error", err)
			continue
		}
		if msg, ok := holds(&candidate, property); !ok {
			value = candidate
			message = msg
			c.log.Debug("shrunk failing input", "value", value, "message", message)
		}
	}

	c.log.Info("shrinking finished", "value", value, "message", message)
	return &Failure[T]{Value: value, Message: message}
}

// holds runs the property once, reporting whether it held and the failure
// message when it did not. A panicking property counts as a failure, not a
// crash.
func holds[T any](value *T, property func(*T) error) (string, bool) {
	if err := run(value, property); err != nil {
		return err.Error(), false
	}
	return "", true
}

func run[T any](value *T, property func(*T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(panicMessage)
		}
	}()
	return property(value)
}

// clone copies a corpus value before handing it to the shrinker. Types
// owning reference state can control the copy by implementing
// Clone() T; everything else is copied by value.
func clone[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return v
}
