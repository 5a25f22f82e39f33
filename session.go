package morph

import (
	"fmt"
	"sync/atomic"
)

// nextSeed gives every default-constructed session its own seed, so that
// independent sessions in one process do not replay each other's choices.
var nextSeed atomic.Uint64

// Session drives mutators. It owns the random number generator and the
// shrink flag, and implements the candidate selection protocol: count the
// candidates a mutator offers, choose one uniformly, and apply exactly it.
//
// Sessions are cheap to create and are not safe for concurrent use; give
// each goroutine its own.
type Session struct {
	ctx Context
}

// NewSession returns a session seeded from a process-wide counter. Use Seed
// to make a session reproducible.
func NewSession() *Session {
	s := &Session{}
	s.ctx.rng = NewRng(nextSeed.Add(1))
	return s
}

// Seed reseeds the session's random number generator and returns the
// session for chaining.
func (s *Session) Seed(seed uint64) *Session {
	s.ctx.rng = NewRng(seed)
	return s
}

// Shrink sets shrink mode and returns the session for chaining. In shrink
// mode every mutation moves the value toward some simplest form (zero,
// false, nil, and so on) and mutators report ErrExhausted once their value
// cannot get any simpler.
func (s *Session) Shrink(shrink bool) *Session {
	s.ctx.shrink = shrink
	return s
}

// Rng returns the session's random number generator. Drawing from it
// advances the same stream the engine draws from.
func (s *Session) Rng() *Rng {
	return &s.ctx.rng
}

// MutateWith applies one random mutation from m to *value. It returns
// ErrExhausted when m offers no candidate mutations for the current value,
// and passes through any other error m produces.
//
// It panics if m violates the Mutator contract: applying a mutation during
// the counting pass, swallowing the error that Candidates.Mutation returns,
// or registering a different number of candidates on the two passes.
func MutateWith[T any](s *Session, m Mutator[T], value *T) error {
	return s.choose(func(c *Candidates) error {
		return m.Mutate(c, value)
	})
}

// Mutate is MutateWith using the default mutator registered for T.
func Mutate[T any](s *Session, value *T) error {
	m, err := DefaultFor[T]()
	if err != nil {
		return err
	}
	return MutateWith(s, m, value)
}

// MutateInRangeWith applies one random mutation from m to *value while
// keeping it within [start, end]. See MutateWith for the error and panic
// behavior; additionally m is expected to return ErrInvalidRange when
// start > end.
func MutateInRangeWith[T any](s *Session, m RangeMutator[T], value *T, start, end T) error {
	return s.choose(func(c *Candidates) error {
		return m.MutateInRange(c, value, start, end)
	})
}

// GenerateWith produces a fresh value using g and this session's generator
// and shrink state.
func GenerateWith[T any](s *Session, g Generator[T]) (T, error) {
	return g.Generate(&s.ctx)
}

// choose runs the two-pass candidate selection protocol over visit.
func (s *Session) choose(visit func(c *Candidates) error) error {
	counting := Candidates{ctx: &s.ctx, pass: passCounting}
	if err := visit(&counting); err != nil {
		if err == errEarlyExit {
			panic("morph: mutator applied a mutation during the counting pass")
		}
		return err
	}

	if counting.count == 0 {
		return ErrExhausted
	}
	target, _ := s.ctx.rng.Index(counting.count)

	applying := Candidates{ctx: &s.ctx, pass: passApplying, target: target}
	err := visit(&applying)
	switch {
	case err == nil && applying.applied:
		panic("morph: mutator swallowed the early-exit error from Candidates.Mutation")
	case err == nil:
		panic(fmt.Sprintf("morph: non-deterministic mutator: counted %d candidates, then enumerated %d",
			counting.count, applying.current))
	case err == errEarlyExit:
		return nil
	default:
		return err
	}
}
