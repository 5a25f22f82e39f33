package morph

type pass uint8

const (
	passCounting pass = iota
	passApplying
)

// Candidates collects the candidate mutations a mutator can perform on a
// value. A mutator's Mutate method does not decide which mutation runs; it
// only registers every mutation it could perform by calling Mutation, and
// the engine picks one uniformly at random.
//
// The engine invokes Mutate twice per mutation: once to count the
// candidates without running any of them, and once to run exactly the
// chosen one. Mutate must therefore be deterministic — it has to register
// the same candidates, in the same order, on both passes — and must
// propagate any error returned by Mutation without modification.
type Candidates struct {
	ctx *Context

	pass    pass
	count   int
	current int
	target  int
	applied bool
}

// Shrink reports whether the session is in shrink mode. Mutators use it to
// decide which candidates to register at all: in shrink mode a candidate
// that could grow the value's complexity must not be offered.
func (c *Candidates) Shrink() bool {
	return c.ctx.shrink
}

// Mutation registers one candidate mutation. The closure must perform the
// entire mutation when invoked; it runs at most once per engine call, and
// only during the second pass.
//
// Callers must return the result of Mutation to their own caller whenever
// it is non-nil. Swallowing it breaks the engine's bookkeeping and turns
// into a panic at the engine boundary.
func (c *Candidates) Mutation(f func(*Context) error) error {
	if c.pass == passCounting {
		c.count++
		return nil
	}
	idx := c.current
	c.current++
	if idx != c.target || c.applied {
		return nil
	}
	c.applied = true
	if err := f(c.ctx); err != nil {
		return err
	}
	return errEarlyExit
}
