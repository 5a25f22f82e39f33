package morph

// Context carries the state a candidate mutation may draw on while it is
// being applied: the session's random number generator and the shrink flag.
// Mutation closures receive it from the engine; they must not retain it
// beyond the call.
type Context struct {
	rng    Rng
	shrink bool
}

// Rng returns the context's random number generator.
func (c *Context) Rng() *Rng {
	return &c.rng
}

// Shrink reports whether the session is in shrink mode, in which case
// mutations should only ever simplify the value (see Session.Shrink).
func (c *Context) Shrink() bool {
	return c.shrink
}
