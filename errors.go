package morph

import "errors"

// ErrExhausted reports that a mutator had no candidate mutations to offer
// for the current value. It is recoverable: callers driving a fuzzing or
// shrinking loop typically move on to another value when they see it.
var ErrExhausted = errors.New("mutator exhausted, no further mutations for this value")

// ErrInvalidRange reports that a ranged mutation was asked to draw from an
// empty range (start > end). Unlike ErrExhausted it always indicates a bug
// in the caller and should be surfaced, never swallowed.
var ErrInvalidRange = errors.New("invalid range: start is greater than end")

// errEarlyExit is the internal signal that a candidate mutation was applied
// and the rest of the traversal should unwind. Mutators must propagate
// errors from Candidates.Mutation unmodified so the engine can observe it;
// it never escapes the public API.
var errEarlyExit = errors.New("mutation applied, exiting traversal early")

// IgnoreExhausted filters out ErrExhausted, returning nil in its place and
// any other error unchanged.
func IgnoreExhausted(err error) error {
	if errors.Is(err, ErrExhausted) {
		return nil
	}
	return err
}
