package morph

import (
	"fmt"
	"reflect"
	"sync"
)

// defaultMutators maps a value type to a constructor for its registered
// default mutator. Constructors are stored type-erased; DefaultFor restores
// the type.
var defaultMutators = struct {
	sync.RWMutex
	m map[reflect.Type]func() any
}{m: make(map[reflect.Type]func() any)}

// RegisterDefault registers ctor as the source of default mutators for T,
// replacing any previous registration. The mutators subpackage registers
// defaults for the built-in types from its init function; importing it is
// enough to make Mutate work for those.
func RegisterDefault[T any](ctor func() Mutator[T]) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	defaultMutators.Lock()
	defer defaultMutators.Unlock()
	defaultMutators.m[t] = func() any { return ctor() }
}

// DefaultFor returns a default mutator for T, or an error if none has been
// registered.
func DefaultFor[T any]() (Mutator[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	defaultMutators.RLock()
	ctor, ok := defaultMutators.m[t]
	defaultMutators.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no default mutator registered for %v", t)
	}
	return ctor().(Mutator[T]), nil
}
