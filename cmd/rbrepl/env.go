package main

import (
	"fmt"

	"github.com/npillmayer/rbset"
)

// environment is a table of named sets of integers. One of the sets is the
// current set, which is the target of all set commands.
type environment struct {
	sets    map[string]*rbset.Set[int64]
	names   *rbset.Set[string] // keeps names sorted for display
	current string
	opts    []rbset.Option // options for new sets
}

// defaultSet is the name of the set which is current at startup.
const defaultSet = "default"

// newEnvironment creates an environment with an empty default set.
func newEnvironment(opts ...rbset.Option) *environment {
	env := &environment{
		sets:  make(map[string]*rbset.Set[int64]),
		names: rbset.New[string](),
		opts:  opts,
	}
	env.define(defaultSet)
	env.current = defaultSet
	return env
}

// resolve finds a set by name. Returns nil for unknown names.
func (env *environment) resolve(name string) *rbset.Set[int64] {
	return env.sets[name]
}

// define creates a new empty set. The name may not be empty.
// Overwrites an existing set with this name, if any.
// Returns the new set and the previously stored set (or nil).
func (env *environment) define(name string) (*rbset.Set[int64], *rbset.Set[int64]) {
	if len(name) == 0 {
		return nil, nil
	}
	old := env.resolve(name)
	set := rbset.New[int64](env.opts...)
	env.sets[name] = set
	env.names.Insert(name)
	tracer().Debugf("defined set '%s'", name)
	return set, old
}

// use makes the set with the given name the current set.
func (env *environment) use(name string) error {
	if env.resolve(name) == nil {
		return fmt.Errorf("unknown set '%s'", name)
	}
	env.current = name
	return nil
}

// set returns the current set.
func (env *environment) set() *rbset.Set[int64] {
	return env.sets[env.current]
}

// each iterates over all sets in the order of their names.
func (env *environment) each(mapper func(string, *rbset.Set[int64])) {
	env.names.Each(func(name string) bool {
		mapper(name, env.sets[name])
		return true
	})
}
