package interp

import "sort"

// Env is the single global variable namespace for one script run. It is
// created empty per run, mutated only by assignments, and never scoped or
// shadowed. Passing it explicitly keeps the interpreter re-entrant.
type Env map[string]int64

// NewEnv returns an empty environment.
func NewEnv() Env {
	return make(Env)
}

// Set binds or overwrites a variable. First definition and reassignment are
// the same operation.
func (e Env) Set(name string, value int64) {
	e[name] = value
}

// Lookup returns the value bound to name and whether it exists.
func (e Env) Lookup(name string) (int64, bool) {
	value, ok := e[name]
	return value, ok
}

// Names returns all bound variable names in sorted order.
func (e Env) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
