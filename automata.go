// Package automata provides a generic, table-driven finite state machine
// keyed by caller-supplied state and input types. Transitions carry opaque
// actions, invalid operations are routed to a required fallback action, and
// all operations on a machine are serialized behind one exclusive lock. It is
// built with types from the github.com/enetx/g library.
package automata

import "github.com/enetx/g"

// New creates a Machine with the given fallback action. The fallback is
// invoked whenever a requested operation is invalid: an undeclared state
// passed to AddTransition or Reset, or a Step with no matching table entry.
// It is the machine's only error-reporting channel; no operation returns an
// error. New panics if fallback is nil.
func New[S, I comparable](fallback Action) *Machine[S, I] {
	if fallback == nil {
		panic("automata: nil fallback action")
	}

	return &Machine[S, I]{
		states:   g.NewSet[S](),
		table:    g.NewMap[g.Pair[S, I], transition[S]](),
		current:  g.None[S](),
		fallback: fallback,
	}
}

// AddState declares one or more states, making them usable as transition
// endpoints and reset targets. Re-declaring a known state is a no-op.
func (m *Machine[S, I]) AddState(states ...S) *Machine[S, I] {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range states {
		m.states.Insert(s)
	}

	return m
}

// SetFallback replaces the fallback action installed by New.
// It panics if action is nil.
func (m *Machine[S, I]) SetFallback(action Action) *Machine[S, I] {
	if action == nil {
		panic("automata: nil fallback action")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.fallback = action
	return m
}

// AddTransition registers the rule (from, input) -> (to, action). Both from
// and to must already be declared via AddState; if either is not, no rule is
// added and the fallback runs once. Registering a second rule for the same
// (from, input) pair overwrites the first: the last registration wins.
// AddTransition panics if action is nil.
func (m *Machine[S, I]) AddTransition(from, to S, input I, action Action) *Machine[S, I] {
	if action == nil {
		panic("automata: nil transition action")
	}

	m.mu.Lock()

	var fb Action

	switch {
	case !m.states.Contains(from):
		fb = m.fallback
	case !m.states.Contains(to):
		fb = m.fallback
	default:
		m.table.Set(g.Pair[S, I]{Key: from, Value: input}, transition[S]{to: to, action: action})
	}

	m.mu.Unlock()

	if fb != nil {
		fb()
	}

	return m
}

// Reset sets the current state to target directly, without running any
// action. If target has not been declared, the current state is left
// unchanged and the fallback runs once. A machine accepts Step calls only
// after its first successful Reset.
func (m *Machine[S, I]) Reset(target S) {
	m.mu.Lock()

	if !m.states.Contains(target) {
		fb := m.fallback
		m.mu.Unlock()
		fb()
		return
	}

	m.current = g.Some(target)
	m.mu.Unlock()
}

// Current returns the machine's current state, or None if the machine has
// not yet been reset.
func (m *Machine[S, I]) Current() g.Option[S] {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// States returns a snapshot of all declared states, in no particular order.
func (m *Machine[S, I]) States() g.Slice[S] {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.states.ToSlice()
}

// Step feeds the machine one input. If the table holds an entry for the
// (current state, input) pair, the current state is first set to the entry's
// destination and the entry's action then runs, so an action that queries
// Current observes the machine already in its new state. If there is no
// entry, or the machine has not been reset, the current state is left
// unchanged and the fallback runs once. Step never reports an error: an
// unrecognized input is absorbed by the fallback.
//
// The transition is committed under the machine's lock; the action runs
// after the lock is released. Under concurrent use the state may therefore
// have moved again by the time the action observes it, but the order in
// which Steps commit is exactly the order in which they acquire the lock.
func (m *Machine[S, I]) Step(input I) {
	m.mu.Lock()

	act := m.fallback

	if m.current.IsSome() {
		if entry := m.table.Get(g.Pair[S, I]{Key: m.current.Some(), Value: input}); entry.IsSome() {
			t := entry.Some()
			m.current = g.Some(t.to)
			act = t.action
		}
	}

	m.mu.Unlock()
	act()
}
