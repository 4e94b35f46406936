package automata

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// Action is an opaque, zero-argument callable invoked after a successful
	// transition, or as the fallback whenever a requested operation is invalid.
	// The machine holds a reference to the action and never inspects it.
	Action func()

	// transition is the target half of a table entry: the destination state
	// and the action to run once the machine has moved there.
	transition[S comparable] struct {
		to     S
		action Action
	}

	// Machine is a table-driven finite state machine over caller-supplied
	// state and input types. The transition table maps a (state, input) pair
	// to a (next state, action) pair; states must be declared before they can
	// appear in a transition or a reset.
	//
	// Every operation is serialized behind a single exclusive lock, so one
	// Machine instance is safe for use from multiple goroutines.
	Machine[S, I comparable] struct {
		states   g.Set[S]
		table    g.Map[g.Pair[S, I], transition[S]]
		current  g.Option[S]
		fallback Action

		mu sync.Mutex
	}
)
