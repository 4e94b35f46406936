package automata

import "github.com/enetx/g"

// Stepper is the runtime surface of a configured Machine: the operations a
// consumer needs to drive it once states and transitions are in place.
type Stepper[S, I comparable] interface {
	Reset(S)
	Step(I)
	Current() g.Option[S]
	States() g.Slice[S]
}

// Interface compliance check.
var _ Stepper[g.String, rune] = (*Machine[g.String, rune])(nil)
