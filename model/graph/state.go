package graph

import (
	"fmt"
)

// StateData is the stored record of a single state: the weight of ending a
// sequence there plus its ordered outgoing transitions.  Transition order
// is observable (enumeration order is insertion order) and is preserved by
// every bulk operation.
type StateData struct {
	// EndWeight is the nonnegative weight of terminating at this state.
	EndWeight float64
	// Transitions lists the outgoing edges in insertion order.
	Transitions []Transition
}

// State is an ephemeral read/write view of one state within a collection.
// It borrows the underlying record for the duration of a single operation;
// Remove and SetTo reindex or clear the arena and Add and Append may
// relocate it as it grows, so do not retain a State across any of those
// calls.
type State struct {
	collection *StateCollection
	index      int
	data       *StateData
}

// Index returns the state's position within its collection.  The index is
// the state's identity; there is no separate id.
func (s State) Index() int {
	return s.index
}

// EndWeight returns the weight of ending a sequence at this state.
func (s State) EndWeight() float64 {
	return s.data.EndWeight
}

// SetEndWeight updates the end-weight in place.
func (s State) SetEndWeight(weight float64) {
	s.data.EndWeight = weight
}

// Transitions returns the live transition slice.  The slice aliases the
// collection's storage; treat it as borrowed for the current operation.
func (s State) Transitions() []Transition {
	return s.data.Transitions
}

// AddTransition appends an outgoing edge to this state.  The destination
// must be a valid index in the owning collection; a transition escaping
// the collection is a caller bug and panics.  Returns the handle so calls
// can be chained when building automata by hand.
func (s State) AddTransition(t Transition) State {
	if count := s.collection.Count(); t.Dest < 0 || t.Dest >= count {
		panic(fmt.Sprintf("graph: transition from state %d to %d escapes the collection (count=%d)", s.index, t.Dest, count))
	}
	s.data.Transitions = append(s.data.Transitions, t)
	return s
}
