package graph

import (
	"fmt"
	"iter"
	"slices"
)

// DefaultMaxStates bounds collections created without an explicit limit.
// The ceiling is a safety valve against runaway construction (repeated
// products, closures), not a tuning knob.
const DefaultMaxStates = 1 << 20

// Owner supplies the collection's external context: the automaton holding
// the distinguished start state, which Remove must never delete.
type Owner interface {
	StartIndex() int
}

// StateCollection owns a densely indexed, growable arena of StateData and
// is the sole entry point for creating, removing and bulk-copying states.
// States are identified by position: after every operation the valid
// indices form the gap-free range 0..Count()-1 and every transition
// destination falls inside it.
type StateCollection struct {
	owner  Owner
	limit  int
	states []StateData
}

// New returns an empty collection owned by owner.  A maxStates value of
// zero or less selects DefaultMaxStates.
func New(owner Owner, maxStates int) *StateCollection {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	return &StateCollection{owner: owner, limit: maxStates}
}

// Count returns the current number of states.
func (c *StateCollection) Count() int {
	return len(c.states)
}

// Limit returns the configured maximum state count.
func (c *StateCollection) Limit() int {
	return c.limit
}

// At returns a handle for the state at index.  The index must be within
// 0..Count()-1; out-of-range access is a caller bug and panics.
func (c *StateCollection) At(index int) State {
	if index < 0 || index >= len(c.states) {
		panic(fmt.Sprintf("graph: state index %d out of range (count=%d)", index, len(c.states)))
	}
	return State{collection: c, index: index, data: &c.states[index]}
}

// Add creates a state with zero end-weight and no transitions at index
// Count() and returns its handle.  When the collection already holds the
// configured maximum it fails with *CapacityError and stays unchanged.
// Indices assigned by successive Add calls are consecutive; algorithms may
// rely on that numbering and nothing else.
func (c *StateCollection) Add() (State, error) {
	if len(c.states) >= c.limit {
		return State{}, &CapacityError{Limit: c.limit}
	}
	c.states = append(c.states, StateData{})
	return c.At(len(c.states) - 1), nil
}

// Remove deletes the state at index and shifts all higher states down by
// one so the range stays dense.  Transitions targeting the removed state
// are dropped; destinations above it are decremented so they keep naming
// the same logical state.  Removing an invalid index or the owner's start
// state is a caller bug and panics, leaving the collection unchanged.
//
// The renumbering rescans every remaining transition.  Removal sits on no
// hot path, so the linear cost is accepted.
func (c *StateCollection) Remove(index int) {
	if index < 0 || index >= len(c.states) {
		panic(fmt.Sprintf("graph: state index %d out of range (count=%d)", index, len(c.states)))
	}
	if c.owner != nil && index == c.owner.StartIndex() {
		panic(fmt.Sprintf("graph: cannot remove start state %d", index))
	}
	c.states = append(c.states[:index], c.states[index+1:]...)
	for i := range c.states {
		kept := c.states[i].Transitions[:0]
		for _, t := range c.states[i].Transitions {
			if t.Dest == index {
				continue
			}
			if t.Dest > index {
				t.Dest--
			}
			kept = append(kept, t)
		}
		c.states[i].Transitions = kept
	}
}

// Append bulk-copies statesToAdd into the collection without wiring them
// to any existing state; connecting the new range is the caller's job.
//
// The input must be self-consistent: every transition among the appended
// states has to target an index within 0..len(statesToAdd)-1.  A
// transition escaping that range is an internal-consistency bug and
// panics.  Destinations are rebased by the collection's prior Count, so
// the appended range is the input fragment shifted as a block.
//
// A group of DefaultGroup keeps each appended transition's own group;
// any other value overrides the group of every appended transition.
//
// Capacity is checked for the whole batch before any mutation: on
// *CapacityError the collection is unchanged.
func (c *StateCollection) Append(statesToAdd []State, group int) error {
	for i, state := range statesToAdd {
		for _, t := range state.Transitions() {
			if t.Dest < 0 || t.Dest >= len(statesToAdd) {
				panic(fmt.Sprintf("graph: appended state %d targets %d outside the appended range [0..%d)", i, t.Dest, len(statesToAdd)))
			}
		}
	}
	if len(c.states)+len(statesToAdd) > c.limit {
		return &CapacityError{Limit: c.limit}
	}
	startIndex := len(c.states)
	c.states = slices.Grow(c.states, len(statesToAdd))
	for _, state := range statesToAdd {
		added, err := c.Add()
		if err != nil {
			return err
		}
		added.SetEndWeight(state.EndWeight())
	}
	for i, state := range statesToAdd {
		data := &c.states[startIndex+i]
		for _, t := range state.Transitions() {
			t.Dest += startIndex
			if group != DefaultGroup {
				t.Group = group
			}
			data.Transitions = append(data.Transitions, t)
		}
	}
	return nil
}

// SetTo discards every state and transition and repopulates the collection
// as a copy of that, invalidating all previously issued handles.  The
// result is indistinguishable from a freshly constructed collection
// populated solely via Append(that.Handles(), DefaultGroup).  When that
// exceeds this collection's limit, SetTo fails with *CapacityError and
// leaves the collection unchanged.
func (c *StateCollection) SetTo(that *StateCollection) error {
	if that.Count() > c.limit {
		return &CapacityError{Limit: c.limit}
	}
	states := that.Handles()
	c.states = nil
	return c.Append(states, DefaultGroup)
}

// Handles materializes a handle per state in index order, in the shape
// Append consumes.
func (c *StateCollection) Handles() []State {
	states := make([]State, 0, len(c.states))
	for i := range c.states {
		states = append(states, c.At(i))
	}
	return states
}

// All returns the states in index order.  Handles are bound to the arena
// lazily as the sequence is consumed, so finish or abandon the walk before
// mutating the collection; re-iterating after Remove or SetTo yields
// handles to the renumbered storage, not the states seen previously.
func (c *StateCollection) All() iter.Seq[State] {
	return func(yield func(State) bool) {
		for i := range c.states {
			if !yield(c.At(i)) {
				return
			}
		}
	}
}
