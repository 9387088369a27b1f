package model

import (
	"context"
	"strconv"

	"github.com/jithinanchanattu/infer/internal/idgen"
	"github.com/jithinanchanattu/infer/model/graph"
	"github.com/jithinanchanattu/infer/tracing"
)

// Automaton is a weighted finite-state machine whose transitions are
// labeled with element distributions.  It owns one state collection and
// the distinguished start-state index; the collection consults the
// automaton (through graph.Owner) so the start state can never be removed.
//
// An automaton is mutable single-owner state: build it on one goroutine at
// a time and do not share it across goroutines while mutating.
type Automaton struct {
	id     string
	start  int
	states *graph.StateCollection
}

// New returns an automaton holding a single empty start state.  A
// maxStates value of zero or less selects graph.DefaultMaxStates.
func New(maxStates int) (*Automaton, error) {
	a := &Automaton{id: idgen.New()}
	a.states = graph.New(a, maxStates)
	start, err := a.states.Add()
	if err != nil {
		return nil, err
	}
	a.start = start.Index()
	return a, nil
}

// ID returns the automaton's opaque identifier.
func (a *Automaton) ID() string {
	return a.id
}

// StartIndex returns the start-state index.  It also satisfies graph.Owner.
func (a *Automaton) StartIndex() int {
	return a.start
}

// Start returns a handle for the start state.  Like every handle it is
// invalidated by operations that reindex or clear the collection.
func (a *Automaton) Start() graph.State {
	return a.states.At(a.start)
}

// States returns the owned state collection.
func (a *Automaton) States() *graph.StateCollection {
	return a.states
}

// Merge bulk-copies that automaton's states into this one without wiring
// them to any existing state and returns the index that automaton's start
// state received; the caller connects the new range afterwards.  A group
// other than graph.DefaultGroup is stamped onto every merged transition.
// On *graph.CapacityError the automaton is unchanged.
func (a *Automaton) Merge(ctx context.Context, that *Automaton, group int) (int, error) {
	_, span := tracing.StartSpan(ctx, "automaton.merge")
	span.WithAttributes(map[string]string{
		"automaton.id":       a.id,
		"automaton.merge.id": that.id,
		"automaton.group":    strconv.Itoa(group),
	})
	base := a.states.Count()
	err := a.states.Append(that.states.Handles(), group)
	span.WithCount("automaton.states", a.states.Count())
	tracing.EndSpan(span, err)
	if err != nil {
		return 0, err
	}
	return base + that.start, nil
}

// ReplaceWith discards this automaton's states and repopulates it as a
// copy of that, adopting that automaton's start index.  All previously
// issued handles become invalid.  On *graph.CapacityError the automaton is
// unchanged.
func (a *Automaton) ReplaceWith(ctx context.Context, that *Automaton) error {
	_, span := tracing.StartSpan(ctx, "automaton.replace")
	span.WithAttributes(map[string]string{
		"automaton.id":         a.id,
		"automaton.replace.id": that.id,
	})
	err := a.states.SetTo(that.states)
	span.WithCount("automaton.states", a.states.Count())
	tracing.EndSpan(span, err)
	if err != nil {
		return err
	}
	a.start = that.start
	return nil
}
