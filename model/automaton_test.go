package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinanchanattu/infer/model/distribution"
	"github.com/jithinanchanattu/infer/model/graph"
)

func TestNewCreatesStartState(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID())
	assert.Equal(t, 0, a.StartIndex())
	assert.Equal(t, 1, a.States().Count())
	assert.Equal(t, 0, a.Start().Index())
}

func TestStartStateCannotBeRemoved(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	_, err = a.States().Add()
	require.NoError(t, err)

	assert.Panics(t, func() { a.States().Remove(a.StartIndex()) })
	assert.Equal(t, 2, a.States().Count())
}

// newAccepting builds an automaton whose start state reaches a single
// accepting state on element.
func newAccepting(t *testing.T, element string) *Automaton {
	t.Helper()
	a, err := New(0)
	require.NoError(t, err)
	next, err := a.States().Add()
	require.NoError(t, err)
	next.SetEndWeight(1.0)
	a.Start().AddTransition(graph.Transition{
		Dest:   next.Index(),
		Label:  distribution.NewPointMass(element),
		Weight: 1.0,
	})
	return a
}

func TestMergeReturnsRebasedStart(t *testing.T) {
	ctx := context.Background()
	a := newAccepting(t, "a")
	b := newAccepting(t, "b")

	base, err := a.Merge(ctx, b, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, base, "b's start state lands after a's two states")
	require.Equal(t, 4, a.States().Count())
	merged := a.States().At(base).Transitions()
	require.Len(t, merged, 1)
	assert.Equal(t, 3, merged[0].Dest)
	assert.Equal(t, 5, merged[0].Group)
	assert.Equal(t, 1.0, a.States().At(3).EndWeight())
	// The source automaton is untouched.
	assert.Equal(t, 2, b.States().Count())
}

func TestMergeCapacityLeavesAutomatonUnchanged(t *testing.T) {
	ctx := context.Background()
	a, err := New(2)
	require.NoError(t, err)
	b := newAccepting(t, "b")

	_, err = a.Merge(ctx, b, graph.DefaultGroup)

	var capacityErr *graph.CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 2, capacityErr.Limit)
	assert.Equal(t, 1, a.States().Count())
}

func TestReplaceWithAdoptsStart(t *testing.T) {
	ctx := context.Background()
	a := newAccepting(t, "a")
	b := newAccepting(t, "b")
	_, err := b.States().Add()
	require.NoError(t, err)

	require.NoError(t, a.ReplaceWith(ctx, b))

	assert.Equal(t, b.StartIndex(), a.StartIndex())
	assert.Equal(t, 3, a.States().Count())
	transitions := a.Start().Transitions()
	require.Len(t, transitions, 1)
	assert.Equal(t, 1, transitions[0].Dest)
}
