// Package infer provides the storage substrate for weighted finite-state
// automata whose transitions are labeled with probability distributions
// over elements.
//
// The substrate is the indexed state arena in model/graph; everything a
// higher automaton algorithm may rely on is its Add / Remove / Append /
// SetTo / indexed-access / iteration contract.  The root package is a thin
// facade that builds configured automata:
//
//	a, err := infer.New(infer.WithMaxStates(10_000))
//	s, err := a.States().Add()
//	s.SetEndWeight(1.0)
//	a.Start().AddTransition(graph.Transition{
//		Dest:   s.Index(),
//		Label:  distribution.NewPointMass("a"),
//		Weight: 1.0,
//	})
//
// Label algebra (products, weighted sums, overlap queries) lives behind
// the distribution.Distribution capability; the arena stores labels
// opaquely and never combines them itself.
package infer
