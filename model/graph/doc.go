// Package graph contains the mutable state storage for probabilistic
// automata: a densely indexed arena of states, each carrying an end-weight
// and an ordered list of distribution-labeled transitions.
//
// The state index is the state's identity.  All operations keep the index
// range 0..Count()-1 free of gaps; Remove renumbers surviving transition
// destinations so that they keep pointing at the same logical state.
//
// Handles issued by the collection (see State) borrow from the arena and
// stay valid only until the next operation that reindexes or clears it.
// Collections follow a single-owner mutation discipline: no internal
// synchronization is provided and concurrent mutation is not supported.
package graph
