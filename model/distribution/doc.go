// Package distribution defines the algebra a transition label must support
// and ships a finite (categorical) reference implementation of it.
//
// The graph substrate stores labels opaquely and never combines them; the
// operations below are what automaton algorithms (products, merges,
// overlap queries, smoothing) combine labels with.
package distribution
