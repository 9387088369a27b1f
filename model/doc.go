// Package model contains the in-memory representation of a probabilistic
// automaton: the Automaton owner record defined here plus the state arena
// and label algebra in the graph and distribution sub-packages.
package model
