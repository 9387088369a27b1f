package graph

import (
	"github.com/jithinanchanattu/infer/model/distribution"
)

// DefaultGroup is the group tag transitions receive unless a caller asks
// for another one.  Passing DefaultGroup to Append keeps the per-transition
// groups of the appended states.
const DefaultGroup = 0

// Transition is a weighted edge between two states of the same collection.
//
// Label is stored opaquely; the collection never combines distributions
// itself, it only transports them for the algorithms layered on top.
// Group partitions transitions for those algorithms (for example selective
// rewriting); beyond the Append override contract its meaning is theirs.
type Transition struct {
	// Dest indexes the destination state within the owning collection.
	Dest int
	// Label is the element distribution emitted when the transition is taken.
	Label distribution.Distribution
	// Weight is the nonnegative weight of the transition.
	Weight float64
	// Group tags the transition for algorithms outside this package.
	Group int
}
