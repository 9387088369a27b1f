package distribution

// Distribution is the capability required from an element distribution used
// as a transition label.  Implementations are immutable: every combinator
// returns a new value and leaves the receiver untouched.
//
// Mixing implementations over different element types in one automaton is a
// caller bug; combinators panic on an operand they cannot interpret.
type Distribution interface {
	// Product returns the unnormalized pointwise product of the receiver
	// and other, the label analogue of automaton intersection.
	Product(other Distribution) Distribution

	// WeightedSum returns weight*receiver + otherWeight*other.
	WeightedSum(weight float64, other Distribution, otherWeight float64) Distribution

	// LogAverageOf returns the log expected likelihood of drawing the same
	// element from the receiver and other, used for overlap queries.
	LogAverageOf(other Distribution) float64

	// PartiallyUniform redistributes fraction of the receiver's mass
	// uniformly over its support, keeping 1-fraction of the original shape.
	PartiallyUniform(fraction float64) Distribution
}
