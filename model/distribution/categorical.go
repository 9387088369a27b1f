package distribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Categorical is a finite distribution over elements of type E, stored as
// explicit element weights.  Weights need not sum to one; several
// combinators (Product in particular) deliberately produce unnormalized
// mass that downstream algorithms renormalize.
type Categorical[E comparable] struct {
	weights map[E]float64
}

// NewCategorical returns a categorical distribution over the supplied
// weights.  The map is copied; entries with nonpositive weight are dropped.
func NewCategorical[E comparable](weights map[E]float64) *Categorical[E] {
	result := &Categorical[E]{weights: make(map[E]float64, len(weights))}
	for element, weight := range weights {
		if weight > 0 {
			result.weights[element] = weight
		}
	}
	return result
}

// NewPointMass returns the distribution putting all mass on element.
func NewPointMass[E comparable](element E) *Categorical[E] {
	return &Categorical[E]{weights: map[E]float64{element: 1}}
}

// Weight returns the mass assigned to element, zero when outside the support.
func (c *Categorical[E]) Weight(element E) float64 {
	return c.weights[element]
}

// Total returns the summed mass over the support.
func (c *Categorical[E]) Total() float64 {
	var total float64
	for _, weight := range c.weights {
		total += weight
	}
	return total
}

// Len returns the support size.
func (c *Categorical[E]) Len() int {
	return len(c.weights)
}

// Product implements Distribution.
func (c *Categorical[E]) Product(other Distribution) Distribution {
	o := sameElementType[E](other, "product")
	result := &Categorical[E]{weights: map[E]float64{}}
	for element, weight := range c.weights {
		if otherWeight, ok := o.weights[element]; ok {
			result.weights[element] = weight * otherWeight
		}
	}
	return result
}

// WeightedSum implements Distribution.
func (c *Categorical[E]) WeightedSum(weight float64, other Distribution, otherWeight float64) Distribution {
	o := sameElementType[E](other, "weighted sum")
	result := &Categorical[E]{weights: make(map[E]float64, len(c.weights)+len(o.weights))}
	for element, mass := range c.weights {
		result.weights[element] = weight * mass
	}
	for element, mass := range o.weights {
		result.weights[element] += otherWeight * mass
	}
	return result
}

// LogAverageOf implements Distribution.  The overlap is accumulated in the
// log domain so that near-zero masses do not underflow.
func (c *Categorical[E]) LogAverageOf(other Distribution) float64 {
	o := sameElementType[E](other, "log average")
	logTerms := make([]float64, 0, len(c.weights))
	for element, weight := range c.weights {
		if otherWeight := o.weights[element]; otherWeight > 0 {
			logTerms = append(logTerms, math.Log(weight)+math.Log(otherWeight))
		}
	}
	if len(logTerms) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(logTerms)
}

// PartiallyUniform implements Distribution.
func (c *Categorical[E]) PartiallyUniform(fraction float64) Distribution {
	result := &Categorical[E]{weights: make(map[E]float64, len(c.weights))}
	if len(c.weights) == 0 {
		return result
	}
	uniform := fraction * c.Total() / float64(len(c.weights))
	for element, weight := range c.weights {
		result.weights[element] = (1-fraction)*weight + uniform
	}
	return result
}

func sameElementType[E comparable](d Distribution, op string) *Categorical[E] {
	o, ok := d.(*Categorical[E])
	if !ok {
		panic(fmt.Sprintf("distribution: %s of a categorical and %T is undefined", op, d))
	}
	return o
}
