package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoricalDropsNonPositiveWeights(t *testing.T) {
	c := NewCategorical(map[string]float64{"a": 0.5, "b": 0, "c": -1})
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0.5, c.Weight("a"))
	assert.Equal(t, 0.0, c.Weight("b"))
}

func TestPointMass(t *testing.T) {
	c := NewPointMass("a")
	assert.Equal(t, 1.0, c.Weight("a"))
	assert.Equal(t, 0.0, c.Weight("b"))
	assert.Equal(t, 1.0, c.Total())
}

func TestProductIntersectsSupport(t *testing.T) {
	left := NewCategorical(map[string]float64{"a": 0.5, "b": 0.5})
	right := NewCategorical(map[string]float64{"b": 0.4, "c": 0.6})

	product, ok := left.Product(right).(*Categorical[string])
	require.True(t, ok)
	assert.Equal(t, 1, product.Len())
	assert.InDelta(t, 0.2, product.Weight("b"), 1e-12)
}

func TestWeightedSum(t *testing.T) {
	left := NewPointMass("a")
	right := NewPointMass("b")

	sum, ok := left.WeightedSum(0.25, right, 0.75).(*Categorical[string])
	require.True(t, ok)
	assert.InDelta(t, 0.25, sum.Weight("a"), 1e-12)
	assert.InDelta(t, 0.75, sum.Weight("b"), 1e-12)
	assert.InDelta(t, 1.0, sum.Total(), 1e-12)
}

func TestLogAverageOf(t *testing.T) {
	left := NewCategorical(map[string]float64{"a": 0.5, "b": 0.5})
	right := NewCategorical(map[string]float64{"a": 0.5, "b": 0.5})

	// Overlap of two fair coins: log(0.25 + 0.25).
	assert.InDelta(t, math.Log(0.5), left.LogAverageOf(right), 1e-12)
}

func TestLogAverageOfDisjointSupport(t *testing.T) {
	left := NewPointMass("a")
	right := NewPointMass("b")
	assert.True(t, math.IsInf(left.LogAverageOf(right), -1))
}

func TestPartiallyUniform(t *testing.T) {
	c := NewCategorical(map[string]float64{"a": 0.8, "b": 0.2})

	mixed, ok := c.PartiallyUniform(0.5).(*Categorical[string])
	require.True(t, ok)
	// Half the original shape plus half a uniform over {a, b}.
	assert.InDelta(t, 0.65, mixed.Weight("a"), 1e-12)
	assert.InDelta(t, 0.35, mixed.Weight("b"), 1e-12)
	assert.InDelta(t, 1.0, mixed.Total(), 1e-12)
}

func TestMixedElementTypesPanic(t *testing.T) {
	left := NewPointMass("a")
	right := NewPointMass(1)
	assert.Panics(t, func() { left.Product(right) })
}
