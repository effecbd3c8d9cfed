package dem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecdev/mwmatch/dem"
)

func TestBuild_Basic(t *testing.T) {
	model := []dem.Mechanism{
		{Probability: 0.1, Detectors: []int{0}, Observables: []int{0}},
		{Probability: 0.2, Detectors: []int{0, 1}, Observables: []int{1}},
		{Probability: 0.3, Detectors: []int{1, 2}, Observables: nil},
		{Probability: 0.4, Detectors: []int{2}, Observables: []int{0, 2}},
	}

	g, err := dem.Build(model)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumDetectors())
	assert.Equal(t, []int{3}, g.Boundary())
	assert.Equal(t, 3, g.NumFaultIDs())
	assert.Equal(t, 4, g.NumEdges())

	e, ok := g.Edge(0, 3)
	require.True(t, ok)
	assert.Equal(t, 0.1, e.ErrorProbability)
	assert.Equal(t, 1.0, e.Weight)

	e, ok = g.Edge(1, 2)
	require.True(t, ok)
	assert.Empty(t, e.FaultIDs)
	assert.Equal(t, 0.3, e.ErrorProbability)

	e, ok = g.Edge(2, 3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, e.SortedFaultIDs())
}

func TestBuild_NoBoundaryWithoutSingles(t *testing.T) {
	model := []dem.Mechanism{
		{Probability: 0.1, Detectors: []int{0, 1}},
		{Probability: 0.1, Detectors: []int{1, 2}},
	}
	g, err := dem.Build(model)
	require.NoError(t, err)
	assert.Empty(t, g.Boundary())
	assert.Equal(t, 3, g.NumNodes())
}

func TestBuild_LogLikelihoodWeights(t *testing.T) {
	model := []dem.Mechanism{
		{Probability: 0.1, Detectors: []int{0, 1}, Observables: []int{0}},
	}
	g, err := dem.Build(model, dem.WithLogLikelihoodWeights())
	require.NoError(t, err)

	e, ok := g.Edge(0, 1)
	require.True(t, ok)
	assert.InDelta(t, math.Log(9), e.Weight, 1e-12)

	// p on the closed boundary of [0,1] is fine without the policy but not
	// with it.
	degenerate := []dem.Mechanism{{Probability: 0, Detectors: []int{0, 1}}}
	_, err = dem.Build(degenerate)
	require.NoError(t, err)
	_, err = dem.Build(degenerate, dem.WithLogLikelihoodWeights())
	assert.ErrorIs(t, err, dem.ErrBadProbability)
}

func TestBuild_Validation(t *testing.T) {
	_, err := dem.Build(nil)
	assert.ErrorIs(t, err, dem.ErrEmptyModel)

	_, err = dem.Build([]dem.Mechanism{{Probability: 0.5, Detectors: nil}})
	assert.ErrorIs(t, err, dem.ErrDetectorCount)

	_, err = dem.Build([]dem.Mechanism{{Probability: 0.5, Detectors: []int{0, 1, 2}}})
	assert.ErrorIs(t, err, dem.ErrDetectorCount)

	_, err = dem.Build([]dem.Mechanism{{Probability: 0.5, Detectors: []int{1, 1}}})
	assert.ErrorIs(t, err, dem.ErrDetectorCount)

	_, err = dem.Build([]dem.Mechanism{{Probability: 1.5, Detectors: []int{0, 1}}})
	assert.ErrorIs(t, err, dem.ErrBadProbability)

	_, err = dem.Build([]dem.Mechanism{{Probability: 0.5, Detectors: []int{-1}}})
	assert.ErrorIs(t, err, dem.ErrBadDetector)
}

func TestBuild_MergeAndNumDetectors(t *testing.T) {
	model := []dem.Mechanism{
		{Probability: 0.1, Detectors: []int{0, 1}, Observables: []int{0}},
		{Probability: 0.2, Detectors: []int{1, 0}, Observables: []int{1}},
	}
	g, err := dem.Build(model, dem.WithNumDetectors(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumDetectors())
	assert.Equal(t, 1, g.NumEdges())
	e, _ := g.Edge(0, 1)
	assert.Equal(t, []int{0, 1}, e.SortedFaultIDs())
	assert.Equal(t, 0.2, e.ErrorProbability)
}
