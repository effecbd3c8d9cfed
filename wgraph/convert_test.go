package wgraph_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/qecdev/mwmatch/core"
	"github.com/qecdev/mwmatch/wgraph"
)

// chainGraph builds the 4-node chain with two boundary endpoints used by
// several conversion tests.
func chainGraph(t *testing.T) *simple.WeightedUndirectedGraph {
	t.Helper()
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := func(id int64, boundary bool) wgraph.Node { return wgraph.Node{NID: id, Boundary: boundary} }
	g.AddNode(n(0, true))
	g.AddNode(n(1, false))
	g.AddNode(n(2, false))
	g.AddNode(n(3, true))
	g.SetWeightedEdge(wgraph.Edge{F: n(0, true), T: n(1, false), W: 1.1, ErrProb: 0.1, Faults: []int{0}})
	g.SetWeightedEdge(wgraph.Edge{F: n(1, false), T: n(2, false), W: 2.1, ErrProb: 0.2, Faults: []int{1}})
	g.SetWeightedEdge(wgraph.Edge{F: n(2, false), T: n(3, true), W: 0.9, ErrProb: 0.3, Faults: []int{2, 3}})
	g.SetWeightedEdge(wgraph.Edge{F: n(0, true), T: n(3, true), W: 0.0, ErrProb: core.UnsetProbability})

	return g
}

func TestFromGraph_Attributes(t *testing.T) {
	m, err := wgraph.FromGraph(chainGraph(t))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, m.Boundary())
	assert.Equal(t, 2, m.NumDetectors())
	assert.Equal(t, 4, m.NumFaultIDs())

	es := m.Edges()
	require.Len(t, es, 4)
	assert.Equal(t, core.EdgeKey{U: 0, V: 1}, es[0].Key())
	assert.Equal(t, []int{0}, es[0].SortedFaultIDs())
	assert.Equal(t, 1.1, es[0].Weight)
	assert.Equal(t, 0.1, es[0].ErrorProbability)

	assert.Equal(t, core.EdgeKey{U: 0, V: 3}, es[1].Key())
	assert.Empty(t, es[1].FaultIDs)
	assert.Equal(t, 0.0, es[1].Weight)
	assert.Equal(t, core.UnsetProbability, es[1].ErrorProbability)

	assert.Equal(t, []int{2, 3}, es[3].SortedFaultIDs())
}

func TestFromGraph_QubitAlias(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := func(id int64) wgraph.Node { return wgraph.Node{NID: id} }
	g.SetWeightedEdge(wgraph.Edge{F: n(0), T: n(1), W: 1, ErrProb: core.UnsetProbability, Qubits: []int{0}})
	g.SetWeightedEdge(wgraph.Edge{F: n(1), T: n(2), W: 1, ErrProb: core.UnsetProbability, Qubits: []int{1, 2}})

	m, err := wgraph.FromGraph(g)
	require.NoError(t, err)
	es := m.Edges()
	require.Len(t, es, 2)
	assert.Equal(t, []int{0}, es[0].SortedFaultIDs())
	assert.Equal(t, []int{1, 2}, es[1].SortedFaultIDs())
}

func TestFromGraph_AliasConflict(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := func(id int64) wgraph.Node { return wgraph.Node{NID: id} }
	g.SetWeightedEdge(wgraph.Edge{F: n(0), T: n(1), W: 1, Faults: []int{0}, Qubits: []int{0}})

	_, err := wgraph.FromGraph(g)
	assert.ErrorIs(t, err, wgraph.ErrFaultAliasConflict)
}

func TestFromGraph_NoFaultSentinel(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := func(id int64) wgraph.Node { return wgraph.Node{NID: id} }
	g.SetWeightedEdge(wgraph.Edge{F: n(0), T: n(1), W: 10.0, ErrProb: core.UnsetProbability, Faults: []int{wgraph.NoFault}})

	m, err := wgraph.FromGraph(g)
	require.NoError(t, err)
	es := m.Edges()
	require.Len(t, es, 1)
	assert.Empty(t, es[0].FaultIDs)
	assert.Equal(t, 0, m.NumFaultIDs())

	g.SetWeightedEdge(wgraph.Edge{F: n(1), T: n(2), W: 1, Faults: []int{-7}})
	_, err = wgraph.FromGraph(g)
	assert.ErrorIs(t, err, wgraph.ErrBadFaultID)
}

func TestFromGraph_PlainEdgesDefault(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1.2})

	m, err := wgraph.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumDetectors())
	assert.Equal(t, 0, m.NumFaultIDs())
	es := m.Edges()
	require.Len(t, es, 2)
	assert.Equal(t, 1.5, es[0].Weight)
	assert.Equal(t, core.UnsetProbability, es[0].ErrorProbability)
}

func TestFromGraph_Nil(t *testing.T) {
	_, err := wgraph.FromGraph(nil)
	assert.ErrorIs(t, err, wgraph.ErrNilGraph)
}

func TestRoundTrip_Chain(t *testing.T) {
	m, err := wgraph.FromGraph(chainGraph(t))
	require.NoError(t, err)

	exported, err := wgraph.ToGraph(m)
	require.NoError(t, err)
	back, err := wgraph.FromGraph(exported)
	require.NoError(t, err)

	assert.Equal(t, m.Boundary(), back.Boundary())
	assert.Equal(t, m.NumNodes(), back.NumNodes())
	assert.Equal(t, m.Edges(), back.Edges())
}

// TestRoundTrip_Property checks, over randomly generated decoding graphs,
// that exporting through the gonum adapter and reconstructing yields an
// attribute-identical graph.
func TestRoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ToGraph/FromGraph round trip preserves attributes", prop.ForAll(
		func(us, vs []int, weights []float64, probs []float64, boundary []int) bool {
			n := len(us)
			if len(vs) < n {
				n = len(vs)
			}
			g := core.NewGraph()
			for i := 0; i < n; i++ {
				u, v := us[i], vs[i]
				if u == v {
					v++
				}
				opts := []core.EdgeOption{core.WithFaultIDs(i)}
				if i < len(weights) {
					opts = append(opts, core.WithWeight(weights[i]))
				}
				if i < len(probs) {
					opts = append(opts, core.WithErrorProbability(probs[i]))
				}
				if err := g.AddEdge(u, v, opts...); err != nil {
					return false
				}
			}
			bs := make([]int, 0, len(boundary))
			for _, b := range boundary {
				if b < g.NumNodes() {
					bs = append(bs, b)
				}
			}
			if err := g.SetBoundaryNodes(bs...); err != nil {
				return false
			}

			exported, err := wgraph.ToGraph(g)
			if err != nil {
				return false
			}
			back, err := wgraph.FromGraph(exported)
			if err != nil {
				return false
			}
			if back.NumNodes() != g.NumNodes() || len(back.Boundary()) != len(g.Boundary()) {
				return false
			}
			want, got := g.Edges(), back.Edges()
			if len(want) != len(got) {
				return false
			}
			for i := range want {
				if want[i].Key() != got[i].Key() ||
					want[i].Weight != got[i].Weight ||
					want[i].ErrorProbability != got[i].ErrorProbability ||
					len(want[i].FaultIDs) != len(got[i].FaultIDs) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 12)),
		gen.SliceOf(gen.IntRange(0, 12)),
		gen.SliceOf(gen.Float64Range(-10, 10)),
		gen.SliceOf(gen.Float64Range(0, 1)),
		gen.SliceOf(gen.IntRange(0, 12)),
	))

	properties.TestingRun(t)
}
