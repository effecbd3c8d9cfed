package mwmatch

import (
	"fmt"
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/qecdev/mwmatch/checkmatrix"
	"github.com/qecdev/mwmatch/core"
	"github.com/qecdev/mwmatch/decode"
	"github.com/qecdev/mwmatch/dem"
	"github.com/qecdev/mwmatch/matcher"
	"github.com/qecdev/mwmatch/noise"
	"github.com/qecdev/mwmatch/wgraph"
)

// Option configures a Matching.
type Option func(*Matching)

// WithOracle replaces the default exact oracle with a custom solver, for
// instance a blossom-based implementation scaling past matcher.MaxDefects.
func WithOracle(o decode.Oracle) Option {
	return func(m *Matching) {
		if o != nil {
			m.oracle = o
		}
	}
}

// WithNoiseSource sets the random source used by AddNoise. Nil (the
// default) draws from the shared global source.
func WithNoiseSource(src rand.Source) Option {
	return func(m *Matching) { m.sampler = noise.New(noise.WithSource(src)) }
}

// Matching bundles a decoding graph with a matching oracle and a noise
// sampler. Construct it with New (or FromCheckMatrix); it starts with an
// empty graph, populated through AddEdge or one of the Load methods.
type Matching struct {
	g       *core.Graph
	oracle  decode.Oracle
	sampler *noise.Sampler
}

// New returns an empty Matching backed by the reference oracle.
func New(opts ...Option) *Matching {
	m := &Matching{
		g:       core.NewGraph(),
		oracle:  matcher.New(),
		sampler: noise.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// FromCheckMatrix builds a Matching directly from a binary check matrix,
// backed by the reference oracle. See checkmatrix.Build for the
// construction rules and options.
func FromCheckMatrix(h mat.Matrix, opts ...checkmatrix.Option) (*Matching, error) {
	m := New()
	if err := m.LoadFromCheckMatrix(h, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadFromCheckMatrix replaces the decoding graph with one built from the
// binary check matrix h. The graph is untouched when the build fails.
func (m *Matching) LoadFromCheckMatrix(h mat.Matrix, opts ...checkmatrix.Option) error {
	g, err := checkmatrix.Build(h, opts...)
	if err != nil {
		return err
	}
	m.g = g

	return nil
}

// LoadFromRows is LoadFromCheckMatrix for a row-major binary matrix.
func (m *Matching) LoadFromRows(rows [][]uint8, opts ...checkmatrix.Option) error {
	g, err := checkmatrix.BuildRows(rows, opts...)
	if err != nil {
		return err
	}
	m.g = g

	return nil
}

// LoadFromGraph replaces the decoding graph with one adapted from a general
// weighted undirected graph; see wgraph.FromGraph for attribute probing.
func (m *Matching) LoadFromGraph(src wgraph.Source) error {
	g, err := wgraph.FromGraph(src)
	if err != nil {
		return err
	}
	m.g = g

	return nil
}

// LoadFromDetectorErrorModel replaces the decoding graph with one built
// from a list of independent error mechanisms; see dem.Build.
func (m *Matching) LoadFromDetectorErrorModel(model []dem.Mechanism, opts ...dem.Option) error {
	g, err := dem.Build(model, opts...)
	if err != nil {
		return err
	}
	m.g = g

	return nil
}

// AddEdge inserts or merges the edge {u,v}; see core.Graph.AddEdge.
func (m *Matching) AddEdge(u, v int, opts ...core.EdgeOption) error {
	return m.g.AddEdge(u, v, opts...)
}

// SetBoundaryNodes replaces the boundary set; see core.Graph.SetBoundaryNodes.
func (m *Matching) SetBoundaryNodes(nodes ...int) error {
	return m.g.SetBoundaryNodes(nodes...)
}

// Graph exposes the underlying decoding graph.
func (m *Matching) Graph() *core.Graph { return m.g }

// ToGraph exports the decoding graph as a gonum weighted undirected graph
// whose edges carry the attribute record; see wgraph.ToGraph.
func (m *Matching) ToGraph() (*simple.WeightedUndirectedGraph, error) {
	return wgraph.ToGraph(m.g)
}

// Edges returns all edges in canonical order.
func (m *Matching) Edges() []core.Edge { return m.g.Edges() }

// Boundary returns the boundary node ids in ascending order.
func (m *Matching) Boundary() []int { return m.g.Boundary() }

// NumNodes returns the total node count.
func (m *Matching) NumNodes() int { return m.g.NumNodes() }

// NumDetectors returns the non-boundary node count.
func (m *Matching) NumDetectors() int { return m.g.NumDetectors() }

// NumEdges returns the edge count.
func (m *Matching) NumEdges() int { return m.g.NumEdges() }

// NumFaultIDs returns 1 + the largest fault id present.
func (m *Matching) NumFaultIDs() int { return m.g.NumFaultIDs() }

// Decode returns the fault correction for the syndrome.
func (m *Matching) Decode(syndrome []uint8) ([]uint8, error) {
	d, err := decode.New(m.g, m.oracle)
	if err != nil {
		return nil, err
	}

	return d.Decode(syndrome)
}

// DecodeWeighted returns the correction together with the true (possibly
// negative) total weight of the selected edges.
func (m *Matching) DecodeWeighted(syndrome []uint8) ([]uint8, float64, error) {
	d, err := decode.New(m.g, m.oracle)
	if err != nil {
		return nil, 0, err
	}

	return d.DecodeWeighted(syndrome)
}

// AddNoise samples one Bernoulli error configuration from the graph's edge
// probabilities, returning the noise vector and its syndrome.
func (m *Matching) AddNoise() (noiseVec, syndrome []uint8, err error) {
	return m.sampler.Sample(m.g)
}

// String renders a short human-readable summary.
func (m *Matching) String() string {
	return fmt.Sprintf("<mwmatch.Matching with %d detectors, %d boundary nodes, and %d edges>",
		m.g.NumDetectors(), len(m.g.Boundary()), m.g.NumEdges())
}
