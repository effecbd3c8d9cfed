// Package decode turns syndromes into fault corrections by driving an
// external minimum-weight perfect-matching oracle over a decoding graph.
//
// The decoder owns everything around the oracle: it validates the syndrome,
// applies the negative-weight rewrite (negweight package), augments the
// solver graph with a single unlimited-capacity virtual vertex joined to
// every boundary node by zero-weight edges, maps the oracle's answer back
// through the rewrite, and accumulates the selected edges' fault ids into
// the correction vector.
//
// Errors:
//
//   - ErrNilGraph, ErrNilOracle: missing collaborators.
//   - ErrSyndromeLength: syndrome length is neither NumDetectors nor NumNodes.
//   - ErrSyndromeValue: a syndrome entry other than 0 or 1.
//   - ErrOddParity: an odd defect count with no boundary node to absorb it.
package decode

import (
	"errors"
	"fmt"

	"github.com/qecdev/mwmatch/core"
	"github.com/qecdev/mwmatch/negweight"
)

// Sentinel errors for decoding.
var (
	// ErrNilGraph indicates a nil decoding graph.
	ErrNilGraph = errors.New("decode: graph is nil")

	// ErrNilOracle indicates a nil matching oracle.
	ErrNilOracle = errors.New("decode: oracle is nil")

	// ErrSyndromeLength indicates a syndrome whose length matches neither
	// the detector count nor the node count.
	ErrSyndromeLength = errors.New("decode: syndrome has wrong length")

	// ErrSyndromeValue indicates a syndrome entry other than 0 or 1.
	ErrSyndromeValue = errors.New("decode: syndrome entries must be 0 or 1")

	// ErrOddParity indicates an odd number of defects on a graph without a
	// boundary node; no perfect matching can satisfy the parity.
	ErrOddParity = errors.New("decode: odd number of defects and no boundary node")
)

// Result is an oracle answer: the graph edges forming the matching (edges on
// shared path segments cancel pairwise) and their total weight.
type Result struct {
	Edges  []core.EdgeKey
	Weight float64
}

// Oracle is the external solver contract. The graph has nonnegative edge
// weights and the listed defect vertices must be perfectly matched, through
// paths in the graph. virtual, when >= 0, names an unlimited-capacity
// vertex: any number of defects may match against it independently.
// virtual < 0 means no such vertex exists. Implementations must be exact
// and deterministic for a fixed input.
type Oracle interface {
	Solve(g *core.Graph, defects []int, virtual int) (Result, error)
}

// Decoder decodes syndromes against one decoding graph using one oracle.
// It never mutates the graph; a Decoder is safe for concurrent use once the
// graph is no longer mutated.
type Decoder struct {
	g      *core.Graph
	oracle Oracle
}

// New returns a Decoder over g backed by the given oracle.
func New(g *core.Graph, oracle Oracle) (*Decoder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}

	return &Decoder{g: g, oracle: oracle}, nil
}

// Decode returns the fault correction for the syndrome: entry f is 1 when
// an odd number of selected edges carry fault id f.
func (d *Decoder) Decode(syndrome []uint8) ([]uint8, error) {
	correction, _, err := d.DecodeWeighted(syndrome)

	return correction, err
}

// DecodeWeighted additionally returns the true total weight of the selected
// edges. The weight may be negative: forced negative edges contribute their
// full weight even when no defect touches them.
//
// The syndrome is indexed by node id and must have length NumDetectors or
// NumNodes; bits on boundary nodes are ignored.
func (d *Decoder) DecodeWeighted(syndrome []uint8) ([]uint8, float64, error) {
	defects, err := d.defects(syndrome)
	if err != nil {
		return nil, 0, err
	}

	rw := negweight.Apply(d.g)
	defects = dropBoundary(d.g, rw.AdjustDefects(defects))

	boundary := d.g.Boundary()
	if len(defects)%2 == 1 && len(boundary) == 0 {
		return nil, 0, fmt.Errorf("%w: %d defects", ErrOddParity, len(defects))
	}

	// The solver sees the rewritten graph plus, when a boundary exists, a
	// virtual vertex joined to every boundary node at zero weight.
	solverGraph := rw.Graph
	virtual := -1
	if len(boundary) > 0 {
		solverGraph = rw.Graph.Clone()
		virtual = d.g.NumNodes()
		for _, b := range boundary {
			if err = solverGraph.AddEdge(b, virtual, core.WithWeight(0)); err != nil {
				return nil, 0, err
			}
		}
	}

	res, err := d.oracle.Solve(solverGraph, defects, virtual)
	if err != nil {
		return nil, 0, err
	}

	chosen := res.Edges
	if virtual >= 0 {
		chosen = dropVirtual(chosen, virtual)
	}
	edges, weight := rw.Restore(chosen, res.Weight)

	correction := make([]uint8, d.g.NumFaultIDs())
	for _, k := range edges {
		e, ok := d.g.Edge(k.U, k.V)
		if !ok {
			continue
		}
		for f := range e.FaultIDs {
			correction[f] ^= 1
		}
	}

	return correction, weight, nil
}

// defects validates the syndrome and lists the defect node ids.
func (d *Decoder) defects(syndrome []uint8) ([]int, error) {
	n, det := d.g.NumNodes(), d.g.NumDetectors()
	if len(syndrome) != det && len(syndrome) != n {
		return nil, fmt.Errorf("%w: got %d, want %d or %d", ErrSyndromeLength, len(syndrome), det, n)
	}

	var defects []int
	for i, bit := range syndrome {
		switch bit {
		case 0:
		case 1:
			if !d.g.IsBoundary(i) {
				defects = append(defects, i)
			}
		default:
			return nil, fmt.Errorf("%w: entry %d is %d", ErrSyndromeValue, i, bit)
		}
	}

	return defects, nil
}

// dropBoundary removes boundary node ids; boundary parity is absorbed by
// the boundary's unlimited capacity.
func dropBoundary(g *core.Graph, nodes []int) []int {
	out := nodes[:0]
	for _, n := range nodes {
		if !g.IsBoundary(n) {
			out = append(out, n)
		}
	}

	return out
}

// dropVirtual removes the zero-weight virtual edges from an oracle answer.
func dropVirtual(edges []core.EdgeKey, virtual int) []core.EdgeKey {
	out := make([]core.EdgeKey, 0, len(edges))
	for _, k := range edges {
		if k.U != virtual && k.V != virtual {
			out = append(out, k)
		}
	}

	return out
}
