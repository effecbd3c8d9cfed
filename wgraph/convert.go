package wgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/qecdev/mwmatch/core"
)

// FromGraph normalizes a labeled weighted undirected graph into a decoding
// graph. Boundary flags come from nodes implementing BoundaryNoder; error
// probabilities and fault ids come from edges implementing ErrorProber and
// FaultIDer (or the deprecated QubitIDer alias). A nil fault-id slice means
// "not supplied"; a slice equal to {NoFault} means "no fault ids". An edge
// reporting non-nil slices through both FaultIDer and QubitIDer fails with
// ErrFaultAliasConflict.
//
// Complexity: O(V + E log E).
func FromGraph(src Source) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	dst := core.NewGraph()
	var boundary []int
	maxID := -1

	nodes := src.Nodes()
	for nodes.Next() {
		n := nodes.Node()
		id := n.ID()
		if id < 0 {
			return nil, fmt.Errorf("%w: got %d", ErrBadNodeID, id)
		}
		if int(id) > maxID {
			maxID = int(id)
		}
		if b, ok := n.(BoundaryNoder); ok && b.IsBoundary() {
			boundary = append(boundary, int(id))
		}
	}

	es := src.WeightedEdges()
	for es.Next() {
		e := es.WeightedEdge()
		u, v := e.From().ID(), e.To().ID()
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrBadNodeID, u, v)
		}

		opts := []core.EdgeOption{core.WithWeight(e.Weight())}

		if p, ok := e.(ErrorProber); ok {
			opts = append(opts, core.WithErrorProbability(p.ErrorProbability()))
		}

		faults, qubits := probeFaults(e)
		if faults != nil && qubits != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrFaultAliasConflict, u, v)
		}
		ids := faults
		if ids == nil {
			ids = qubits
		}
		clean, err := normalizeFaults(ids)
		if err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d)", err, u, v)
		}
		if clean != nil {
			opts = append(opts, core.WithFaultIDs(clean...))
		}

		if err = dst.AddEdge(int(u), int(v), opts...); err != nil {
			return nil, err
		}
	}

	dst.Grow(maxID + 1)
	if err := dst.SetBoundaryNodes(boundary...); err != nil {
		return nil, err
	}

	return dst, nil
}

// ToGraph exports a decoding graph as a simple weighted undirected gonum
// graph whose nodes and edges are this package's attribute-carrying types.
// Unset sentinels are exported explicitly, so FromGraph(ToGraph(g)) is
// attribute-identical to g.
func ToGraph(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dst := simple.NewWeightedUndirectedGraph(0, 0)
	for id := 0; id < g.NumNodes(); id++ {
		dst.AddNode(Node{NID: int64(id), Boundary: g.IsBoundary(id)})
	}
	for _, e := range g.Edges() {
		dst.SetWeightedEdge(Edge{
			F:       Node{NID: int64(e.U), Boundary: g.IsBoundary(e.U)},
			T:       Node{NID: int64(e.V), Boundary: g.IsBoundary(e.V)},
			W:       e.Weight,
			ErrProb: e.ErrorProbability,
			Faults:  e.SortedFaultIDs(),
		})
	}

	return dst, nil
}

// probeFaults extracts the fault-id and legacy qubit-id labels of an edge.
func probeFaults(e any) (faults, qubits []int) {
	if f, ok := e.(FaultIDer); ok {
		faults = f.FaultIDs()
	}
	if q, ok := e.(QubitIDer); ok {
		qubits = q.QubitIDs()
	}

	return faults, qubits
}

// normalizeFaults drops NoFault sentinels and rejects ids below the sentinel.
func normalizeFaults(ids []int) ([]int, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]int, 0, len(ids))
	for _, f := range ids {
		switch {
		case f == NoFault:
		case f < NoFault:
			return nil, ErrBadFaultID
		default:
			out = append(out, f)
		}
	}

	return out, nil
}
