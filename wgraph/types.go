package wgraph

import (
	"errors"

	"gonum.org/v1/gonum/graph"

	"github.com/qecdev/mwmatch/core"
)

// NoFault is the input sentinel meaning "this edge flips no fault".
const NoFault = -1

// Sentinel errors for graph conversion.
var (
	// ErrNilGraph indicates a nil source graph.
	ErrNilGraph = errors.New("wgraph: source graph is nil")

	// ErrBadNodeID indicates a negative node id in the source graph.
	ErrBadNodeID = errors.New("wgraph: node ids must be non-negative")

	// ErrFaultAliasConflict indicates an edge carrying both FaultIDs and the
	// deprecated QubitIDs alias.
	ErrFaultAliasConflict = errors.New("wgraph: fault ids and qubit ids are mutually exclusive")

	// ErrBadFaultID indicates a fault id below the NoFault sentinel.
	ErrBadFaultID = errors.New("wgraph: fault id must be non-negative or NoFault")
)

// BoundaryNoder marks nodes that carry the is_boundary attribute.
type BoundaryNoder interface {
	IsBoundary() bool
}

// ErrorProber marks edges that carry an error probability.
type ErrorProber interface {
	ErrorProbability() float64
}

// FaultIDer marks edges that carry fault ids.
type FaultIDer interface {
	FaultIDs() []int
}

// QubitIDer marks edges that carry fault ids under their historical name.
//
// Deprecated: implement FaultIDer.
type QubitIDer interface {
	QubitIDs() []int
}

// Source is the minimal gonum graph surface FromGraph consumes.
// *simple.WeightedUndirectedGraph satisfies it.
type Source interface {
	graph.WeightedUndirected
	WeightedEdges() graph.WeightedEdges
}

// Node is a labeled node for exported graphs.
type Node struct {
	NID      int64
	Boundary bool
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.NID }

// IsBoundary implements BoundaryNoder.
func (n Node) IsBoundary() bool { return n.Boundary }

// Edge is a labeled weighted edge for exported graphs.
type Edge struct {
	F, T    graph.Node
	W       float64
	ErrProb float64
	Faults  []int
	// Deprecated: Qubits is the legacy alias for Faults; set at most one.
	Qubits []int
}

// NewEdge returns an Edge between f and t with the decoding-graph defaults
// (weight 1, unset probability, no fault ids).
func NewEdge(f, t Node) Edge {
	return Edge{F: f, T: t, W: 1.0, ErrProb: core.UnsetProbability}
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge.
func (e Edge) ReversedEdge() graph.Edge {
	e.F, e.T = e.T, e.F

	return e
}

// Weight implements graph.WeightedEdge.
func (e Edge) Weight() float64 { return e.W }

// ErrorProbability implements ErrorProber.
func (e Edge) ErrorProbability() float64 { return e.ErrProb }

// FaultIDs implements FaultIDer.
func (e Edge) FaultIDs() []int { return e.Faults }

// QubitIDs implements QubitIDer.
//
// Deprecated: use FaultIDs.
func (e Edge) QubitIDs() []int { return e.Qubits }
