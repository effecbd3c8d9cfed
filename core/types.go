// Package core: Edge and EdgeKey types, edge options, sentinel errors.
package core

import (
	"errors"
	"sort"
)

// UnsetProbability is the sentinel meaning "no error probability assigned".
// Edges carrying it are never sampled and never reported as a probability.
const UnsetProbability = -1.0

// Sentinel errors for graph mutation.
var (
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: edge endpoints must differ")

	// ErrBadNodeID indicates a negative node id.
	ErrBadNodeID = errors.New("core: node id must be non-negative")

	// ErrBadFaultID indicates a negative fault id.
	ErrBadFaultID = errors.New("core: fault id must be non-negative")

	// ErrBadProbability indicates an error probability outside [0,1] that is
	// not the UnsetProbability sentinel.
	ErrBadProbability = errors.New("core: error probability must lie in [0,1] or be unset")

	// ErrFaultAliasConflict indicates that both WithFaultIDs and the
	// deprecated WithQubitID alias were supplied for the same edge.
	ErrFaultAliasConflict = errors.New("core: fault ids and qubit id are mutually exclusive")
)

// EdgeKey identifies an undirected edge by its canonical (min,max) endpoints.
type EdgeKey struct {
	U, V int // U < V
}

// NewEdgeKey returns the canonical key for the unordered pair {u,v}.
func NewEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Edge is one decoding-graph edge with its normalized attribute record.
//
// Weight is an unconstrained real; a negative weight marks an edge that is
// energetically favorable to include (see the negweight package).
// ErrorProbability is a real in [0,1] or UnsetProbability.
// FaultIDs holds the binary channels flipped when this edge is selected.
type Edge struct {
	U, V             int
	FaultIDs         map[int]struct{}
	Weight           float64
	ErrorProbability float64
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.U, e.V) }

// SortedFaultIDs returns the fault ids of e in ascending order.
func (e Edge) SortedFaultIDs() []int {
	ids := make([]int, 0, len(e.FaultIDs))
	for f := range e.FaultIDs {
		ids = append(ids, f)
	}
	sort.Ints(ids)

	return ids
}

// edgeConfig accumulates edge attributes supplied via EdgeOption values.
// Set-flags distinguish "explicitly supplied" from "defaulted", which drives
// the merge rule on duplicate insertion.
type edgeConfig struct {
	faults     []int
	faultsSet  bool
	qubits     []int
	qubitsSet  bool
	weight     float64
	weightSet  bool
	errProb    float64
	errProbSet bool
}

// EdgeOption configures attributes of a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithWeight sets the edge weight (default 1.0). May be negative.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.weightSet = true
	}
}

// WithErrorProbability sets the independent error probability of the edge.
// Must lie in [0,1] or equal UnsetProbability; validated by AddEdge.
func WithErrorProbability(p float64) EdgeOption {
	return func(c *edgeConfig) {
		c.errProb = p
		c.errProbSet = true
	}
}

// WithFaultIDs sets the fault ids flipped by the edge. Duplicate ids are
// collapsed; an empty call still counts as "supplied" for alias conflicts.
func WithFaultIDs(ids ...int) EdgeOption {
	return func(c *edgeConfig) {
		c.faults = append(c.faults, ids...)
		c.faultsSet = true
	}
}

// WithQubitID sets fault ids under their historical name.
// Combining it with WithFaultIDs on one edge yields ErrFaultAliasConflict.
//
// Deprecated: use WithFaultIDs.
func WithQubitID(ids ...int) EdgeOption {
	return func(c *edgeConfig) {
		c.qubits = append(c.qubits, ids...)
		c.qubitsSet = true
	}
}
