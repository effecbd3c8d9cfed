package core

import (
	"fmt"
	"sort"
)

// Graph is the authoritative in-memory store of a decoding graph:
// dense 0-based node ids, at most one edge per unordered node pair,
// and a replaceable set of boundary nodes.
//
// Mutation happens only through AddEdge, SetBoundaryNodes and Grow; a failed
// mutation leaves the graph untouched. Decoding and sampling read it only.
type Graph struct {
	numNodes int
	edges    map[EdgeKey]*Edge
	adj      map[int][]int // neighbor ids per node, one entry per pair
	boundary map[int]struct{}
	maxFault int // largest fault id present, -1 when none
}

// NewGraph creates an empty decoding graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		edges:    make(map[EdgeKey]*Edge),
		adj:      make(map[int][]int),
		boundary: make(map[int]struct{}),
		maxFault: -1,
	}
}

// AddEdge inserts the undirected edge {u,v} or merges into an existing one.
//
// Defaults for a fresh edge: weight 1.0, probability UnsetProbability, no
// fault ids. On a duplicate pair the fault ids are unioned with the existing
// set, an explicitly supplied weight replaces the old one, and an explicitly
// supplied probability replaces the old one unless it is the unset sentinel.
//
// Validation happens before any mutation:
//   - u != v (ErrSelfLoop), u,v >= 0 (ErrBadNodeID)
//   - fault ids >= 0 (ErrBadFaultID)
//   - probability in [0,1] or UnsetProbability (ErrBadProbability)
//   - WithFaultIDs and WithQubitID not combined (ErrFaultAliasConflict)
//
// Complexity: O(len(fault ids)) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) error {
	cfg := edgeConfig{weight: 1.0, errProb: UnsetProbability}
	for _, opt := range opts {
		opt(&cfg)
	}

	if u < 0 || v < 0 {
		return fmt.Errorf("%w: got (%d,%d)", ErrBadNodeID, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: got (%d,%d)", ErrSelfLoop, u, v)
	}
	if cfg.faultsSet && cfg.qubitsSet {
		return ErrFaultAliasConflict
	}
	ids := cfg.faults
	if cfg.qubitsSet {
		ids = cfg.qubits
	}
	for _, f := range ids {
		if f < 0 {
			return fmt.Errorf("%w: got %d", ErrBadFaultID, f)
		}
	}
	if cfg.errProbSet && cfg.errProb != UnsetProbability && (cfg.errProb < 0 || cfg.errProb > 1) {
		return fmt.Errorf("%w: got %g", ErrBadProbability, cfg.errProb)
	}

	k := NewEdgeKey(u, v)
	e, exists := g.edges[k]
	if !exists {
		e = &Edge{
			U:                k.U,
			V:                k.V,
			FaultIDs:         make(map[int]struct{}, len(ids)),
			Weight:           1.0,
			ErrorProbability: UnsetProbability,
		}
		g.edges[k] = e
		g.adj[k.U] = append(g.adj[k.U], k.V)
		g.adj[k.V] = append(g.adj[k.V], k.U)
	}

	for _, f := range ids {
		e.FaultIDs[f] = struct{}{}
		if f > g.maxFault {
			g.maxFault = f
		}
	}
	if cfg.weightSet {
		e.Weight = cfg.weight
	}
	if cfg.errProbSet && cfg.errProb != UnsetProbability {
		e.ErrorProbability = cfg.errProb
	}

	g.Grow(k.V + 1)

	return nil
}

// SetBoundaryNodes atomically replaces the boundary set with the given node
// ids, creating any ids not yet present. Returns ErrBadNodeID (and leaves the
// graph unchanged) if any id is negative.
func (g *Graph) SetBoundaryNodes(nodes ...int) error {
	for _, n := range nodes {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrBadNodeID, n)
		}
	}

	g.boundary = make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		g.boundary[n] = struct{}{}
		g.Grow(n + 1)
	}

	return nil
}

// Grow ensures the graph contains at least n nodes (ids 0..n-1).
// Shrinking is not possible; smaller n is a no-op.
func (g *Graph) Grow(n int) {
	if n > g.numNodes {
		g.numNodes = n
	}
}

// IsBoundary reports whether node id belongs to the boundary set.
func (g *Graph) IsBoundary(id int) bool {
	_, ok := g.boundary[id]

	return ok
}

// Boundary returns the boundary node ids in ascending order.
func (g *Graph) Boundary() []int {
	ids := make([]int, 0, len(g.boundary))
	for n := range g.boundary {
		ids = append(ids, n)
	}
	sort.Ints(ids)

	return ids
}

// HasEdge reports whether the unordered pair {u,v} is present.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[NewEdgeKey(u, v)]

	return ok
}

// Edge returns a copy of the edge for the unordered pair {u,v}.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	e, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return Edge{}, false
	}

	return copyEdge(e), true
}

// Edges returns copies of all edges ordered by (min(u,v), max(u,v)) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	keys := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}

		return keys[i].V < keys[j].V
	})

	out := make([]Edge, len(keys))
	for i, k := range keys {
		out[i] = copyEdge(g.edges[k])
	}

	return out
}

// Neighbors returns copies of all edges incident to node u, in insertion
// order of their opposite endpoints.
func (g *Graph) Neighbors(u int) []Edge {
	vs := g.adj[u]
	out := make([]Edge, 0, len(vs))
	for _, v := range vs {
		out = append(out, copyEdge(g.edges[NewEdgeKey(u, v)]))
	}

	return out
}

// NumNodes returns the number of nodes (detectors plus boundary nodes).
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of distinct edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumDetectors returns the number of non-boundary nodes.
func (g *Graph) NumDetectors() int { return g.numNodes - len(g.boundary) }

// NumFaultIDs returns 1 + the largest fault id present, or 0 when no edge
// carries a fault id.
func (g *Graph) NumFaultIDs() int { return g.maxFault + 1 }

// Clone returns a deep copy sharing no state with g.
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	out.numNodes = g.numNodes
	out.maxFault = g.maxFault
	for k, e := range g.edges {
		c := copyEdge(e)
		out.edges[k] = &c
	}
	for n, vs := range g.adj {
		out.adj[n] = append([]int(nil), vs...)
	}
	for n := range g.boundary {
		out.boundary[n] = struct{}{}
	}

	return out
}

// copyEdge returns a value copy of e with its own fault-id set.
func copyEdge(e *Edge) Edge {
	c := *e
	c.FaultIDs = make(map[int]struct{}, len(e.FaultIDs))
	for f := range e.FaultIDs {
		c.FaultIDs[f] = struct{}{}
	}

	return c
}
