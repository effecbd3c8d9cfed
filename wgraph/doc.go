// Package wgraph converts between decoding graphs and conventional labeled
// weighted graphs built on gonum.org/v1/gonum/graph.
//
// What:
//
//   - FromGraph ingests any weighted undirected gonum graph. Nodes may carry
//     a boundary flag and edges may carry an error probability and fault ids
//     via small optional interfaces (BoundaryNoder, ErrorProber, FaultIDer,
//     QubitIDer); plain nodes and edges fall back to the documented
//     defaults (not boundary, unset probability, no fault ids).
//   - ToGraph exports a decoding graph into a *simple.WeightedUndirectedGraph
//     populated with this package's Node and Edge values, so a round trip
//     preserves every attribute up to sentinel normalization.
//
// A fault id of NoFault (-1) on input means "no fault ids". Supplying both
// FaultIDs and the deprecated QubitIDs alias on one edge is rejected.
//
// Errors:
//
//   - ErrNilGraph: nil source graph.
//   - ErrBadNodeID: a negative node id in the source.
//   - ErrFaultAliasConflict: FaultIDs and QubitIDs both present on an edge.
//   - ErrBadFaultID: a fault id below NoFault.
package wgraph
