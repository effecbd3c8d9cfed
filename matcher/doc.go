// Package matcher provides the reference minimum-weight perfect-matching
// oracle used to decode syndromes.
//
// What:
//
//   - Solve runs Dijkstra from every defect over the nonnegative-weight
//     graph (lazy-decrease-key min-heap), forming the complete graph of
//     defect-to-defect shortest-path distances plus, when a virtual
//     boundary vertex exists, each defect's cheapest route to it.
//   - An exact minimum-weight perfect matching over that complete graph is
//     found by dynamic programming over defect subsets; any number of
//     defects may match the virtual vertex independently.
//   - The matching is expanded back into graph edges along the underlying
//     shortest paths; edges shared by an even number of paths cancel.
//
// Why:
//
//   - The decoder consumes any exact oracle through the decode.Oracle
//     interface; this one favors clarity and determinism over scale. The
//     subset DP is exponential in the defect count, so Solve rejects more
//     than MaxDefects defects.
//
// Errors:
//
//   - ErrNilGraph: nil input graph.
//   - ErrNegativeWeight: the oracle is defined only for nonnegative weights.
//   - ErrDefectRange: a defect id outside the graph's node range.
//   - ErrTooManyDefects: defect count above the exact-search limit.
//   - ErrNoPerfectMatching: the defects cannot be perfectly matched.
package matcher
