// Package core defines the central Graph and Edge types of a matching
// (decoding) graph: detectors and boundary nodes joined by weighted edges,
// each edge carrying the set of fault ids it flips and an optional
// independent error probability.
//
// What:
//
//   - Edge: unordered node pair with weight, error probability and fault ids.
//   - Graph: simple undirected graph over dense 0-based node ids with a
//     replaceable boundary-node set and deterministic edge iteration.
//   - Duplicate insertions merge: fault ids are unioned, explicitly supplied
//     weight/probability values win last-write, the unset probability
//     sentinel never overwrites a set value.
//
// Why:
//
//   - One canonical store that every builder (check matrix, weighted graph,
//     detector error model, incremental) normalizes into, and that decoding
//     and noise sampling consume read-only.
//
// Invariants:
//
//   - No self-loops, no parallel edges.
//   - Boundary set is a subset of the node set.
//   - Error probabilities lie in [0,1] or equal UnsetProbability.
//   - Fault ids are non-negative; NumFaultIDs is 1 + the largest id present.
//
// Errors:
//
//   - ErrSelfLoop: edge endpoints coincide.
//   - ErrBadNodeID: negative node id.
//   - ErrBadFaultID: negative fault id.
//   - ErrBadProbability: probability outside [0,1] and not the sentinel.
//   - ErrFaultAliasConflict: WithFaultIDs and WithQubitID both supplied.
//
// The Graph is not safe for concurrent mutation. Concurrent read-only use
// (decoding, sampling) of a fully built graph is safe.
package core
