// Package mwmatch decodes error-correction syndromes by minimum-weight
// perfect matching over a decoding graph.
//
// What is mwmatch?
//
//	A library that brings together:
//		• Decoding graphs: detectors, boundary nodes, fault ids, weighted edges
//		• Builders: binary check matrices, general weighted graphs (gonum),
//		  repeated measurement rounds, detector error models
//		• Decoding: syndrome validation, negative-weight handling, fault
//		  correction through a pluggable exact-matching oracle
//		• Noise: Bernoulli sampling of error configurations from edge
//		  probabilities
//
// The Matching type in this package is the front door: build a graph with
// AddEdge or one of the Load methods, then Decode syndromes or AddNoise.
// Everything it does is also available piecemeal through the subpackages:
//
//	core/        — decoding graph store: Edge, EdgeKey, Graph, merge rules
//	checkmatrix/ — graphs from binary check matrices, incl. repeated rounds
//	wgraph/      — adapter from/to gonum weighted undirected graphs
//	dem/         — graphs from detector error models
//	negweight/   — negative-weight edge transform and its inverse
//	decode/      — the Decoder and the external-solver Oracle contract
//	matcher/     — reference exact oracle (Dijkstra + subset DP)
//	noise/       — Bernoulli edge-error sampler
//	graphio/     — YAML persistence of decoding graphs
//
// Quick ASCII example, a distance-3 repetition code:
//
//	    q0    q1    q2
//	 ●──────●──────●──────●
//	 b     d0     d1      b
//
//	two detectors d0,d1 between three data qubits, boundary nodes b at
//	both ends; a single error on q1 lights both detectors.
//
//	go get github.com/qecdev/mwmatch
package mwmatch
