// Package graphio persists decoding graphs as YAML documents.
//
// The document lists the node count, the boundary ids and one entry per
// edge with its weight, error probability and fault ids. Unset error
// probabilities are omitted from the document and restored as unset on
// load, so Encode/Decode round-trips a graph exactly.
package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/qecdev/mwmatch/core"
)

// Sentinel errors for graph documents.
var (
	// ErrNilGraph indicates a nil graph passed to Encode.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrBadDocument indicates a document that does not describe a valid
	// decoding graph.
	ErrBadDocument = errors.New("graphio: invalid graph document")
)

// document is the on-disk layout.
type document struct {
	Nodes    int         `yaml:"nodes"`
	Boundary []int       `yaml:"boundary,omitempty"`
	Edges    []edgeEntry `yaml:"edges"`
}

type edgeEntry struct {
	U                int      `yaml:"u"`
	V                int      `yaml:"v"`
	Weight           float64  `yaml:"weight"`
	ErrorProbability *float64 `yaml:"error_probability,omitempty"`
	FaultIDs         []int    `yaml:"fault_ids,omitempty"`
}

// Encode writes g to w as a YAML graph document.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	doc := document{Nodes: g.NumNodes(), Boundary: g.Boundary()}
	for _, e := range g.Edges() {
		entry := edgeEntry{U: e.U, V: e.V, Weight: e.Weight, FaultIDs: e.SortedFaultIDs()}
		if e.ErrorProbability != core.UnsetProbability {
			p := e.ErrorProbability
			entry.ErrorProbability = &p
		}
		doc.Edges = append(doc.Edges, entry)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(doc)
}

// Decode reads a YAML graph document from r and rebuilds the graph.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if doc.Nodes < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrBadDocument, doc.Nodes)
	}

	g := core.NewGraph()
	for _, e := range doc.Edges {
		opts := []core.EdgeOption{core.WithWeight(e.Weight), core.WithFaultIDs(e.FaultIDs...)}
		if e.ErrorProbability != nil {
			opts = append(opts, core.WithErrorProbability(*e.ErrorProbability))
		}
		if err := g.AddEdge(e.U, e.V, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d): %v", ErrBadDocument, e.U, e.V, err)
		}
	}
	if err := g.SetBoundaryNodes(doc.Boundary...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	g.Grow(doc.Nodes)

	return g, nil
}
