// Package dem builds decoding graphs from detector error models: flat lists
// of independent error mechanisms, each with a probability, the detectors it
// triggers (already decomposed to at most two) and the logical observables
// it flips.
//
// Each mechanism becomes one edge: two detectors give a detector-detector
// edge, a single detector gives an edge to one shared boundary node created
// lazily at id NumDetectors. The mechanism probability becomes the edge
// error probability; the weight stays at the default 1.0 unless the
// log-likelihood translation policy is requested, in which case it becomes
// ln((1-p)/p).
package dem

import (
	"errors"
	"fmt"
	"math"

	"github.com/qecdev/mwmatch/core"
)

// Sentinel errors for detector-error-model ingestion.
var (
	// ErrEmptyModel indicates a model without mechanisms.
	ErrEmptyModel = errors.New("dem: model has no error mechanisms")

	// ErrBadProbability indicates a mechanism probability outside [0,1]
	// (outside (0,1) under the log-likelihood policy).
	ErrBadProbability = errors.New("dem: mechanism probability out of range")

	// ErrDetectorCount indicates a mechanism triggering zero or more than
	// two detectors; decomposition must happen upstream.
	ErrDetectorCount = errors.New("dem: mechanism must trigger one or two distinct detectors")

	// ErrBadDetector indicates a negative detector index.
	ErrBadDetector = errors.New("dem: detector index must be non-negative")
)

// Mechanism is one pre-decomposed error mechanism.
type Mechanism struct {
	Probability float64
	Detectors   []int // one or two distinct detector indices
	Observables []int // fault ids flipped by this mechanism
}

type options struct {
	logLikelihood bool
	numDetectors  int
}

// Option configures Build.
type Option func(*options)

// WithLogLikelihoodWeights derives each edge weight as ln((1-p)/p) from the
// mechanism probability instead of leaving it at 1.0. Requires every
// probability to lie strictly inside (0,1).
func WithLogLikelihoodWeights() Option {
	return func(o *options) { o.logLikelihood = true }
}

// WithNumDetectors fixes the detector count when it exceeds the largest
// index any mechanism triggers (models may declare untouched detectors).
func WithNumDetectors(n int) Option {
	return func(o *options) { o.numDetectors = n }
}

// Build constructs a decoding graph from the model. Duplicate detector pairs
// merge by the standard rule: observables union, later probability wins.
// Complexity: O(len(model) log len(model)).
func Build(model []Mechanism, opts ...Option) (*core.Graph, error) {
	if len(model) == 0 {
		return nil, ErrEmptyModel
	}
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	numDetectors := cfg.numDetectors
	for i, mech := range model {
		if len(mech.Detectors) == 0 || len(mech.Detectors) > 2 {
			return nil, fmt.Errorf("%w: mechanism %d triggers %d", ErrDetectorCount, i, len(mech.Detectors))
		}
		if len(mech.Detectors) == 2 && mech.Detectors[0] == mech.Detectors[1] {
			return nil, fmt.Errorf("%w: mechanism %d repeats detector %d", ErrDetectorCount, i, mech.Detectors[0])
		}
		for _, d := range mech.Detectors {
			if d < 0 {
				return nil, fmt.Errorf("%w: mechanism %d", ErrBadDetector, i)
			}
			if d+1 > numDetectors {
				numDetectors = d + 1
			}
		}
		if mech.Probability < 0 || mech.Probability > 1 {
			return nil, fmt.Errorf("%w: mechanism %d has p=%g", ErrBadProbability, i, mech.Probability)
		}
		if cfg.logLikelihood && (mech.Probability <= 0 || mech.Probability >= 1) {
			return nil, fmt.Errorf("%w: mechanism %d has p=%g, want (0,1) for log-likelihood weights", ErrBadProbability, i, mech.Probability)
		}
	}

	boundaryID := numDetectors
	hasBoundary := false

	g := core.NewGraph()
	for _, mech := range model {
		attrs := []core.EdgeOption{
			core.WithFaultIDs(mech.Observables...),
			core.WithErrorProbability(mech.Probability),
		}
		if cfg.logLikelihood {
			p := mech.Probability
			attrs = append(attrs, core.WithWeight(math.Log((1-p)/p)))
		}

		var err error
		if len(mech.Detectors) == 1 {
			hasBoundary = true
			err = g.AddEdge(mech.Detectors[0], boundaryID, attrs...)
		} else {
			err = g.AddEdge(mech.Detectors[0], mech.Detectors[1], attrs...)
		}
		if err != nil {
			return nil, err
		}
	}

	g.Grow(numDetectors)
	if hasBoundary {
		if err := g.SetBoundaryNodes(boundaryID); err != nil {
			return nil, err
		}
	}

	return g, nil
}
