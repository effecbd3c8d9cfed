package noise

import (
	"errors"
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/qecdev/mwmatch/core"
)

// ErrNilGraph indicates a nil input graph.
var ErrNilGraph = errors.New("noise: graph is nil")

// Option configures a Sampler.
type Option func(*Sampler)

// WithSource sets the random source. Nil (the default) uses the shared
// global source; pass a seeded source for reproducible draws.
func WithSource(src rand.Source) Option {
	return func(s *Sampler) { s.src = src }
}

// Sampler draws independent Bernoulli errors on graph edges.
type Sampler struct {
	src rand.Source
}

// New returns a Sampler with the given options applied.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sample draws one error configuration from g. It returns the noise vector
// (length NumFaultIDs; entry f is 1 when an odd number of flipped edges
// carry fault id f) and the resulting syndrome (length NumNodes; boundary
// entries always 0). Edges with an unset error probability never flip.
func (s *Sampler) Sample(g *core.Graph) (noise, syndrome []uint8, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	noise = make([]uint8, g.NumFaultIDs())
	syndrome = make([]uint8, g.NumNodes())
	for _, e := range g.Edges() {
		if e.ErrorProbability == core.UnsetProbability {
			continue
		}
		bern := distuv.Bernoulli{P: e.ErrorProbability, Src: s.src}
		if bern.Rand() == 0 {
			continue
		}
		for f := range e.FaultIDs {
			noise[f] ^= 1
		}
		syndrome[e.U] ^= 1
		syndrome[e.V] ^= 1
	}
	for _, b := range g.Boundary() {
		syndrome[b] = 0
	}

	return noise, syndrome, nil
}
