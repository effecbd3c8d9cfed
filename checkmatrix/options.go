package checkmatrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for check-matrix graph construction.
var (
	// ErrNilMatrix indicates a nil check matrix.
	ErrNilMatrix = errors.New("checkmatrix: check matrix is nil")

	// ErrEmptyMatrix indicates a matrix without rows or columns.
	ErrEmptyMatrix = errors.New("checkmatrix: check matrix must have at least one row and one column")

	// ErrRaggedRows indicates rows of differing lengths in BuildRows input.
	ErrRaggedRows = errors.New("checkmatrix: all rows must have the same length")

	// ErrNonBinaryEntry indicates a matrix entry other than 0 or 1.
	ErrNonBinaryEntry = errors.New("checkmatrix: check matrix entries must be 0 or 1")

	// ErrChecksPerFault indicates a column checked by zero or more than two
	// detectors ("too many checks per fault").
	ErrChecksPerFault = errors.New("checkmatrix: each fault must be checked by one or two detectors")

	// ErrLengthMismatch indicates a weight/probability array whose length
	// matches neither 1 (broadcast) nor the required dimension.
	ErrLengthMismatch = errors.New("checkmatrix: weight/probability array has wrong length")

	// ErrBadRepetitions indicates a repetitions count below 1.
	ErrBadRepetitions = errors.New("checkmatrix: repetitions must be >= 1")

	// ErrMeasurementAlias indicates that the measurement error probability
	// was supplied through both the plural option and its deprecated
	// singular alias.
	ErrMeasurementAlias = errors.New("checkmatrix: measurement error probability supplied twice")
)

// options collects builder configuration. Nil slices mean "not supplied".
type options struct {
	spaceWeights []float64
	spaceProbs   []float64
	repetitions  int
	timeWeights  []float64
	measProbs    []float64
	measProbsOld []float64
}

func defaultOptions() options {
	return options{repetitions: 1}
}

// Option configures Build and BuildRows.
type Option func(*options)

// WithSpacelikeWeights sets per-fault edge weights: a single value broadcasts
// to every column, otherwise the length must equal the number of columns.
func WithSpacelikeWeights(ws ...float64) Option {
	return func(o *options) { o.spaceWeights = ws }
}

// WithErrorProbabilities sets per-fault error probabilities, broadcast like
// WithSpacelikeWeights.
func WithErrorProbabilities(ps ...float64) Option {
	return func(o *options) { o.spaceProbs = ps }
}

// WithRepetitions sets the number of measurement rounds (default 1).
func WithRepetitions(r int) Option {
	return func(o *options) { o.repetitions = r }
}

// WithTimelikeWeights sets per-detector weights for the edges joining the
// same detector across consecutive rounds: a single value broadcasts,
// otherwise the length must equal the number of rows.
func WithTimelikeWeights(ws ...float64) Option {
	return func(o *options) { o.timeWeights = ws }
}

// WithMeasurementErrorProbabilities sets per-detector error probabilities
// for the time-like edges, broadcast like WithTimelikeWeights.
func WithMeasurementErrorProbabilities(ps ...float64) Option {
	return func(o *options) { o.measProbs = ps }
}

// WithMeasurementErrorProbability is the historical singular alias.
// Combining it with WithMeasurementErrorProbabilities yields
// ErrMeasurementAlias.
//
// Deprecated: use WithMeasurementErrorProbabilities.
func WithMeasurementErrorProbability(ps ...float64) Option {
	return func(o *options) { o.measProbsOld = ps }
}

// broadcast expands vals to length n: empty means n copies of def, a single
// value is repeated n times, length n is copied verbatim, anything else is
// ErrLengthMismatch. what names the offending option in the error.
func broadcast(vals []float64, n int, def float64, what string) ([]float64, error) {
	out := make([]float64, n)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = def
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		copy(out, vals)
	default:
		return nil, fmt.Errorf("%w: %s has length %d, want 1 or %d", ErrLengthMismatch, what, len(vals), n)
	}

	return out, nil
}
