package checkmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qecdev/mwmatch/core"
)

// Build constructs a decoding graph from the binary check matrix h
// (detectors x faults), applying the configured weights, probabilities and
// repeated-round expansion. The shared boundary node, if any single-detector
// column exists, receives id rows*repetitions.
//
// Complexity: O(rows*cols*repetitions).
func Build(h mat.Matrix, opts ...Option) (*core.Graph, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	rows, cols, err := dims(h)
	if err != nil {
		return nil, err
	}

	// Column supports: the detectors checking each fault.
	support := make([][]int, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			switch h.At(i, j) {
			case 0:
			case 1:
				support[j] = append(support[j], i)
			default:
				return nil, fmt.Errorf("%w: entry (%d,%d) is %g", ErrNonBinaryEntry, i, j, h.At(i, j))
			}
		}
		if n := len(support[j]); n == 0 || n > 2 {
			return nil, fmt.Errorf("%w: column %d is checked by %d", ErrChecksPerFault, j, n)
		}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.repetitions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRepetitions, cfg.repetitions)
	}
	if cfg.measProbs != nil && cfg.measProbsOld != nil {
		return nil, ErrMeasurementAlias
	}
	measProbs := cfg.measProbs
	if measProbs == nil {
		measProbs = cfg.measProbsOld
	}

	sw, err := broadcast(cfg.spaceWeights, cols, 1.0, "spacelike weights")
	if err != nil {
		return nil, err
	}
	sp, err := broadcast(cfg.spaceProbs, cols, core.UnsetProbability, "error probabilities")
	if err != nil {
		return nil, err
	}
	tw, err := broadcast(cfg.timeWeights, rows, 1.0, "timelike weights")
	if err != nil {
		return nil, err
	}
	mp, err := broadcast(measProbs, rows, core.UnsetProbability, "measurement error probabilities")
	if err != nil {
		return nil, err
	}

	reps := cfg.repetitions
	boundaryID := rows * reps
	hasBoundary := false

	g := core.NewGraph()
	for r := 0; r < reps; r++ {
		offset := r * rows
		for j, sup := range support {
			fault := core.WithFaultIDs(r*cols + j)
			attrs := []core.EdgeOption{fault, core.WithWeight(sw[j]), core.WithErrorProbability(sp[j])}
			var addErr error
			if len(sup) == 1 {
				hasBoundary = true
				addErr = g.AddEdge(sup[0]+offset, boundaryID, attrs...)
			} else {
				addErr = g.AddEdge(sup[0]+offset, sup[1]+offset, attrs...)
			}
			if addErr != nil {
				return nil, addErr
			}
		}
		if r == 0 {
			continue
		}
		// Time-like edges join detector d of round r-1 to round r.
		for d := 0; d < rows; d++ {
			err = g.AddEdge(d+offset-rows, d+offset,
				core.WithWeight(tw[d]), core.WithErrorProbability(mp[d]))
			if err != nil {
				return nil, err
			}
		}
	}

	g.Grow(rows * reps)
	if hasBoundary {
		if err = g.SetBoundaryNodes(boundaryID); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// BuildRows is Build over a dense [][]uint8 row slice.
func BuildRows(rows [][]uint8, opts ...Option) (*core.Graph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	dense := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedRows, i, len(row), cols)
		}
		for j, v := range row {
			dense.Set(i, j, float64(v))
		}
	}

	return Build(dense, opts...)
}

// dims validates and returns the shape of h.
func dims(h mat.Matrix) (rows, cols int, err error) {
	rows, cols = h.Dims()
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: got %dx%d", ErrEmptyMatrix, rows, cols)
	}

	return rows, cols, nil
}
