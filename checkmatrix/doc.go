// Package checkmatrix builds decoding graphs from binary parity-check
// matrices, optionally expanded over repeated measurement rounds.
//
// What:
//
//   - Build: one edge per matrix column. A column checked by two detectors
//     (i,j) becomes the edge (i,j); a column checked by a single detector i
//     becomes a boundary edge from i to one shared, lazily created boundary
//     node. Any other column support is rejected.
//   - Repeated rounds ("time-like" expansion): with R repetitions over a
//     D-detector matrix, round r occupies node ids [r*D, (r+1)*D); each
//     round repeats the space-like edges with per-round fault ids r*F+j,
//     and consecutive rounds are joined per detector by time-like edges
//     carrying measurement weights/probabilities and no fault ids.
//   - BuildRows: convenience over a [][]uint8 row slice.
//
// Options (scalar broadcast or per-index array):
//
//   - WithSpacelikeWeights / WithErrorProbabilities: per fault (column).
//   - WithTimelikeWeights / WithMeasurementErrorProbabilities: per detector
//     (row); the deprecated singular WithMeasurementErrorProbability alias
//     must not be combined with the plural form.
//   - WithRepetitions: number of rounds, default 1.
//
// Errors:
//
//   - ErrNilMatrix, ErrEmptyMatrix, ErrRaggedRows: malformed input shape.
//   - ErrNonBinaryEntry: a matrix entry other than 0 or 1.
//   - ErrChecksPerFault: a column checked by zero or more than two detectors.
//   - ErrLengthMismatch: a weight/probability array of the wrong length.
//   - ErrBadRepetitions: repetitions < 1.
//   - ErrMeasurementAlias: both measurement-probability option forms given.
package checkmatrix
