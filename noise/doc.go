// Package noise samples independent Bernoulli edge errors from a decoding
// graph whose edges carry error probabilities.
//
// What:
//
//   - Sample flips each edge independently with its error probability,
//     accumulates the flipped edges' fault ids into a noise vector, and
//     toggles the syndrome bit of both endpoints. Edges whose probability is
//     unset never flip. Boundary bits are zeroed afterwards, so the returned
//     syndrome is always decodable.
//   - Sampling walks edges in canonical order, so a fixed source yields a
//     reproducible draw.
//
// Why:
//
//   - Simulating a round of noise and decoding it back is the standard way
//     to estimate a code's logical error rate; the sampler provides the
//     noise half of that loop against the same graph the decoder uses.
//
// Errors:
//
//   - ErrNilGraph: nil input graph.
package noise
