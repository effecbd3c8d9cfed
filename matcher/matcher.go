package matcher

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/qecdev/mwmatch/core"
	"github.com/qecdev/mwmatch/decode"
)

// MaxDefects bounds the exact subset-DP search.
const MaxDefects = 24

// Sentinel errors for the reference oracle.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("matcher: graph is nil")

	// ErrNegativeWeight indicates a negative edge weight; the oracle is
	// defined only for nonnegative weights.
	ErrNegativeWeight = errors.New("matcher: edge weights must be nonnegative")

	// ErrDefectRange indicates a defect id outside the node range.
	ErrDefectRange = errors.New("matcher: defect id out of range")

	// ErrTooManyDefects indicates a defect count above MaxDefects.
	ErrTooManyDefects = errors.New("matcher: defect count exceeds exact-search limit")

	// ErrNoPerfectMatching indicates the defects cannot be perfectly
	// matched (odd parity without a boundary, or disconnected defects).
	ErrNoPerfectMatching = errors.New("matcher: defects cannot be perfectly matched")
)

// Matcher is the reference decode.Oracle implementation.
type Matcher struct{}

// Compile-time contract check.
var _ decode.Oracle = (*Matcher)(nil)

// New returns a ready Matcher.
func New() *Matcher { return &Matcher{} }

// Solve returns an exact minimum-weight perfect matching of the defects in
// g, expanded into the graph edges along the matched shortest paths.
// virtual >= 0 names the unlimited-capacity boundary vertex; virtual < 0
// means none exists.
//
// Complexity: O(D * (V+E) log V) for the path stage plus O(2^D * D) for the
// matching stage, D = len(defects).
func (m *Matcher) Solve(g *core.Graph, defects []int, virtual int) (decode.Result, error) {
	if g == nil {
		return decode.Result{}, ErrNilGraph
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return decode.Result{}, fmt.Errorf("%w: edge (%d,%d) has weight %g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}
	for _, d := range defects {
		if d < 0 || d >= g.NumNodes() {
			return decode.Result{}, fmt.Errorf("%w: got %d with %d nodes", ErrDefectRange, d, g.NumNodes())
		}
	}

	n := len(defects)
	if n == 0 {
		return decode.Result{}, nil
	}
	if n > MaxDefects {
		return decode.Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyDefects, n, MaxDefects)
	}
	if n%2 == 1 && virtual < 0 {
		return decode.Result{}, fmt.Errorf("%w: %d defects and no boundary", ErrNoPerfectMatching, n)
	}

	// Stage 1: shortest-path trees rooted at every defect.
	dist := make([][]float64, n)
	prev := make([][]int, n)
	for i, d := range defects {
		dist[i], prev[i] = shortestPaths(g, d)
	}

	inf := math.Inf(1)
	boundaryCost := make([]float64, n)
	for i := range boundaryCost {
		if virtual >= 0 {
			boundaryCost[i] = dist[i][virtual]
		} else {
			boundaryCost[i] = inf
		}
	}

	// Stage 2: exact matching by DP over defect subsets. choice[s] is the
	// partner index matched to the lowest set bit of s, or -1 for the
	// virtual boundary vertex.
	full := 1 << n
	cost := make([]float64, full)
	choice := make([]int, full)
	for s := 1; s < full; s++ {
		i := bits.TrailingZeros(uint(s))
		rest := s &^ (1 << i)
		best, bestJ := inf, -2
		if boundaryCost[i] < best {
			best, bestJ = cost[rest]+boundaryCost[i], -1
		}
		for t := rest; t != 0; t &= t - 1 {
			j := bits.TrailingZeros(uint(t))
			if c := cost[rest&^(1<<j)] + dist[i][defects[j]]; c < best {
				best, bestJ = c, j
			}
		}
		cost[s] = best
		choice[s] = bestJ
	}
	if math.IsInf(cost[full-1], 1) {
		return decode.Result{}, ErrNoPerfectMatching
	}

	// Stage 3: unwind the DP and expand matched pairs into path edges.
	// Edges traversed an even number of times cancel.
	selected := make(map[core.EdgeKey]struct{})
	for s := full - 1; s != 0; {
		i := bits.TrailingZeros(uint(s))
		j := choice[s]
		if j < 0 {
			xorPath(selected, prev[i], defects[i], virtual)
			s &^= 1 << i
		} else {
			xorPath(selected, prev[i], defects[i], defects[j])
			s &^= 1<<i | 1<<j
		}
	}

	edges := make([]core.EdgeKey, 0, len(selected))
	for k := range selected {
		edges = append(edges, k)
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}

		return edges[a].V < edges[b].V
	})

	return decode.Result{Edges: edges, Weight: cost[full-1]}, nil
}

// xorPath toggles every edge on the tree path src..dst into sel.
// prev is the predecessor array of the tree rooted at src.
func xorPath(sel map[core.EdgeKey]struct{}, prev []int, src, dst int) {
	for cur := dst; cur != src; {
		p := prev[cur]
		if p < 0 {
			return // unreachable; the DP never selects such a pair
		}
		k := core.NewEdgeKey(p, cur)
		if _, ok := sel[k]; ok {
			delete(sel, k)
		} else {
			sel[k] = struct{}{}
		}
		cur = p
	}
}
