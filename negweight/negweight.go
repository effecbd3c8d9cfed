// Package negweight rewrites a decoding graph so that every edge weight is
// nonnegative, the form required by perfect-matching solvers, while
// preserving the matching semantics of the original graph.
//
// Every negative-weight edge is marked forced: its weight is negated in the
// solver-facing graph, the required matching parity of both endpoints is
// toggled, and the original (negative) weight is accumulated into a global
// offset. After solving, the true selected edge set is the symmetric
// difference of the solver's choice and the forced set, and the true total
// weight is the solver's weight plus the offset. The rewrite is a plain
// value: applying it never mutates the input graph, and restoring is a pure
// function of the solver output.
package negweight

import (
	"sort"

	"github.com/qecdev/mwmatch/core"
)

// Rewrite is the result of transforming a graph for a nonnegative-weight
// solver, together with everything needed to undo the transformation.
type Rewrite struct {
	// Graph is the solver-facing copy with |w| in place of every negative w.
	Graph *core.Graph

	// Offset is the sum of all negative edge weights; adding it to the
	// solver's reported weight yields the true total.
	Offset float64

	forced map[core.EdgeKey]struct{}
	toggle map[int]struct{}
}

// Apply builds the nonnegative rewrite of g. g itself is left untouched.
// Complexity: O(V + E log E).
func Apply(g *core.Graph) *Rewrite {
	rw := &Rewrite{
		Graph:  g.Clone(),
		forced: make(map[core.EdgeKey]struct{}),
		toggle: make(map[int]struct{}),
	}

	for _, e := range g.Edges() {
		if e.Weight >= 0 {
			continue
		}
		k := e.Key()
		// Merging onto the clone flips only the weight; fault ids and
		// probability are untouched.
		_ = rw.Graph.AddEdge(k.U, k.V, core.WithWeight(-e.Weight))
		rw.forced[k] = struct{}{}
		rw.Offset += e.Weight
		rw.flip(k.U)
		rw.flip(k.V)
	}

	return rw
}

// FlipsParity reports whether the required matching parity of node n was
// toggled by a forced edge.
func (r *Rewrite) FlipsParity(n int) bool {
	_, ok := r.toggle[n]

	return ok
}

// Forced returns the forced edge keys in ascending order.
func (r *Rewrite) Forced() []core.EdgeKey {
	keys := make([]core.EdgeKey, 0, len(r.forced))
	for k := range r.forced {
		keys = append(keys, k)
	}
	sortKeys(keys)

	return keys
}

// AdjustDefects returns the defect set with every forced-edge parity toggle
// applied: toggled members drop out, toggled non-members join. The input is
// not modified; the output is sorted.
func (r *Rewrite) AdjustDefects(defects []int) []int {
	set := make(map[int]struct{}, len(defects)+len(r.toggle))
	for _, d := range defects {
		set[d] = struct{}{}
	}
	for n := range r.toggle {
		if _, ok := set[n]; ok {
			delete(set, n)
		} else {
			set[n] = struct{}{}
		}
	}

	out := make([]int, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}

// Restore maps a solver answer over the rewritten graph back to the original
// graph: the true edge set is the symmetric difference of chosen and the
// forced set, the true weight is solverWeight plus the offset. The returned
// keys are sorted.
func (r *Rewrite) Restore(chosen []core.EdgeKey, solverWeight float64) ([]core.EdgeKey, float64) {
	set := make(map[core.EdgeKey]struct{}, len(r.forced)+len(chosen))
	for k := range r.forced {
		set[k] = struct{}{}
	}
	for _, k := range chosen {
		if _, ok := set[k]; ok {
			delete(set, k)
		} else {
			set[k] = struct{}{}
		}
	}

	keys := make([]core.EdgeKey, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sortKeys(keys)

	return keys, solverWeight + r.Offset
}

func (r *Rewrite) flip(n int) {
	if _, ok := r.toggle[n]; ok {
		delete(r.toggle, n)
	} else {
		r.toggle[n] = struct{}{}
	}
}

func sortKeys(keys []core.EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}

		return keys[i].V < keys[j].V
	})
}
