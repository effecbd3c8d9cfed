package matcher

import (
	"container/heap"
	"math"

	"github.com/qecdev/mwmatch/core"
)

// shortestPaths runs Dijkstra from src over the nonnegative-weight graph,
// returning per-node distances (+Inf when unreachable) and the predecessor
// array of the shortest-path tree (-1 for src and unreachable nodes).
//
// Uses the lazy-decrease-key strategy: improved distances push duplicate
// heap entries and stale entries are skipped when popped.
//
// Complexity: O((V+E) log V), Space O(V+E).
func shortestPaths(g *core.Graph, src int) ([]float64, []int) {
	n := g.NumNodes()
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := nodePQ{{id: src, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if done[u] {
			continue // stale lazy entry
		}
		done[u] = true

		for _, e := range g.Neighbors(u) {
			v := e.U
			if v == u {
				v = e.V
			}
			if nd := dist[u] + e.Weight; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	return dist, prev
}

// nodeItem is one (node, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
