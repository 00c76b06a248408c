// Package dijkstra implements Dijkstra's shortest-path algorithm on index graphs.
//
// Notes on implementation choices:
//
//   - Distances and predecessors live in slices indexed by vertex.
//   - We treat any vertex rejected by Options.Allowed as absent.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: slice of minimum distances (+Inf if unreachable or filtered out).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//   - err:  error if inputs are invalid or if a negative weight is met.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in range (ErrVertexNotFound).
//  4. Source must pass the Allowed filter (ErrSourceNotAllowed).
//  5. No arc may carry a negative weight (ErrNegativeWeight, detected on relaxation).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Order()
	if cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d (order %d)", ErrVertexNotFound, cfg.Source, n)
	}
	if cfg.Allowed != nil && !cfg.Allowed(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrSourceNotAllowed, cfg.Source)
	}

	// 3) Prepare state
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Run
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph     // The input graph; read-only within Dijkstra.
	options Options   // Configuration options.
	dist    []float64 // dist[v] = current best distance from Source.
	prev    []int     // prev[v] = predecessor on the shortest path, -1 if none.
	visited []bool    // visited[v] = distance is final.
	pq      nodePQ    // Min-heap of nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: extract the closest unsettled vertex and relax its arcs.
// Terminates when the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc out of u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	n := len(r.dist)
	for _, a := range r.g.Arcs(u) {
		v := a.To
		if v < 0 || v >= n {
			continue
		}
		if r.options.Allowed != nil && !r.options.Allowed(v) {
			continue
		}
		// NaN fails every comparison, so test for the valid range instead.
		if !(a.Weight >= 0) {
			return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, a.Weight)
		}
		newDist := r.dist[u] + a.Weight
		// Strict improvement only: equal-cost alternatives keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties on the smaller vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the vertex sequence source → … → v from a predecessor slice.
// Returns nil if v is unreachable.
func PathTo(prev []int, source, v int) []int {
	if v < 0 || v >= len(prev) {
		return nil
	}
	if v != source && prev[v] < 0 {
		return nil
	}
	var rev []int
	for cur := v; cur != -1; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
