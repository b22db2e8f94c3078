// Package shortestpath finds minimum-cost paths through a board.Graph
// restricted to cells owned by one side. It isn't on the hot path of
// either move selection or connectivity checking — both of those only
// care whether a chain exists, never its cost — but the underlying
// adjacency graph carries edge costs for exactly this kind of analysis,
// and the original implementation shipped a full Dijkstra for it.
package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/lewisl/hex-game/board"
)

// Result is one run of FindShortestPaths: per-node cost and the node
// sequence that achieves it, for every candidate node reachable from
// the start.
type Result struct {
	Start     int
	Costs     map[int]int
	Sequences map[int][]int
}

// PathTo returns the node sequence from Start to node and true, or nil
// and false if node was never reached.
func (r Result) PathTo(node int) ([]int, bool) {
	seq, ok := r.Sequences[node]
	return seq, ok
}

// FindShortestPaths runs Dijkstra from start over only the nodes whose
// marker equals filter (matching start's own marker is not required;
// start is always reachable from itself at cost 0 regardless of its
// marker, mirroring the source this is adapted from). Edges leading to
// a node that doesn't match filter are never relaxed.
func FindShortestPaths(g *board.Graph, start int, filter board.Marker) (Result, error) {
	if start < 0 || start >= g.Len() {
		return Result{}, fmt.Errorf("shortestpath: start node %d out of range", start)
	}

	costs := map[int]int{start: 0}
	sequences := map[int][]int{start: {start}}
	visited := make(map[int]bool)

	pq := &nodeHeap{{node: start, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(nodeCost)
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		for _, e := range g.Neighbors(cur.node) {
			if g.GetMarker(e.To) != filter {
				continue
			}
			next := cur.cost + e.Cost
			if existing, ok := costs[e.To]; !ok || next < existing {
				costs[e.To] = next
				sequences[e.To] = append(append([]int{}, sequences[cur.node]...), e.To)
				heap.Push(pq, nodeCost{node: e.To, cost: next})
			}
		}
	}

	return Result{Start: start, Costs: costs, Sequences: sequences}, nil
}

type nodeCost struct {
	node, cost int
}

type nodeHeap []nodeCost

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeCost)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
