package board

// Edge is a directed adjacency-list entry. Cost defaults to 1 and is
// only ever read by the shortestpath collaborator; the connectivity
// detector and move selector ignore it.
type Edge struct {
	To   int
	Cost int
}

// Graph stores per-cell neighbor lists and the per-cell Marker value,
// composed rather than inherited by Game. Edges are added once per
// direction by the caller (AddEdge is not implicitly bidirectional),
// matching the original board-building routine which calls AddEdge
// twice per adjacent pair.
type Graph struct {
	edges   [][]Edge
	markers []Marker
}

// NewGraph allocates a graph over n nodes, all Empty, with no edges yet.
func NewGraph(n int) *Graph {
	return &Graph{
		edges:   make([][]Edge, n),
		markers: make([]Marker, n),
	}
}

// AddEdge appends a directed edge u->v. If u already has an edge to v,
// that edge (and its cost) is kept and nothing is appended. Callers
// wanting an undirected adjacency must invoke it once for u->v and once
// for v->u.
func (g *Graph) AddEdge(u, v, cost int) {
	for _, e := range g.edges[u] {
		if e.To == v {
			return
		}
	}
	g.edges[u] = append(g.edges[u], Edge{To: v, Cost: cost})
}

// Neighbors returns the outgoing edges of u in insertion order.
func (g *Graph) Neighbors(u int) []Edge {
	return g.edges[u]
}

// NeighborsFiltered appends to dst (after truncating it to length 0)
// every neighbor of u whose marker equals want, skipping any cell for
// which excluded is non-nil and excluded[cell] is true. Returning the
// (possibly reallocated) slice lets callers reuse a scratch buffer
// across calls without a fresh allocation in the common case.
func (g *Graph) NeighborsFiltered(u int, want Marker, excluded []bool, dst []int) []int {
	dst = dst[:0]
	for _, e := range g.edges[u] {
		if g.markers[e.To] != want {
			continue
		}
		if excluded != nil && excluded[e.To] {
			continue
		}
		dst = append(dst, e.To)
	}
	return dst
}

// GetMarker returns the marker currently at cell i.
func (g *Graph) GetMarker(i int) Marker { return g.markers[i] }

// SetMarker sets the marker at cell i.
func (g *Graph) SetMarker(i int, m Marker) { g.markers[i] = m }

// Len is the number of cells (nodes) in the graph.
func (g *Graph) Len() int { return len(g.markers) }

// Degree reports how many outgoing edges cell i has, used by tests
// validating the degree distribution invariant.
func (g *Graph) Degree(i int) int { return len(g.edges[i]) }
