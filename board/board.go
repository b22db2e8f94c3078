// Package board builds the Hex adjacency graph for a given edge length,
// tracks the per-cell marker table and empty-cell list, and owns the
// single PRNG and identity for one game instance.
package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Borders holds the four ordered cell-index sequences each side must
// connect. Corner cells deliberately appear in two sequences at once
// (e.g. the top-left corner is both X's start border and O's start
// border), matching the lattice's geometry.
type Borders struct {
	XStart, XFinish []int
	OStart, OFinish []int
}

// Start returns side's start border.
func (b Borders) Start(side Marker) []int {
	if side == X {
		return b.XStart
	}
	return b.OStart
}

// Finish returns side's finish border.
func (b Borders) Finish(side Marker) []int {
	if side == X {
		return b.XFinish
	}
	return b.OFinish
}

// MoveRecord is one played ply, kept for display and diagnostics only.
type MoveRecord struct {
	Player Marker
	Row    int
	Col    int
	At     time.Time
}

// Game is the adjacency graph, marker table, empty-cell list, move
// history, and PRNG for a single N×N Hex game. It is constructed once
// per game and exclusively owned by whatever loop drives it.
type Game struct {
	ID      uuid.UUID
	Size    int
	Graph   *Graph
	Borders Borders
	Empty   []int // ordered list of empty cell indices; never reordered by Play
	History []MoveRecord
	RNG     *rand.Rand
}

// NewGame builds a fresh N×N Hex board. N must be positive and odd;
// violating that is a configuration error, reported to the caller
// rather than panicking, since it can originate from untrusted CLI
// input.
func NewGame(n int, seed uint64) (*Game, error) {
	if n < 1 {
		return nil, fmt.Errorf("board: size must be positive, got %d", n)
	}
	if n%2 == 0 {
		return nil, fmt.Errorf("board: size must be odd (a draw is possible on an even board), got %d", n)
	}

	g := &Game{
		ID:    uuid.New(),
		Size:  n,
		Graph: NewGraph(n * n),
		RNG:   rand.New(rand.NewSource(seed)),
	}
	g.Empty = make([]int, n*n)
	for i := range g.Empty {
		g.Empty[i] = i
	}
	buildAdjacency(g.Graph, n)
	g.Borders = buildBorders(n)
	return g, nil
}

// RowColToIndex converts 1-based (row, col) to a 0-based linear index.
func RowColToIndex(n, row, col int) (int, error) {
	if row < 1 || row > n || col < 1 || col > n {
		return 0, fmt.Errorf("board: row=%d col=%d out of range for size %d", row, col, n)
	}
	return (row-1)*n + (col - 1), nil
}

// IndexToRowCol converts a 0-based linear index to 1-based (row, col).
func IndexToRowCol(n, idx int) (row, col int) {
	return idx/n + 1, idx%n + 1
}

// buildAdjacency wires the six-neighbor Hex lattice described in
// spec.md §3: for interior cell (r,c) the neighbors are (r-1,c),
// (r-1,c+1), (r,c-1), (r,c+1), (r+1,c-1), (r+1,c). Every pair gets two
// directed edges so the graph is effectively undirected.
func buildAdjacency(g *Graph, n int) {
	link := func(r1, c1, r2, c2 int) {
		if r2 < 1 || r2 > n || c2 < 1 || c2 > n {
			return
		}
		u, _ := RowColToIndex(n, r1, c1)
		v, _ := RowColToIndex(n, r2, c2)
		g.AddEdge(u, v, 1)
		g.AddEdge(v, u, 1)
	}
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			link(r, c, r-1, c)
			link(r, c, r-1, c+1)
			link(r, c, r, c-1)
			link(r, c, r, c+1)
			link(r, c, r+1, c-1)
			link(r, c, r+1, c)
		}
	}
}

// buildBorders enumerates the four border cell sets for size n.
func buildBorders(n int) Borders {
	var b Borders
	for c := 1; c <= n; c++ {
		top, _ := RowColToIndex(n, 1, c)
		bottom, _ := RowColToIndex(n, n, c)
		b.XStart = append(b.XStart, top)
		b.XFinish = append(b.XFinish, bottom)
	}
	for r := 1; r <= n; r++ {
		left, _ := RowColToIndex(n, r, 1)
		right, _ := RowColToIndex(n, r, n)
		b.OStart = append(b.OStart, left)
		b.OFinish = append(b.OFinish, right)
	}
	return b
}

// Play commits a real move: validates the cell is on the board and
// empty, sets its marker, removes it from the empty list without
// disturbing the relative order of the remaining entries, and appends
// to the move history. Returns an error for an invalid target cell so
// the driver can re-prompt; it never panics on bad input.
func (g *Game) Play(row, col int, side Marker) error {
	if side == Empty {
		panic("board: Play called with Empty side")
	}
	idx, err := RowColToIndex(g.Size, row, col)
	if err != nil {
		return err
	}
	if g.Graph.GetMarker(idx) != Empty {
		return fmt.Errorf("board: cell (%d,%d) is already occupied", row, col)
	}

	g.Graph.SetMarker(idx, side)
	for i, e := range g.Empty {
		if e == idx {
			g.Empty = append(g.Empty[:i], g.Empty[i+1:]...)
			break
		}
	}
	g.History = append(g.History, MoveRecord{Player: side, Row: row, Col: col, At: time.Now()})
	return nil
}

// PlyCount is the number of real moves committed so far.
func (g *Game) PlyCount() int { return len(g.History) }
