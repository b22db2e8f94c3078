// Package connect decides whether a side has formed a border-to-border
// chain on a Hex board. The frontier walk here mirrors the original
// game's find_ends: it never materializes the winning path, only
// whether one exists.
package connect

import "github.com/lewisl/hex-game/board"

// Detector holds the scratch buffers find_ends needs: the captured-cell
// set, the frontier queue, and a neighbor-expansion buffer. All three
// are allocated once and reused across calls, growing only if a larger
// board is ever passed in (which, for one Detector bound to one Game,
// never happens after the first call).
type Detector struct {
	captured []bool
	queue    []int
	front    int
	nbrBuf   []int
}

// NewDetector preallocates scratch storage for an ncells-cell board.
func NewDetector(ncells int) *Detector {
	return &Detector{captured: make([]bool, ncells), queue: make([]int, 0, ncells)}
}

func (d *Detector) reset(ncells int) {
	if cap(d.captured) < ncells {
		d.captured = make([]bool, ncells)
	} else {
		d.captured = d.captured[:ncells]
		for i := range d.captured {
			d.captured[i] = false
		}
	}
	d.queue = d.queue[:0]
	d.front = 0
}

// FindEnds reports whether side has a chain from its start border to
// its finish border on g. When wholeBoard is false (the normal
// mid-game check), a failed search returns board.Empty. When
// wholeBoard is true (only valid on a fully marked board, as the
// Monte Carlo rollout uses it), a failed search returns the opposite
// side, since exactly one side must have won.
//
// Passing board.Empty as side is a programmer error, not a board
// state the caller can legitimately ask about.
func (d *Detector) FindEnds(g *board.Game, side board.Marker, wholeBoard bool) board.Marker {
	if side == board.Empty {
		panic("connect: FindEnds called with Empty side")
	}

	d.reset(g.Graph.Len())

	for _, cell := range g.Borders.Finish(side) {
		if g.Graph.GetMarker(cell) == side && !d.captured[cell] {
			d.queue = append(d.queue, cell)
			d.captured[cell] = true
		}
	}

	start := g.Borders.Start(side)

	for d.front < len(d.queue) {
		cur := d.queue[d.front]
		if inBorder(start, cur) {
			return side
		}

		d.nbrBuf = g.Graph.NeighborsFiltered(cur, side, d.captured, d.nbrBuf)
		if len(d.nbrBuf) == 0 {
			d.front++
			continue
		}

		d.queue[d.front] = d.nbrBuf[0]
		d.captured[d.nbrBuf[0]] = true
		for _, nb := range d.nbrBuf[1:] {
			d.queue = append(d.queue, nb)
			d.captured[nb] = true
		}
	}

	if wholeBoard {
		return side.Opponent()
	}
	return board.Empty
}

func inBorder(border []int, cell int) bool {
	for _, c := range border {
		if c == cell {
			return true
		}
	}
	return false
}
