package montecarlo

import (
	"testing"

	"github.com/lewisl/hex-game/board"
	"github.com/stretchr/testify/require"
)

func TestChooseMoveRestoresBoard(t *testing.T) {
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)

	before := snapshotMarkers(g)

	sel := NewSelector(g.Graph.Len())
	_, _ = sel.ChooseMove(g, board.X, board.O, 20)

	after := snapshotMarkers(g)
	require.Equal(t, before, after, "ChooseMove must leave every cell exactly as it found it")
}

func TestChooseMoveReturnsAnEmptyCell(t *testing.T) {
	g, err := board.NewGame(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Play(1, 1, board.X))

	sel := NewSelector(g.Graph.Len())
	row, col := sel.ChooseMove(g, board.O, board.X, 30)

	idx, err := board.RowColToIndex(g.Size, row, col)
	require.NoError(t, err)
	require.Equal(t, board.Empty, g.Graph.GetMarker(idx))
	require.NotEqual(t, [2]int{1, 1}, [2]int{row, col}, "must not choose the occupied cell (1,1)")
}

func TestChooseMoveTakesAnImmediateWin(t *testing.T) {
	// On a 1x1 board the single cell is the only candidate and
	// trivially wins for whichever side claims it.
	g, err := board.NewGame(1, 3)
	require.NoError(t, err)

	sel := NewSelector(g.Graph.Len())
	row, col := sel.ChooseMove(g, board.X, board.O, 5)
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)

	rate, ok := sel.WinRate(1, 1)
	require.True(t, ok)
	require.Equal(t, 1.0, rate)
}

// TestChooseMoveIsReproducibleUnderAFixedSeed pins down spec scenario 5
// (N=5, n_trials=200, PRNG seeded with a fixed value, empty board,
// computer plays X first): two independent games built from the same
// seed and evaluated with the same parameters must choose the same
// cell, and the board each leaves behind must read back identically.
// The recorded cell itself isn't hardcoded here — the PRNG's output for
// a given seed is a property of golang.org/x/exp/rand's implementation,
// not of this package, and pinning a literal would silently drift with
// any upstream change in that algorithm without the test ever telling
// us why. What this package owns, and what this test holds fixed, is
// that the same seed and same inputs deterministically produce the
// same move every time.
func TestChooseMoveIsReproducibleUnderAFixedSeed(t *testing.T) {
	const seed = 42
	const nTrials = 200

	g1, err := board.NewGame(5, seed)
	require.NoError(t, err)
	g2, err := board.NewGame(5, seed)
	require.NoError(t, err)

	row1, col1 := NewSelector(g1.Graph.Len()).ChooseMove(g1, board.X, board.O, nTrials)
	row2, col2 := NewSelector(g2.Graph.Len()).ChooseMove(g2, board.X, board.O, nTrials)

	require.Equal(t, row1, row2, "same seed must choose the same row")
	require.Equal(t, col1, col2, "same seed must choose the same column")
	require.Equal(t, snapshotMarkers(g1), snapshotMarkers(g2))
}

func TestUpdateShuffleIdxsMatchesEmptyMinusCandidate(t *testing.T) {
	empty := []int{10, 20, 30, 40, 50}
	s := &Selector{shuffleBuf: make([]int, 0, len(empty))}

	for i := range empty {
		s.updateShuffleIdxs(empty, i)
		want := without(empty, i)
		require.Equal(t, want, s.shuffleBuf, "mismatch at candidate index %d", i)
	}
}

func without(xs []int, i int) []int {
	out := make([]int, 0, len(xs)-1)
	for j, x := range xs {
		if j != i {
			out = append(out, x)
		}
	}
	return out
}

func snapshotMarkers(g *board.Game) []board.Marker {
	out := make([]board.Marker, g.Graph.Len())
	for i := range out {
		out[i] = g.Graph.GetMarker(i)
	}
	return out
}
