package connect

import (
	"testing"

	"github.com/lewisl/hex-game/board"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, g *board.Game, side board.Marker, cells [][2]int) {
	for _, rc := range cells {
		require.NoError(t, g.Play(rc[0], rc[1], side))
	}
}

func TestFindEndsDetectsStraightChain(t *testing.T) {
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)
	play(t, g, board.X, [][2]int{{1, 1}, {2, 1}, {3, 1}})

	d := NewDetector(g.Graph.Len())
	require.Equal(t, board.X, d.FindEnds(g, board.X, false))
}

func TestFindEndsReportsEmptyWhenNoChain(t *testing.T) {
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)
	play(t, g, board.X, [][2]int{{1, 1}, {3, 1}}) // not connected

	d := NewDetector(g.Graph.Len())
	require.Equal(t, board.Empty, d.FindEnds(g, board.X, false))
}

func TestFindEndsWholeBoardReturnsOpponentWhenSideHasNoChain(t *testing.T) {
	g, err := board.NewGame(3, 2)
	require.NoError(t, err)
	// fill the whole board so a winner must exist, with O the winner:
	// O holds the whole middle row, which cuts X's top row off from its
	// bottom row
	play(t, g, board.O, [][2]int{{2, 1}, {2, 2}, {2, 3}})
	play(t, g, board.X, [][2]int{{1, 1}, {1, 2}, {1, 3}, {3, 1}, {3, 2}, {3, 3}})

	d := NewDetector(g.Graph.Len())
	require.Equal(t, board.O, d.FindEnds(g, board.X, true))
}

func TestFindEndsPanicsOnEmptySide(t *testing.T) {
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)
	d := NewDetector(g.Graph.Len())
	require.Panics(t, func() { d.FindEnds(g, board.Empty, false) })
}

func TestFindEndsIsRepeatableAcrossCalls(t *testing.T) {
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)
	play(t, g, board.X, [][2]int{{1, 1}, {2, 1}, {3, 1}})

	d := NewDetector(g.Graph.Len())
	for i := 0; i < 5; i++ {
		require.Equal(t, board.X, d.FindEnds(g, board.X, false))
	}
}

func TestUsesDiagonalLatticeConnection(t *testing.T) {
	// (1,1) and (2,1) are adjacent per the rhombic lattice's
	// down-left/down edge, but (1,2) and (2,1) are also adjacent per
	// the down-left offset from (1,2). Verify the lattice connection
	// that doesn't line up on a straight column still counts.
	g, err := board.NewGame(3, 1)
	require.NoError(t, err)
	play(t, g, board.X, [][2]int{{1, 2}, {2, 1}, {3, 1}})

	d := NewDetector(g.Graph.Len())
	require.Equal(t, board.X, d.FindEnds(g, board.X, false))
}
