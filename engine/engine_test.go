package engine

import (
	"testing"

	"github.com/lewisl/hex-game/board"
)

func TestNewAssignsComputerTheOtherSide(t *testing.T) {
	e, err := New(3, 5, board.X, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.HumanSide != board.X {
		t.Errorf("expected HumanSide X, got %v", e.HumanSide)
	}
	if e.ComputerSide != board.O {
		t.Errorf("expected ComputerSide O, got %v", e.ComputerSide)
	}
	if e.State != HumanToMove {
		t.Errorf("expected initial state HumanToMove, got %v", e.State)
	}
}

func TestNewRejectsEmptyHumanSide(t *testing.T) {
	if _, err := New(3, 5, board.Empty, 1); err == nil {
		t.Fatal("expected an error for an Empty human side, got nil")
	}
}

func TestPlayHumanOutOfTurnIsRejected(t *testing.T) {
	e, err := New(3, 5, board.O, 1) // computer plays X, so computer moves first
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.State != ComputerToMove {
		t.Fatalf("expected initial state ComputerToMove, got %v", e.State)
	}
	if err := e.PlayHuman(1, 1); err == nil {
		t.Error("expected an error playing out of turn, got nil")
	}
}

func TestPlayComputerOutOfTurnPanics(t *testing.T) {
	e, err := New(3, 5, board.X, 1) // human plays X, so human moves first
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.State != HumanToMove {
		t.Fatalf("expected initial state HumanToMove, got %v", e.State)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected PlayComputer to panic out of turn")
		}
	}()
	e.PlayComputer()
}

func TestShortGameCannotEndBeforeMinimumPly(t *testing.T) {
	// On a 3x3 board the minimum winning ply is 2*3-1 = 5; after one
	// human move the game must still be ongoing.
	e, err := New(3, 5, board.X, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.PlayHuman(1, 1); err != nil {
		t.Fatalf("PlayHuman(1, 1) failed: %v", err)
	}
	if e.State.Over() {
		t.Error("expected the game to still be ongoing after one ply")
	}
	if e.State != ComputerToMove {
		t.Errorf("expected state ComputerToMove, got %v", e.State)
	}
}

func TestFullStraightChainEndsTheGame(t *testing.T) {
	// The minimum ply for a win is 2N-1 (here, 5): each of X's moves is
	// interleaved with an O move that plays elsewhere on the board, so
	// driving the two sides directly through Game.Play plus evaluate
	// (rather than through PlayComputer, which would pick O's move via
	// the selector and might block the column) keeps the scenario
	// deterministic.
	e, err := New(3, 5, board.X, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	moves := []struct {
		row, col int
		side     board.Marker
	}{
		{1, 1, board.X},
		{1, 2, board.O},
		{2, 1, board.X},
		{1, 3, board.O},
		{3, 1, board.X},
	}
	for i, m := range moves {
		if err := e.Game.Play(m.row, m.col, m.side); err != nil {
			t.Fatalf("move %d: Play(%d, %d, %v) failed: %v", i, m.row, m.col, m.side, err)
		}
		e.evaluate(m.side)
		if i < len(moves)-1 && e.State.Over() {
			t.Fatalf("move %d: game ended early", i)
		}
	}

	if e.State != HumanWins {
		t.Errorf("expected state HumanWins, got %v", e.State)
	}
	if !e.State.Over() {
		t.Error("expected the game to be over")
	}
}
