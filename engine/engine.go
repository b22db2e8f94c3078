// Package engine drives one game of Hex to completion: it owns the
// board, the connectivity detector, and the move selector, and
// sequences every ply through validate, commit, then evaluate.
package engine

import (
	"fmt"

	"github.com/lewisl/hex-game/board"
	"github.com/lewisl/hex-game/connect"
	"github.com/lewisl/hex-game/montecarlo"
	"github.com/rs/zerolog/log"
)

// State is the driver's current phase.
type State int

const (
	HumanToMove State = iota
	ComputerToMove
	HumanWins
	ComputerWins
)

func (s State) String() string {
	switch s {
	case HumanToMove:
		return "human to move"
	case ComputerToMove:
		return "computer to move"
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	default:
		return "unknown"
	}
}

// Over reports whether the game has a decided winner.
func (s State) Over() bool { return s == HumanWins || s == ComputerWins }

// Engine is a single game's driver: it owns the board and the
// collaborators needed to evaluate moves, and is not safe to share
// between concurrent callers.
type Engine struct {
	Game         *board.Game
	Detector     *connect.Detector
	Selector     *montecarlo.Selector
	HumanSide    board.Marker
	ComputerSide board.Marker
	NTrials      int
	State        State
}

// New builds an n x n game with the given human side and trial count.
// Whoever plays X goes first, matching the original's opening
// convention ("do you want to go first? ... you go first playing X
// markers"); NewGame's own validation of n surfaces as an error here.
func New(n, nTrials int, humanSide board.Marker, seed uint64) (*Engine, error) {
	if humanSide == board.Empty {
		return nil, fmt.Errorf("engine: human side must be X or O")
	}
	g, err := board.NewGame(n, seed)
	if err != nil {
		return nil, err
	}
	startState := ComputerToMove
	if humanSide == board.X {
		startState = HumanToMove
	}
	selector := montecarlo.NewSelector(g.Graph.Len(),
		montecarlo.WithMetrics(montecarlo.NewCollector()),
		montecarlo.WithProgress(),
	)
	e := &Engine{
		Game:         g,
		Detector:     connect.NewDetector(g.Graph.Len()),
		Selector:     selector,
		HumanSide:    humanSide,
		ComputerSide: humanSide.Opponent(),
		NTrials:      nTrials,
		State:        startState,
	}
	log.Info().
		Str("game", g.ID.String()).
		Int("size", n).
		Int("trials", nTrials).
		Str("human", humanSide.String()).
		Msg("game started")
	return e, nil
}

// PlayHuman commits the human's move at (row, col) and evaluates the
// resulting position. It returns an error without changing state if
// it isn't the human's turn or the cell is unplayable.
func (e *Engine) PlayHuman(row, col int) error {
	if e.State != HumanToMove {
		return fmt.Errorf("engine: not human's turn (state is %s)", e.State)
	}
	if err := e.Game.Play(row, col, e.HumanSide); err != nil {
		return err
	}
	log.Info().Int("ply", e.Game.PlyCount()).Str("side", e.HumanSide.String()).
		Int("row", row).Int("col", col).Msg("move played")
	e.evaluate(e.HumanSide)
	return nil
}

// PlayComputer evaluates every empty cell with the Monte Carlo selector,
// commits the best one, and evaluates the resulting position. It panics
// if called out of turn, since the driver loop is the only caller and
// an out-of-turn call is a programming error, not bad input.
func (e *Engine) PlayComputer() (row, col int) {
	if e.State != ComputerToMove {
		panic("engine: PlayComputer called when it is not the computer's turn")
	}
	row, col = e.Selector.ChooseMove(e.Game, e.ComputerSide, e.HumanSide, e.NTrials)
	if err := e.Game.Play(row, col, e.ComputerSide); err != nil {
		panic(fmt.Sprintf("engine: selector returned an unplayable cell: %v", err))
	}
	log.Info().Int("ply", e.Game.PlyCount()).Str("side", e.ComputerSide.String()).
		Int("row", row).Int("col", col).Msg("move played")
	e.evaluate(e.ComputerSide)
	return row, col
}

// evaluate checks whether the side that just moved has completed a
// border-to-border chain, then either ends the game or hands the turn
// to the other side. A chain is geometrically impossible before ply
// 2N-1 (the fewest stones that can span a border-to-border path while
// the opponent holds every other cell on it), so the check is skipped
// below that ply purely as a cost saving — it never changes the
// outcome.
func (e *Engine) evaluate(mover board.Marker) {
	minPly := 2*e.Game.Size - 1
	if e.Game.PlyCount() >= minPly && e.Detector.FindEnds(e.Game, mover, false) == mover {
		if mover == e.HumanSide {
			e.State = HumanWins
		} else {
			e.State = ComputerWins
		}
		log.Info().Str("winner", mover.String()).Int("plies", e.Game.PlyCount()).Msg("game over")
		return
	}
	if e.State == HumanToMove {
		e.State = ComputerToMove
	} else {
		e.State = HumanToMove
	}
}
