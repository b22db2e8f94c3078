// Package montecarlo chooses the computer's move by brute-force random
// rollout: for every empty cell, provisionally claim it, play out a large
// number of fully-random completions of the rest of the board, and count
// how many of them the computer ends up winning. This is deliberately not
// a tree search — there is no node reuse, no UCT, no simulation policy
// beyond a uniform shuffle.
package montecarlo

import (
	"github.com/lewisl/hex-game/board"
	"github.com/lewisl/hex-game/connect"
	"github.com/schollz/progressbar/v3"
)

// Option configures a Selector at construction time.
type Option func(*Selector)

// WithMetrics attaches a Collector; callers who don't care about timing
// can leave the default dummy collector in place.
func WithMetrics(c Collector) Option {
	return func(s *Selector) { s.metrics = c }
}

// WithProgress draws a console progress bar, one tick per candidate cell
// evaluated. It's purely cosmetic and safe to omit in tests.
func WithProgress() Option {
	return func(s *Selector) { s.showProgress = true }
}

// Selector holds every scratch buffer ChooseMove needs, sized once to the
// board's cell count and reused on every call so steady-state play does
// no further allocation.
type Selector struct {
	detector   *connect.Detector
	shuffleBuf []int // invariant: empty list with the current candidate removed
	throwaway  []int // shuffled copy of shuffleBuf, replayed into the rollout
	winCounts  []int // per-candidate tally, indexed by position in empty list
	winRates   map[int]float64
	lastSize   int

	metrics      Collector
	showProgress bool
}

// NewSelector preallocates scratch storage for a board of ncells cells.
func NewSelector(ncells int, opts ...Option) *Selector {
	s := &Selector{
		detector:   connect.NewDetector(ncells),
		shuffleBuf: make([]int, 0, ncells),
		throwaway:  make([]int, 0, ncells),
		winCounts:  make([]int, 0, ncells),
		metrics:    NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChooseMove evaluates every empty cell on g and returns the 1-based
// (row, col) of the one with the highest rollout win rate for
// computerSide, ties broken toward the lowest index in g.Empty. The board
// is left exactly as it found it: every cell probed during evaluation is
// restored to Empty before ChooseMove returns.
func (s *Selector) ChooseMove(g *board.Game, computerSide, humanSide board.Marker, nTrials int) (row, col int) {
	if computerSide == board.Empty || humanSide == board.Empty {
		panic("montecarlo: ChooseMove requires non-Empty sides")
	}
	if len(g.Empty) == 0 {
		panic("montecarlo: ChooseMove called with no empty cells")
	}

	empty := g.Empty
	n := len(empty)
	s.lastSize = g.Size

	s.winCounts = s.winCounts[:0]
	for range empty {
		s.winCounts = append(s.winCounts, 0)
	}

	s.metrics.Start(n, nTrials)

	var bar *progressbar.ProgressBar
	if s.showProgress {
		bar = progressbar.Default(int64(n), "evaluating moves")
	}

	for moveNum, candidate := range empty {
		g.Graph.SetMarker(candidate, computerSide)
		s.updateShuffleIdxs(empty, moveNum)

		wins := 0
		for trial := 0; trial < nTrials; trial++ {
			s.throwaway = append(s.throwaway[:0], s.shuffleBuf...)
			g.RNG.Shuffle(len(s.throwaway), func(i, j int) {
				s.throwaway[i], s.throwaway[j] = s.throwaway[j], s.throwaway[i]
			})

			side := humanSide
			for _, cell := range s.throwaway {
				g.Graph.SetMarker(cell, side)
				side = side.Opponent()
			}

			if s.detector.FindEnds(g, computerSide, true) == computerSide {
				wins++
			}
			s.metrics.AddTrial()
		}

		s.winCounts[moveNum] = wins
		g.Graph.SetMarker(candidate, board.Empty)

		if bar != nil {
			bar.Add(1)
		}
	}

	// Every cell this evaluation touched is exactly the current empty
	// list, so one bulk pass restores the board regardless of which
	// candidate or trial left a leftover marker behind.
	for _, cell := range empty {
		g.Graph.SetMarker(cell, board.Empty)
	}

	best := 0
	for i := 1; i < len(s.winCounts); i++ {
		if s.winCounts[i] > s.winCounts[best] {
			best = i
		}
	}

	s.winRates = make(map[int]float64, n)
	for i, cell := range empty {
		s.winRates[cell] = float64(s.winCounts[i]) / float64(nTrials)
	}

	s.metrics.Complete()

	return board.IndexToRowCol(g.Size, empty[best])
}

// WinRate reports the fraction of trials the computer won with (row, col)
// as its candidate move in the most recent ChooseMove call. The second
// return value is false if that cell wasn't a candidate that time (it was
// already occupied, or ChooseMove hasn't run yet).
func (s *Selector) WinRate(row, col int) (float64, bool) {
	if s.winRates == nil {
		return 0, false
	}
	idx, err := board.RowColToIndex(s.lastSize, row, col)
	if err != nil {
		return 0, false
	}
	rate, ok := s.winRates[idx]
	return rate, ok
}

// updateShuffleIdxs maintains the invariant "shuffleBuf equals empty with
// empty[i] omitted" in O(1) amortized work per move instead of rebuilding
// it from scratch. Going from candidate i-1 to candidate i, exactly one
// slot changes: position i-1, which re-admits empty[i-1] now that it's no
// longer the fixed candidate. The naive source this is adapted from also
// tried to write empty[i+1] into position i on every step, which is a
// harmless no-op for every i except the last — where position i doesn't
// exist in a buffer of length n-1. Skipping that last write sidesteps the
// bounds check entirely rather than special-casing it.
func (s *Selector) updateShuffleIdxs(empty []int, i int) {
	if i == 0 {
		s.shuffleBuf = append(s.shuffleBuf[:0], empty[1:]...)
		return
	}
	s.shuffleBuf[i-1] = empty[i-1]
}
