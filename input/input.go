// Package input turns raw stdin lines into typed commands, keeping the
// two hidden sentinel values (-1 to quit, -5 to dump the graph) out of
// the rest of the driver entirely: nothing downstream of Reader.Next ever sees
// a raw row/col pair that might secretly mean something else.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lewisl/hex-game/meta"
)

// Kind discriminates the variants of Command.
type Kind int

const (
	Move Kind = iota
	Quit
	Dump
)

// Command is one parsed line of player input.
type Command struct {
	Kind     Kind
	Row, Col int // only meaningful when Kind == Move
}

// Reader wraps a line-oriented source (stdin in production, a
// strings.Reader in tests) and turns "row col" lines into Commands.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader builds a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next blocks for one line and parses it. Malformed lines (not two
// integers) are reported as an error so the caller can reprompt rather
// than crash on a fat-fingered entry; io.EOF propagates unwrapped so
// callers can tell "stream closed" apart from "bad line".
func (r *Reader) Next() (Command, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Command{}, err
		}
		return Command{}, io.EOF
	}

	fields := strings.Fields(r.scanner.Text())
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("input: expected \"row col\", got %q", r.scanner.Text())
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("input: row %q is not an integer", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("input: col %q is not an integer", fields[1])
	}

	switch {
	case row == meta.QuitRow || col == meta.QuitRow:
		return Command{Kind: Quit}, nil
	case row == meta.DumpRow || col == meta.DumpRow:
		return Command{Kind: Dump}, nil
	default:
		return Command{Kind: Move, Row: row, Col: col}, nil
	}
}

// ReadYesNo reads lines until one is a y/yes/n/no answer
// (case-insensitive), skipping any other line without printing anything;
// the caller prints the question. This matches the original's tolerance for
// sloppy input on the opening "do you want to go first" prompt.
func ReadYesNo(r *Reader) (bool, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return false, err
			}
			return false, io.EOF
		}
		switch strings.ToLower(strings.TrimSpace(r.scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
