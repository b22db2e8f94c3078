// Command hex plays a game of Hex against a Monte Carlo opponent on the
// terminal.
//
// Usage:
//
//	hex [size [trials]]
//
// size defaults to meta.DefaultSize and must be a positive odd integer.
// trials defaults to meta.DefaultTrials and is the number of random
// rollouts the computer runs per candidate move.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lewisl/hex-game/board"
	"github.com/lewisl/hex-game/dump"
	"github.com/lewisl/hex-game/engine"
	"github.com/lewisl/hex-game/input"
	"github.com/lewisl/hex-game/meta"
	"github.com/lewisl/hex-game/render"
)

func main() {
	flag.Parse()
	size, trials := parseArgs(flag.Args())

	stdin := input.NewReader(os.Stdin)

	fmt.Print("Do you want to play X (connects top to bottom) and go first? y/n: ")
	humanFirst, err := input.ReadYesNo(stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed reading first-move answer")
	}
	humanSide := board.O
	if humanFirst {
		humanSide = board.X
	}

	eng, err := engine.New(size, trials, humanSide, uint64(time.Now().UnixNano()))
	if err != nil {
		log.Fatal().Err(err).Msg("could not start game")
	}

	fmt.Printf("Playing on a %d x %d board. You are %s.\n", size, size, humanSide)

	for !eng.State.Over() {
		render.Board(os.Stdout, eng.Game)

		if eng.State == engine.ComputerToMove {
			row, col := eng.PlayComputer()
			fmt.Printf("Computer plays %d %d\n", row, col)
			continue
		}

		fmt.Print("row col: ")
		cmd, err := stdin.Next()
		if err != nil {
			log.Fatal().Err(err).Msg("failed reading move")
		}

		switch cmd.Kind {
		case input.Quit:
			fmt.Println("Goodbye.")
			return
		case input.Dump:
			if err := writeDump(eng.Game.Graph); err != nil {
				log.Error().Err(err).Msg("failed writing graph dump")
			} else {
				fmt.Printf("Graph written to %s\n", meta.DumpFilename)
			}
		case input.Move:
			if err := eng.PlayHuman(cmd.Row, cmd.Col); err != nil {
				fmt.Println(err)
			}
		}
	}

	render.Board(os.Stdout, eng.Game)
	fmt.Printf("%s\n", eng.State)
}

func parseArgs(args []string) (size, trials int) {
	if len(args) > 2 {
		log.Fatal().Strs("args", args).Msg("too many arguments; usage: hex [size [trials]]")
	}
	size, trials = meta.DefaultSize, meta.DefaultTrials
	if len(args) >= 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < meta.MinSize {
			log.Fatal().Str("size", args[0]).Msg("size must be a positive integer")
		}
		size = n
	}
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			log.Fatal().Str("trials", args[1]).Msg("trials must be a positive integer")
		}
		trials = n
	}
	return size, trials
}

func writeDump(g *board.Graph) error {
	f, err := os.Create(meta.DumpFilename)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump.Write(f, g)
}
