// meta/meta.go
package meta

// DefaultSize is the edge length used when the CLI is given no argument.
const DefaultSize = 5

// DefaultTrials is the number of Monte Carlo trials run per candidate move.
const DefaultTrials = 1000

// MinSize is the smallest playable board; smaller boards have no room for
// a chain that doesn't touch both of a side's borders on the first move.
const MinSize = 1

// DumpFilename is the fixed file the hidden "-5" input sentinel writes to.
const DumpFilename = "hex_graph.dump"

// QuitRow and DumpRow are the sentinel row values recognized at the input
// boundary; they never reach the core as raw integers (see input.Command).
const QuitRow = -1
const DumpRow = -5
