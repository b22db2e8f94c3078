// Package dump reads and writes the board's adjacency graph in a plain
// line-oriented text format: a node's marker and outgoing edges are
// listed under it, one per line, indented for readability only (the
// parser does not care about leading whitespace). The format is
// intentionally line-per-line so a dump can be diffed or hand-edited.
//
//	size <number of nodes>
//	node <i>
//	    data <marker>
//	    edge <to> <cost>
//	    edge <to> <cost>
//	node <i+1>
//	    ...
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lewisl/hex-game/board"
)

// Write serializes g's adjacency list and marker table to w. Edges are
// written exactly as stored, one direction per line; a caller that
// built a bidirectional graph already has both directions as separate
// edges, so nothing here decides directionality.
func Write(w io.Writer, g *board.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "size %d\n", g.Len()); err != nil {
		return err
	}
	for node := 0; node < g.Len(); node++ {
		if _, err := fmt.Fprintf(bw, "node %d\n", node); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "    data %d\n", int(g.GetMarker(node))); err != nil {
			return err
		}
		for _, e := range g.Neighbors(node) {
			if _, err := fmt.Fprintf(bw, "    edge %d %d\n", e.To, e.Cost); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Load parses the format Write produces (or a hand-written equivalent)
// from r into a fresh Graph. The "size" line is optional; when present
// it's cross-checked against the actual node count and reported as an
// error on mismatch rather than just logged, since a caller loading a
// dump almost certainly wants that as a hard failure.
func Load(r io.Reader) (*board.Graph, error) {
	scanner := bufio.NewScanner(r)

	var declaredSize int
	nodeData := map[int]board.Marker{}
	nodeEdges := map[int][]board.Edge{}
	nodeOrder := []int{}
	currentNode := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "size":
			if len(fields) != 2 {
				return nil, fmt.Errorf("dump: malformed size line %q", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dump: bad size value in %q: %w", line, err)
			}
			declaredSize = n

		case "node":
			if len(fields) != 2 {
				return nil, fmt.Errorf("dump: malformed node line %q", line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dump: bad node id in %q: %w", line, err)
			}
			currentNode = id
			nodeOrder = append(nodeOrder, id)
			if _, exists := nodeEdges[id]; !exists {
				nodeEdges[id] = nil
			}

		case "data":
			if currentNode < 0 {
				return nil, fmt.Errorf("dump: data line %q appears before any node line", line)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("dump: malformed data line %q", line)
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dump: bad data value in %q: %w", line, err)
			}
			nodeData[currentNode] = board.Marker(v)

		case "edge":
			if currentNode < 0 {
				return nil, fmt.Errorf("dump: edge line %q appears before any node line", line)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dump: malformed edge line %q", line)
			}
			to, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dump: bad edge target in %q: %w", line, err)
			}
			cost, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dump: bad edge cost in %q: %w", line, err)
			}
			nodeEdges[currentNode] = append(nodeEdges[currentNode], board.Edge{To: to, Cost: cost})

		default:
			return nil, fmt.Errorf("dump: unrecognized line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if declaredSize != 0 && declaredSize != len(nodeOrder) {
		return nil, fmt.Errorf("dump: declared size %d does not match %d nodes found", declaredSize, len(nodeOrder))
	}

	g := board.NewGraph(len(nodeOrder))
	for _, id := range nodeOrder {
		if m, ok := nodeData[id]; ok {
			g.SetMarker(id, m)
		}
		for _, e := range nodeEdges[id] {
			g.AddEdge(id, e.To, e.Cost)
		}
	}
	return g, nil
}
