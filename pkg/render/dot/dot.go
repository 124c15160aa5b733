// Package dot renders the crossing structure of a puzzle as a Graphviz
// graph: one node per placed word, one edge per shared cell. The picture
// makes the connectivity of a layout obvious at a glance — an island in the
// graph is a word group the planner linked only internally.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// ToDOT returns a Graphviz DOT representation of the puzzle's crossing
// structure.
//
// Node representation:
//   - each placed word: box labeled "<number><A|D> <word>" (e.g. "2A CAT")
//
// Edge representation:
//   - an undirected edge per crossing, labeled with the shared letter
//
// The DOT output can be rendered with Graphviz tools (dot, neato, etc.) or
// programmatically with [RenderSVG].
func ToDOT(p *puzzle.Puzzle) string {
	var buf bytes.Buffer
	buf.WriteString("graph crossings {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontsize=10];\n\n")

	for i, pl := range p.Placements {
		fmt.Fprintf(&buf, "  w%d [label=%q];\n", i, nodeLabel(pl))
	}
	buf.WriteByte('\n')

	for i := 0; i < len(p.Placements); i++ {
		for j := i + 1; j < len(p.Placements); j++ {
			letter, ok := crossing(p.Placements[i], p.Placements[j])
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "  w%d -- w%d [label=%q];\n", i, j, string(letter))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeLabel formats a placement as "<number><A|D> <word>".
func nodeLabel(pl puzzle.Placement) string {
	dir := "A"
	if pl.Orientation == puzzle.Down {
		dir = "D"
	}
	return fmt.Sprintf("%d%s %s", pl.Number, dir, pl.Word)
}

// crossing returns the letter shared by two placements, if they cross.
// Two placements in a legal layout can share at most one cell.
func crossing(a, b puzzle.Placement) (byte, bool) {
	cells := make(map[puzzle.Coord]byte, len(a.Cells))
	for i, c := range a.Cells {
		cells[c] = a.Word[i]
	}
	for _, c := range b.Cells {
		if letter, ok := cells[c]; ok {
			return letter, true
		}
	}
	return 0, false
}

// RenderSVG renders the crossing structure as an SVG image.
//
// It generates DOT via [ToDOT], then uses the Graphviz library to render
// it. The returned bytes are a complete SVG document suitable for embedding
// in HTML or saving to a file. Errors are returned if Graphviz cannot
// initialize, the DOT is malformed, or rendering fails.
func RenderSVG(ctx context.Context, p *puzzle.Puzzle) ([]byte, error) {
	dot := ToDOT(p)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return buf.Bytes(), nil
}
