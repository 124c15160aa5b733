// Package render groups the puzzle output formats.
//
// # Overview
//
// Each subpackage turns a finished [puzzle.Puzzle] into one representation:
//
//   - [text]: monospace terminal output with Across/Down clue lists
//   - [html]: a playable, self-contained HTML page
//   - [dot]: the word-crossing graph as Graphviz DOT or rendered SVG
//
// All renderers are pure functions of the puzzle; none of them mutate it or
// hold state between calls.
//
// # Terminal Output
//
// The [text] subpackage renders a grid of underscores (or answer letters in
// solution mode) with blocked cells as dots:
//
//	out := text.Render(p, text.Options{Solution: false})
//	fmt.Print(out)
//
// # HTML Output
//
// The [html] subpackage produces a standalone page with an input box per
// letter cell and numbered clue lists, suitable for printing or embedding:
//
//	page, err := html.Render(p, html.Options{Title: "Sunday puzzle"})
//
// # Crossing Graph
//
// The [dot] subpackage exposes the puzzle's structure rather than its face:
// each placed word is a node and each shared cell an edge. Useful for
// debugging planner behavior and for visualizing bank connectivity.
//
//	src := dot.ToDOT(p)
//	svg, err := dot.RenderSVG(ctx, p)
//
// [text]: github.com/matzehuels/crossgen/pkg/render/text
// [html]: github.com/matzehuels/crossgen/pkg/render/html
// [dot]: github.com/matzehuels/crossgen/pkg/render/dot
// [puzzle.Puzzle]: github.com/matzehuels/crossgen/pkg/puzzle
package render
