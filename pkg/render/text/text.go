// Package text renders a finished puzzle for terminal output: a monospace
// grid followed by the Across/Down clue lists. The CLI layers color on top
// with lipgloss; this package emits plain text only so output stays usable
// in pipes and files.
package text

import (
	"fmt"
	"strings"

	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// Options controls the text output.
type Options struct {
	// Solution prints the answer letters; otherwise letter cells show
	// an underscore and only the blocked cells differ.
	Solution bool
}

// Render produces the terminal representation of the puzzle.
func Render(p *puzzle.Puzzle, opts Options) string {
	var b strings.Builder

	writeGrid(&b, p, opts)
	b.WriteByte('\n')
	writeClues(&b, "Across", p.Across())
	b.WriteByte('\n')
	writeClues(&b, "Down", p.Down())

	return b.String()
}

func writeGrid(b *strings.Builder, p *puzzle.Puzzle, opts Options) {
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			letter, ok := p.LetterAt(r, c)
			switch {
			case !ok:
				b.WriteByte('.')
			case opts.Solution:
				b.WriteByte(letter)
			default:
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}
}

func writeClues(b *strings.Builder, heading string, placements []puzzle.Placement) {
	fmt.Fprintf(b, "%s:\n", heading)
	for _, pl := range placements {
		fmt.Fprintf(b, "  %d. %s (%d)\n", pl.Number, pl.Clue, len(pl.Word))
	}
}
