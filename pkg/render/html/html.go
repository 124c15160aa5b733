// Package html renders a finished puzzle as a standalone HTML page: the
// grid as a table with one input box per letter cell, number badges on
// entry start cells, blocked styling on empty cells, and the Across/Down
// clue lists sorted ascending by clue number.
//
// The renderer is a pure consumer: it reads the Puzzle and produces bytes.
// It never requires a render target to exist and holds no state between
// calls.
package html

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// Options controls the HTML output.
type Options struct {
	// Title is the page heading; the puzzle ID is used when empty.
	Title string

	// Solution prefills the input boxes with the answer letters.
	Solution bool
}

// cellView is one grid cell prepared for the template.
type cellView struct {
	Blocked bool
	Number  int
	Letter  string // prefilled value, empty unless Options.Solution
}

// clueView is one clue list row.
type clueView struct {
	Number int
	Clue   string
	Length int
}

// pageData is the template root.
type pageData struct {
	Title  string
	Size   int
	Grid   [][]cellView
	Across []clueView
	Down   []clueView
}

// Render produces a complete HTML document for the puzzle.
func Render(p *puzzle.Puzzle, opts Options) ([]byte, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil puzzle")
	}

	title := opts.Title
	if title == "" {
		title = "Crossword " + p.ID
	}

	numbers := p.StartNumbers()
	grid := make([][]cellView, p.Size)
	for r := 0; r < p.Size; r++ {
		grid[r] = make([]cellView, p.Size)
		for c := 0; c < p.Size; c++ {
			letter, ok := p.LetterAt(r, c)
			if !ok {
				grid[r][c] = cellView{Blocked: true}
				continue
			}
			cv := cellView{Number: numbers[puzzle.Coord{Row: r, Col: c}]}
			if opts.Solution {
				cv.Letter = string(letter)
			}
			grid[r][c] = cv
		}
	}

	data := pageData{
		Title:  title,
		Size:   p.Size,
		Grid:   grid,
		Across: clueList(p.Across()),
		Down:   clueList(p.Down()),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render puzzle %s", p.ID)
	}
	return buf.Bytes(), nil
}

func clueList(placements []puzzle.Placement) []clueView {
	out := make([]clueView, len(placements))
	for i, pl := range placements {
		out[i] = clueView{Number: pl.Number, Clue: pl.Clue, Length: len(pl.Word)}
	}
	return out
}

var pageTemplate = template.Must(template.New("puzzle").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem; }
  table.grid { border-collapse: collapse; }
  table.grid td { width: 2.2rem; height: 2.2rem; border: 1px solid #999; position: relative; padding: 0; }
  td.blocked { background: #222; }
  td .num { position: absolute; top: 1px; left: 2px; font-size: 0.55rem; color: #555; }
  td input { width: 100%; height: 100%; border: 0; text-align: center; font-size: 1.1rem; text-transform: uppercase; }
  .clues { display: flex; gap: 3rem; margin-top: 1.5rem; }
  .clues h2 { font-size: 1rem; }
  .clues ol { padding-left: 1.5rem; }
  .clues li { margin-bottom: 0.25rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table class="grid">
{{- range .Grid}}
  <tr>
  {{- range .}}
    {{- if .Blocked}}
    <td class="blocked"></td>
    {{- else}}
    <td>{{if .Number}}<span class="num">{{.Number}}</span>{{end}}<input maxlength="1" value="{{.Letter}}"></td>
    {{- end}}
  {{- end}}
  </tr>
{{- end}}
</table>
<div class="clues">
  <div>
    <h2>Across</h2>
    <ol>
    {{- range .Across}}
      <li value="{{.Number}}">{{.Clue}} ({{.Length}})</li>
    {{- end}}
    </ol>
  </div>
  <div>
    <h2>Down</h2>
    <ol>
    {{- range .Down}}
      <li value="{{.Number}}">{{.Clue}} ({{.Length}})</li>
    {{- end}}
    </ol>
  </div>
</div>
</body>
</html>
`))
