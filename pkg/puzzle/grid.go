package puzzle

import (
	"strings"

	"github.com/matzehuels/crossgen/pkg/errors"
)

// Orientation is the direction a placed word runs on the grid.
type Orientation string

// The two word orientations.
const (
	Across Orientation = "across"
	Down   Orientation = "down"
)

// Valid reports whether o is one of the two known orientations.
func (o Orientation) Valid() bool {
	return o == Across || o == Down
}

// Orthogonal returns the other orientation.
func (o Orientation) Orthogonal() Orientation {
	if o == Across {
		return Down
	}
	return Across
}

// delta returns the per-letter (row, col) step for the orientation.
func (o Orientation) delta() (dr, dc int) {
	if o == Across {
		return 0, 1
	}
	return 1, 0
}

// Coord is a (row, col) grid coordinate.
type Coord struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Cell is a single grid cell. The Filled flag distinguishes an empty cell
// from a letter cell explicitly; Letter is meaningless while Filled is false.
// Number is assigned by [Number] to cells that start an entry, zero otherwise.
type Cell struct {
	Letter byte
	Filled bool
	Number int
}

// Grid is a fixed-size square matrix of cells. The dimension never changes
// after construction. Cells transition empty→letter only through [Grid.Place]
// and letter→empty only through [Grid.Remove].
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if err := errors.ValidateGridSize(size); err != nil {
		return nil, err
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// At returns the cell at (row, col). The second result is false when the
// coordinate is out of bounds.
func (g *Grid) At(row, col int) (Cell, bool) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// filled reports whether (row, col) is in bounds and holds a letter.
// Out-of-bounds cells count as empty, which is exactly what the isolation
// rules need at the grid border.
func (g *Grid) filled(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.cells[row][col].Filled
}

// CanPlace reports whether word may legally start at (row, col) running in
// orientation o. It is a pure predicate: no side effects, deterministic for
// an unmodified grid.
//
// The rules checked are, in order: bounds, flank isolation, then per cell
// either overlap compatibility (filled cells must already hold the word's
// letter) or perpendicular isolation (new letters must not touch parallel
// neighbors). See the package documentation for the full rule statement.
func (g *Grid) CanPlace(word string, row, col int, o Orientation) bool {
	n := len(word)
	if n == 0 || !o.Valid() {
		return false
	}
	dr, dc := o.delta()
	endRow, endCol := row+dr*(n-1), col+dc*(n-1)
	if row < 0 || col < 0 || endRow >= g.size || endCol >= g.size {
		return false
	}

	// Flank isolation: the cells just before and after the span must be
	// empty, otherwise this word would concatenate with an existing run.
	if g.filled(row-dr, col-dc) || g.filled(endRow+dr, endCol+dc) {
		return false
	}

	for i := 0; i < n; i++ {
		r, c := row+dr*i, col+dc*i
		cell := g.cells[r][c]
		if cell.Filled {
			// Intentional crossing: the letters must agree, and the
			// perpendicular neighbor check does not apply.
			if cell.Letter != word[i] {
				return false
			}
			continue
		}
		// This word supplies a new letter here, so the perpendicular
		// neighbors must be empty or an unintended fragment would form.
		if g.filled(r+dc, c+dr) || g.filled(r-dc, c-dr) {
			return false
		}
	}
	return true
}

// Place writes word starting at (row, col) in orientation o and returns the
// cells this call filled, in span order. Cells that already held the
// matching letter (crossings) are left untouched and not returned, so that
// [Grid.Remove] of the returned list is an exact inverse.
//
// The caller must have validated the placement with [Grid.CanPlace]; Place
// itself performs no legality checks.
func (g *Grid) Place(word string, row, col int, o Orientation) []Coord {
	dr, dc := o.delta()
	written := make([]Coord, 0, len(word))
	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i
		if g.cells[r][c].Filled {
			continue
		}
		g.cells[r][c] = Cell{Letter: word[i], Filled: true}
		written = append(written, Coord{Row: r, Col: c})
	}
	return written
}

// Remove resets every listed cell to empty. Passing the slice returned by
// [Grid.Place] restores the grid to its exact pre-Place state; this is the
// backtracking undo primitive.
func (g *Grid) Remove(cells []Coord) {
	for _, c := range cells {
		g.cells[c.Row][c.Col] = Cell{}
	}
}

// Rows returns the grid as one string per row, using '.' for empty cells.
// This is the canonical serialization form consumed by [New] and renderers.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		b.Reset()
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Filled {
				b.WriteByte(g.cells[r][c].Letter)
			} else {
				b.WriteByte(emptyCell)
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// emptyCell marks an empty (blocked) cell in the string form of a grid.
const emptyCell = '.'

// String renders the grid for debugging: one row per line, letters separated
// by spaces, '.' for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if g.cells[r][c].Filled {
				b.WriteByte(g.cells[r][c].Letter)
			} else {
				b.WriteByte(emptyCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
