package puzzle

import (
	"slices"
	"time"
)

// Puzzle is the finished, immutable result of a generation run: the grid in
// its string serialization form plus the numbered placements. It is the
// value handed to renderers and stores; nothing mutates it after creation.
type Puzzle struct {
	ID         string      `json:"id" bson:"_id"`
	Size       int         `json:"size" bson:"size"`
	Rows       []string    `json:"rows" bson:"rows"`
	Placements []Placement `json:"placements" bson:"placements"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}

// New captures a finished grid and its numbered placements as a Puzzle.
func New(id string, g *Grid, placements []Placement) *Puzzle {
	return &Puzzle{
		ID:         id,
		Size:       g.Size(),
		Rows:       g.Rows(),
		Placements: placements,
		CreatedAt:  time.Now().UTC(),
	}
}

// LetterAt returns the solution letter at (row, col). The second result is
// false for empty (blocked) or out-of-bounds cells.
func (p *Puzzle) LetterAt(row, col int) (byte, bool) {
	if row < 0 || row >= len(p.Rows) || col < 0 || col >= len(p.Rows[row]) {
		return 0, false
	}
	if p.Rows[row][col] == emptyCell {
		return 0, false
	}
	return p.Rows[row][col], true
}

// StartNumbers returns the clue number for every numbered start cell.
func (p *Puzzle) StartNumbers() map[Coord]int {
	numbers := make(map[Coord]int, len(p.Placements))
	for _, pl := range p.Placements {
		if pl.Number > 0 {
			numbers[pl.Start()] = pl.Number
		}
	}
	return numbers
}

// Crossings counts the grid cells shared by two placements.
func (p *Puzzle) Crossings() int {
	seen := make(map[Coord]int)
	for _, pl := range p.Placements {
		for _, c := range pl.Cells {
			seen[c]++
		}
	}
	n := 0
	for _, count := range seen {
		if count > 1 {
			n++
		}
	}
	return n
}

// Across returns the across placements sorted ascending by clue number.
func (p *Puzzle) Across() []Placement {
	return p.byOrientation(Across)
}

// Down returns the down placements sorted ascending by clue number.
func (p *Puzzle) Down() []Placement {
	return p.byOrientation(Down)
}

func (p *Puzzle) byOrientation(o Orientation) []Placement {
	var out []Placement
	for _, pl := range p.Placements {
		if pl.Orientation == o {
			out = append(out, pl)
		}
	}
	slices.SortFunc(out, func(a, b Placement) int {
		return a.Number - b.Number
	})
	return out
}
