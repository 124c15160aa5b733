package puzzle

// Entry is an immutable (word, clue) pair from the word bank.
type Entry struct {
	Word string `json:"word" bson:"word" toml:"word"`
	Clue string `json:"clue" bson:"clue" toml:"clue"`
}

// Placement records where a word ended up on the grid. Number is zero until
// [Number] assigns clue numbers to the finished layout.
type Placement struct {
	Word        string      `json:"word" bson:"word"`
	Clue        string      `json:"clue" bson:"clue"`
	Row         int         `json:"row" bson:"row"`
	Col         int         `json:"col" bson:"col"`
	Orientation Orientation `json:"orientation" bson:"orientation"`
	Cells       []Coord     `json:"cells" bson:"cells"`
	Number      int         `json:"number,omitempty" bson:"number,omitempty"`
}

// newPlacement builds a Placement for entry starting at (row, col) in
// orientation o, with its full cell span in order.
func newPlacement(entry Entry, row, col int, o Orientation) Placement {
	dr, dc := o.delta()
	cells := make([]Coord, len(entry.Word))
	for i := range entry.Word {
		cells[i] = Coord{Row: row + dr*i, Col: col + dc*i}
	}
	return Placement{
		Word:        entry.Word,
		Clue:        entry.Clue,
		Row:         row,
		Col:         col,
		Orientation: o,
		Cells:       cells,
	}
}

// Start returns the placement's start cell.
func (p Placement) Start() Coord {
	return Coord{Row: p.Row, Col: p.Col}
}
