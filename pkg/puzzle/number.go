package puzzle

// Number assigns crossword-style clue numbers to a finished layout and
// returns the placements with their Number fields set.
//
// The grid is scanned in row-major order. A cell starts an entry when it is
// filled and is the leftmost cell of a horizontal run of length >= 2 or the
// topmost cell of a vertical run of length >= 2. Start cells receive
// sequential numbers from 1; a cell that starts both an across and a down
// entry receives exactly one number shared by both. The number is written
// into the grid cell (for renderers) and onto every placement whose start
// cell it is.
//
// Number is idempotent: calling it again on the same grid and placements
// reassigns identical numbers.
func Number(g *Grid, placements []Placement) []Placement {
	byStart := make(map[Coord]int)
	next := 1
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cell := &g.cells[r][c]
			if !cell.Filled || !g.startsEntry(r, c) {
				cell.Number = 0
				continue
			}
			cell.Number = next
			byStart[Coord{Row: r, Col: c}] = next
			next++
		}
	}

	for i := range placements {
		placements[i].Number = byStart[placements[i].Start()]
	}
	return placements
}

// startsEntry reports whether the filled cell at (row, col) begins an across
// or a down run of length >= 2.
func (g *Grid) startsEntry(row, col int) bool {
	if !g.filled(row, col-1) && g.filled(row, col+1) {
		return true
	}
	return !g.filled(row-1, col) && g.filled(row+1, col)
}
