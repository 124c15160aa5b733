package puzzle

import (
	"slices"

	"github.com/matzehuels/crossgen/pkg/errors"
)

// Plan lays out every entry on the grid using backtracking search, and
// returns one Placement per entry in placement order.
//
// The first (longest) word is seeded horizontally centered on the middle
// row. Each subsequent word is intersected with the partial layout: for
// every already-placed word in placement order, every cell of that word
// left to right, and every matching letter of the new word in order, the
// aligned orthogonal position is tried. A legal candidate is placed and the
// remaining words are planned recursively; on failure the placement is
// undone and the next candidate tried. This candidate order is part of the
// contract: it determines which of several legal layouts is produced.
//
// Plan either places every word or fails as a whole: on a PLANNING_FAILED
// error the grid is restored to its pre-call state and no partial result
// escapes. The grid must be empty-ish in the sense that Plan does not
// account for letters it did not place itself; callers normally pass a
// fresh grid.
func Plan(g *Grid, entries []Entry) ([]Placement, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	ordered := sortByLength(entries)

	// Seed the longest word across the middle row, horizontally centered.
	first := ordered[0]
	row := g.Size() / 2
	col := g.Size()/2 - len(first.Word)/2
	if !g.CanPlace(first.Word, row, col, Across) {
		return nil, errors.New(errors.ErrCodePlanningFailed,
			"seed word %q does not fit a %d×%d grid", first.Word, g.Size(), g.Size())
	}
	seedCells := g.Place(first.Word, row, col, Across)

	placements := make([]Placement, 0, len(ordered))
	placements = append(placements, newPlacement(first, row, col, Across))

	if planFrom(g, ordered, 1, &placements) {
		return placements, nil
	}

	g.Remove(seedCells)
	return nil, errors.New(errors.ErrCodePlanningFailed,
		"no layout fits all %d words on a %d×%d grid", len(ordered), g.Size(), g.Size())
}

// planFrom tries to place ordered[i:] given the current partial layout.
// It returns true once every remaining word is placed; otherwise it leaves
// the grid and placements exactly as it found them.
func planFrom(g *Grid, ordered []Entry, i int, placements *[]Placement) bool {
	if i == len(ordered) {
		return true
	}
	entry := ordered[i]
	word := entry.Word

	// Only intersect with words placed before this level; deeper recursion
	// appends and truncates below this index.
	placed := len(*placements)
	for pi := 0; pi < placed; pi++ {
		host := (*placements)[pi]
		for ci, cell := range host.Cells {
			hostLetter := host.Word[ci]
			for j := 0; j < len(word); j++ {
				if word[j] != hostLetter {
					continue
				}
				o := host.Orientation.Orthogonal()
				row, col := cell.Row, cell.Col
				if o == Down {
					row -= j
				} else {
					col -= j
				}
				if !g.CanPlace(word, row, col, o) {
					continue
				}

				undo := g.Place(word, row, col, o)
				*placements = append(*placements, newPlacement(entry, row, col, o))
				if planFrom(g, ordered, i+1, placements) {
					return true
				}
				*placements = (*placements)[:placed]
				g.Remove(undo)
			}
		}
	}
	return false
}

// PlanBestEffort is the non-backtracking fallback planner: it makes a single
// pass over the word list, placing each word at the first legal intersection
// and silently moving on when none exists. Words that could not be placed
// are returned in skipped, so the caller always sees what was dropped.
//
// This is strictly weaker than [Plan] — it can fail to place words that a
// backtracking search would fit — and must never be used where "every word
// placed" is required.
func PlanBestEffort(g *Grid, entries []Entry) (placed []Placement, skipped []Entry) {
	if len(entries) == 0 {
		return nil, nil
	}

	ordered := sortByLength(entries)

	first := ordered[0]
	row := g.Size() / 2
	col := g.Size()/2 - len(first.Word)/2
	if !g.CanPlace(first.Word, row, col, Across) {
		return nil, ordered
	}
	g.Place(first.Word, row, col, Across)
	placed = append(placed, newPlacement(first, row, col, Across))

next:
	for _, entry := range ordered[1:] {
		word := entry.Word
		for _, host := range placed {
			for ci, cell := range host.Cells {
				for j := 0; j < len(word); j++ {
					if word[j] != host.Word[ci] {
						continue
					}
					o := host.Orientation.Orthogonal()
					r, c := cell.Row, cell.Col
					if o == Down {
						r -= j
					} else {
						c -= j
					}
					if g.CanPlace(word, r, c, o) {
						g.Place(word, r, c, o)
						placed = append(placed, newPlacement(entry, r, c, o))
						continue next
					}
				}
			}
		}
		skipped = append(skipped, entry)
	}
	return placed, skipped
}

// sortByLength returns a copy of entries stably sorted by descending word
// length. Longer words first maximizes early constraint propagation; the
// stable sort preserves the caller's order among equal lengths, which is how
// a shuffled bank produces layout variety.
func sortByLength(entries []Entry) []Entry {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		if d := len(b.Word) - len(a.Word); d != 0 {
			return d
		}
		return 0
	})
	return ordered
}

// Verify checks the final-grid invariants for a completed layout: every
// placement's letters are on the grid, and flank isolation holds for every
// placement against the finished grid. It exists for tests and diagnostics;
// a layout produced by [Plan] always verifies.
func Verify(g *Grid, placements []Placement) error {
	for _, p := range placements {
		dr, dc := p.Orientation.delta()
		for i := 0; i < len(p.Word); i++ {
			cell, ok := g.At(p.Row+dr*i, p.Col+dc*i)
			if !ok || !cell.Filled || cell.Letter != p.Word[i] {
				return errors.New(errors.ErrCodeInternal,
					"placement %q corrupt at offset %d", p.Word, i)
			}
		}
		end := len(p.Word) - 1
		if g.filled(p.Row-dr, p.Col-dc) || g.filled(p.Row+dr*(end+1), p.Col+dc*(end+1)) {
			return errors.New(errors.ErrCodeInternal,
				"placement %q has a filled flank cell", p.Word)
		}
	}
	return nil
}

// Words returns the placed words in placement order, for logs and tests.
func Words(placements []Placement) []string {
	words := make([]string, len(placements))
	for i, p := range placements {
		words[i] = p.Word
	}
	return words
}
