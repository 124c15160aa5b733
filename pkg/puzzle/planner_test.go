package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/crossgen/pkg/errors"
)

func entries(pairs ...string) []Entry {
	out := make([]Entry, 0, len(pairs))
	for _, w := range pairs {
		out = append(out, Entry{Word: w, Clue: "clue for " + w})
	}
	return out
}

func TestPlanThreeCrossLinkableWords(t *testing.T) {
	g := mustGrid(t, 10)

	placements, err := Plan(g, entries("CAT", "CAR", "ART"))
	require.NoError(t, err)
	require.Len(t, placements, 3)

	// Candidate ordering is part of the contract, so the exact layout is
	// deterministic: CAT seeds the middle row, CAR hangs off its C, ART
	// crosses the T (the A slot is blocked by CAR's second letter).
	assert.Equal(t, Placement{
		Word: "CAT", Clue: "clue for CAT",
		Row: 5, Col: 4, Orientation: Across,
		Cells: []Coord{{5, 4}, {5, 5}, {5, 6}},
	}, placements[0])
	assert.Equal(t, "CAR", placements[1].Word)
	assert.Equal(t, Coord{Row: 5, Col: 4}, placements[1].Start())
	assert.Equal(t, Down, placements[1].Orientation)
	assert.Equal(t, "ART", placements[2].Word)
	assert.Equal(t, Coord{Row: 3, Col: 6}, placements[2].Start())
	assert.Equal(t, Down, placements[2].Orientation)

	require.NoError(t, Verify(g, placements))
	assertIntersectionsAgree(t, placements)
}

func TestPlanWordLongerThanGrid(t *testing.T) {
	g := mustGrid(t, 10)

	placements, err := Plan(g, entries("DISPROPORTIONATELY", "CAT"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePlanningFailed), "want PLANNING_FAILED, got %v", err)
	assert.Nil(t, placements, "failure must not leak a partial result")
	assert.Equal(t, mustGrid(t, 10).String(), g.String(), "grid must be left untouched")
}

func TestPlanTotalFailureRestoresGrid(t *testing.T) {
	// Both words fit individually but share no letter, so the second can
	// never intersect and the whole plan fails.
	g := mustGrid(t, 10)

	_, err := Plan(g, entries("CAT", "DIG"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePlanningFailed))
	assert.Equal(t, mustGrid(t, 10).String(), g.String())
}

func TestPlanBacktracks(t *testing.T) {
	// QBQ is only placeable crossing ABCDE's B from above, which requires
	// the cell below that B to stay free. BAD's first two candidate
	// positions occupy exactly the cells that block QBQ, so the planner
	// must undo them and settle on BAD's third candidate (crossing the D).
	g := mustGrid(t, 10)

	placements, err := Plan(g, entries("ABCDE", "BAD", "QBQ"))
	require.NoError(t, err)
	require.Len(t, placements, 3)

	assert.Equal(t, Coord{Row: 3, Col: 6}, placements[1].Start(), "BAD should land on its third candidate")
	assert.Equal(t, Coord{Row: 4, Col: 4}, placements[2].Start())
	require.NoError(t, Verify(g, placements))
}

func TestPlanBestEffortWeakerThanBacktracking(t *testing.T) {
	// Same instance as TestPlanBacktracks: the greedy single-pass planner
	// commits to BAD's first candidate and then has nowhere to put QBQ.
	g := mustGrid(t, 10)

	placed, skipped := PlanBestEffort(g, entries("ABCDE", "BAD", "QBQ"))
	assert.Len(t, placed, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, "QBQ", skipped[0].Word)
}

func TestPlanBestEffortReportsUnplaceable(t *testing.T) {
	g := mustGrid(t, 10)

	placed, skipped := PlanBestEffort(g, entries("CAT", "DIG"))
	assert.Len(t, placed, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, "DIG", skipped[0].Word)
	require.NoError(t, Verify(g, placed))
}

func TestPlanEmptyBank(t *testing.T) {
	g := mustGrid(t, 10)
	placements, err := Plan(g, nil)
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestPlanSortsByDescendingLength(t *testing.T) {
	g := mustGrid(t, 15)

	// SATURN is the longest word and must be the seed regardless of input
	// order; ties keep input order (stable sort).
	placements, err := Plan(g, entries("SUN", "SATURN", "STAR"))
	require.NoError(t, err)
	require.Len(t, placements, 3)
	assert.Equal(t, "SATURN", placements[0].Word)
	assert.Equal(t, Across, placements[0].Orientation)
	assert.Equal(t, 7, placements[0].Row)
}

func TestPlanFinalGridIsolation(t *testing.T) {
	// A denser instance: every placement on the final grid must still obey
	// flank isolation, and all crossings must agree letter-for-letter.
	g := mustGrid(t, 15)

	placements, err := Plan(g, entries("CROSSWORD", "CLUE", "DOWN", "WORD", "SOLVE"))
	require.NoError(t, err)
	require.Len(t, placements, 5)
	require.NoError(t, Verify(g, placements))
	assertIntersectionsAgree(t, placements)
}

// assertIntersectionsAgree checks that any cell shared by two placements
// carries the same letter in both words.
func assertIntersectionsAgree(t *testing.T, placements []Placement) {
	t.Helper()
	letterAt := make(map[Coord]byte)
	for _, p := range placements {
		for i, c := range p.Cells {
			if prev, ok := letterAt[c]; ok {
				assert.Equal(t, prev, p.Word[i],
					"conflicting letters at (%d,%d) in %q", c.Row, c.Col, p.Word)
				continue
			}
			letterAt[c] = p.Word[i]
		}
	}
}
