// Package puzzle implements crossword grid layout: placing a bank of words
// onto a fixed-size square grid so that crossing words share letters, and
// assigning crossword-style clue numbers to the result.
//
// # Architecture
//
// The package is layered bottom-up:
//
//   - [Grid] is the mutable N×N letter matrix with bounds-checked access.
//     It owns the placement legality rules ([Grid.CanPlace]) and the
//     reversible write primitives ([Grid.Place], [Grid.Remove]).
//   - [Plan] is the backtracking layout planner: it seeds the longest word
//     on the center row, then recursively intersects each remaining word
//     with the partial layout, undoing dead ends. It either places every
//     word or fails as a whole with PLANNING_FAILED.
//   - [PlanBestEffort] is the weaker single-pass fallback: it never
//     backtracks and may skip words that do not fit, reporting them
//     explicitly.
//   - [Number] post-processes a finished grid, assigning sequential clue
//     numbers to entry start cells in row-major scan order.
//   - [Puzzle] is the immutable result handed to renderers and stores.
//
// # Legality rules
//
// A word may occupy a span of cells when all of the following hold:
//
//  1. The span lies fully within the grid.
//  2. Every already-filled cell on the span holds the same letter the word
//     would write there (intentional crossings).
//  3. The cells immediately before and after the span are empty, so two
//     words never concatenate into one run.
//  4. Every cell where the word supplies a new letter has empty
//     perpendicular neighbors; crossing cells are exempt.
//
// Planning is single-threaded: the grid is owned by the planner during
// generation and must be treated as read-only by everyone afterwards.
package puzzle
