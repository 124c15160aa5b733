// Package pipeline is the unified entry point for puzzle generation, used
// by both the CLI and the HTTP server. It wires the stages together:
// optional shuffle for display variety, grid construction, layout planning
// (backtracking by default, best-effort on request), clue numbering, and
// capture of the finished Puzzle.
package pipeline

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/crossgen/pkg/bank"
	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// DefaultSize is the grid dimension used when the caller does not choose one.
const DefaultSize = 15

// Options controls a generation run.
type Options struct {
	// Size is the grid dimension; DefaultSize when zero.
	Size int

	// Shuffle permutes the bank with Seed before planning, varying which
	// of several legal layouts is produced.
	Shuffle bool

	// Seed drives the shuffle; ignored unless Shuffle is set.
	Seed int64

	// BestEffort switches to the weaker single-pass planner, which may
	// skip words that do not fit instead of failing the run. Skipped
	// words are logged as warnings.
	BestEffort bool

	// Logger receives progress and warnings; nil disables logging.
	Logger *log.Logger
}

// size returns the effective grid dimension.
func (o Options) size() int {
	if o.Size == 0 {
		return DefaultSize
	}
	return o.Size
}

// Generate lays out entries on a fresh grid and returns the finished,
// numbered puzzle.
//
// With the default backtracking planner the result contains every entry or
// Generate fails with PLANNING_FAILED; there is no silent partial output.
// With Options.BestEffort the result may omit words, and each omission is
// logged. The caller owns retry policy: a failed run can be retried with a
// larger size or a different seed.
func Generate(ctx context.Context, entries []puzzle.Entry, opts Options) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBank, "no entries to place")
	}

	g, err := puzzle.NewGrid(opts.size())
	if err != nil {
		return nil, err
	}

	if opts.Shuffle {
		entries = bank.Shuffle(entries, opts.Seed)
	}

	var placements []puzzle.Placement
	if opts.BestEffort {
		var skipped []puzzle.Entry
		placements, skipped = puzzle.PlanBestEffort(g, entries)
		for _, e := range skipped {
			if opts.Logger != nil {
				opts.Logger.Warnf("could not place %q, dropped from puzzle", e.Word)
			}
		}
		if len(placements) == 0 {
			return nil, errors.New(errors.ErrCodePlanningFailed,
				"no words could be placed on a %d×%d grid", g.Size(), g.Size())
		}
	} else {
		placements, err = puzzle.Plan(g, entries)
		if err != nil {
			return nil, err
		}
	}

	placements = puzzle.Number(g, placements)
	p := puzzle.New(uuid.NewString(), g, placements)

	if opts.Logger != nil {
		opts.Logger.Debugf("placed %d words on a %d×%d grid", len(placements), p.Size, p.Size)
	}
	return p, nil
}
