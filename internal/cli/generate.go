package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/crossgen/pkg/bank"
	apperrors "github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/pipeline"
	"github.com/matzehuels/crossgen/pkg/puzzle"
	renderdot "github.com/matzehuels/crossgen/pkg/render/dot"
	renderhtml "github.com/matzehuels/crossgen/pkg/render/html"
	rendertext "github.com/matzehuels/crossgen/pkg/render/text"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatHTML = "html"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// genFlags holds the generation flags shared by generate, preview and graph.
type genFlags struct {
	size       int   // grid dimension
	seed       int64 // shuffle seed
	shuffle    bool  // shuffle the bank before planning
	bestEffort bool  // drop unfittable words instead of failing
}

// addGenFlags registers the shared generation flags on cmd.
func addGenFlags(cmd *cobra.Command, f *genFlags) {
	cmd.Flags().IntVarP(&f.size, "size", "n", pipeline.DefaultSize, "grid dimension (NxN)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "shuffle seed (implies --shuffle)")
	cmd.Flags().BoolVar(&f.shuffle, "shuffle", false, "shuffle the bank before planning")
	cmd.Flags().BoolVar(&f.bestEffort, "best-effort", false, "skip words that do not fit instead of failing")
}

// options converts the flags into pipeline options.
func (f genFlags) options(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Size:       f.size,
		Shuffle:    f.shuffle || f.seed != 0,
		Seed:       f.seed,
		BestEffort: f.bestEffort,
		Logger:     logger,
	}
}

// newGenerateCmd creates the generate command for building puzzles from word banks.
//
// Default settings:
//   - size: 15x15
//   - format: text
//   - output: <bank>.puzzle.<ext> next to the input file
func newGenerateCmd() *cobra.Command {
	var (
		flags    genFlags
		format   string
		output   string
		solution bool
		title    string
	)

	cmd := &cobra.Command{
		Use:   "generate [bank]",
		Short: "Generate a crossword puzzle from a word bank",
		Long: `Generate a crossword puzzle from a word bank.

The bank is a TOML file with [[entries]] tables or a plain text file with
one WORD,clue pair per line. Words are placed with a backtracking planner
so that every word crosses at least one other; the run fails if no complete
layout exists. Use --best-effort to drop unfittable words instead, or
--shuffle with --seed to explore alternative layouts.

Formats: text (terminal grid), html (playable page), json (machine-readable
puzzle), dot (crossing graph), svg (rendered crossing graph).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], flags, format, output, solution, title)
		},
	}

	addGenFlags(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, html, json, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <bank>.puzzle.<ext>)")
	cmd.Flags().BoolVar(&solution, "solution", false, "include answer letters in text/html output")
	cmd.Flags().StringVar(&title, "title", "", "puzzle title for html output (default: bank title)")

	return cmd
}

// runGenerate loads the bank, runs the pipeline, and writes the rendered puzzle.
func runGenerate(ctx context.Context, input string, flags genFlags, format, output string, solution bool, title string) error {
	logger := loggerFromContext(ctx)

	b, err := bank.Load(input)
	if err != nil {
		return err
	}
	if title == "" {
		title = b.Title
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d words...", len(b.Entries)))
	spinner.Start()

	p, err := pipeline.Generate(ctx, b.Entries, flags.options(logger))
	if err != nil {
		spinner.StopWithError("Planning failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Placed %d words", len(p.Placements)))
	if dropped := len(b.Entries) - len(p.Placements); dropped > 0 {
		printWarning("%d of %d words did not fit and were dropped", dropped, len(b.Entries))
	}

	data, err := renderPuzzle(ctx, p, format, title, solution)
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".puzzle" + extensionFor(format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Puzzle complete")
	printFile(outputPath)
	printStats(len(p.Placements), p.Crossings(), p.Size)
	printNewline()
	printNextStep("Preview", "crossgen preview "+input)

	return nil
}

// renderPuzzle serializes p in the requested format.
func renderPuzzle(ctx context.Context, p *puzzle.Puzzle, format, title string, solution bool) ([]byte, error) {
	switch format {
	case formatText:
		return []byte(rendertext.Render(p, rendertext.Options{Solution: solution})), nil
	case formatHTML:
		return renderhtml.Render(p, renderhtml.Options{Title: title, Solution: solution})
	case formatJSON:
		return json.MarshalIndent(p, "", "  ")
	case formatDOT:
		return []byte(renderdot.ToDOT(p)), nil
	case formatSVG:
		return renderdot.RenderSVG(ctx, p)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}

// extensionFor maps a format to its default file extension.
func extensionFor(format string) string {
	if format == formatText {
		return ".txt"
	}
	return "." + format
}

// loadPuzzle reads a puzzle either from a generated JSON file or by running
// the pipeline over a word bank, depending on the input extension.
func loadPuzzle(ctx context.Context, input string, flags genFlags) (*puzzle.Puzzle, error) {
	if filepath.Ext(input) == ".json" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read puzzle %s", input)
		}
		var p puzzle.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "parse puzzle %s", input)
		}
		return &p, nil
	}

	b, err := bank.Load(input)
	if err != nil {
		return nil, err
	}
	return pipeline.Generate(ctx, b.Entries, flags.options(loggerFromContext(ctx)))
}
