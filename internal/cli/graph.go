package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/crossgen/pkg/errors"
	renderdot "github.com/matzehuels/crossgen/pkg/render/dot"
)

// newGraphCmd creates the graph command for exporting the word-crossing graph.
func newGraphCmd() *cobra.Command {
	var (
		flags  genFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph [bank|puzzle.json]",
		Short: "Export the word-crossing graph as DOT or SVG",
		Long: `Export the word-crossing graph as DOT or SVG.

Each placed word becomes a node labeled with its clue number and direction;
an edge connects two words that share a grid cell, labeled with the shared
letter. The input is a word bank (a puzzle is generated first) or a puzzle
JSON file written by 'generate -f json'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := loadPuzzle(ctx, args[0], flags)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(renderdot.ToDOT(p))
			case formatSVG:
				data, err = renderdot.RenderSVG(ctx, p)
				if err != nil {
					return err
				}
			default:
				return apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown graph format %q", format)
			}

			outputPath := output
			if outputPath == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				outputPath = base + "." + format
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Graph exported")
			printFile(outputPath)
			printStats(len(p.Placements), p.Crossings(), p.Size)

			return nil
		},
	}

	addGenFlags(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<ext>)")

	return cmd
}
