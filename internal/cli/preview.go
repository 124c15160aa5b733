package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rendertext "github.com/matzehuels/crossgen/pkg/render/text"
)

// newPreviewCmd creates the preview command for terminal display of puzzles.
func newPreviewCmd() *cobra.Command {
	var (
		flags       genFlags
		solution    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "preview [bank|puzzle.json]",
		Short: "Preview a puzzle in the terminal",
		Long: `Preview a puzzle in the terminal.

The input is either a word bank (TOML or WORD,clue lines), in which case a
puzzle is generated first, or a puzzle JSON file written by 'generate -f json'.

By default the grid and clue lists are printed as plain text. With
--interactive the puzzle opens as a walkthrough that replays the placement
sequence one word at a time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := loadPuzzle(ctx, args[0], flags)
			if err != nil {
				return err
			}

			if !interactive {
				fmt.Print(rendertext.Render(p, rendertext.Options{Solution: solution}))
				return nil
			}

			prog := tea.NewProgram(newWalkthroughModel(p), tea.WithContext(ctx))
			_, err = prog.Run()
			return err
		},
	}

	addGenFlags(cmd, &flags)
	cmd.Flags().BoolVar(&solution, "solution", false, "show answer letters")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "step through the placement sequence")

	return cmd
}
