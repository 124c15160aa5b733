package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// Walkthrough styles
var (
	walkLetterStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	walkCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	walkEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// walkthroughModel is the bubbletea model for stepping through the placement
// sequence of a finished puzzle, one word per step.
type walkthroughModel struct {
	puzzle *puzzle.Puzzle
	step   int // number of placements currently shown, 0..len(Placements)
}

// newWalkthroughModel creates a walkthrough starting at the first placement.
func newWalkthroughModel(p *puzzle.Puzzle) walkthroughModel {
	return walkthroughModel{puzzle: p, step: min(1, len(p.Placements))}
}

func (m walkthroughModel) Init() tea.Cmd {
	return nil
}

func (m walkthroughModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.step > 1 {
				m.step--
			}
		case "right", "l", " ", "enter":
			if m.step < len(m.puzzle.Placements) {
				m.step++
			}
		case "home", "g":
			m.step = 1
		case "end", "G":
			m.step = len(m.puzzle.Placements)
		}
	}
	return m, nil
}

func (m walkthroughModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placement Walkthrough"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if m.step == 0 {
		b.WriteString(StyleDim.Render("no placements"))
		b.WriteString("\n")
		return b.String()
	}

	shown := m.puzzle.Placements[:m.step]
	current := shown[len(shown)-1]

	letters := make(map[puzzle.Coord]byte)
	currentCells := make(map[puzzle.Coord]bool)
	for i, pl := range shown {
		for j, c := range pl.Cells {
			letters[c] = pl.Word[j]
			if i == len(shown)-1 {
				currentCells[c] = true
			}
		}
	}

	for row := 0; row < m.puzzle.Size; row++ {
		for col := 0; col < m.puzzle.Size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			c := puzzle.Coord{Row: row, Col: col}
			letter, ok := letters[c]
			switch {
			case !ok:
				b.WriteString(walkEmptyStyle.Render("·"))
			case currentCells[c]:
				b.WriteString(walkCurrentStyle.Render(string(letter)))
			default:
				b.WriteString(walkLetterStyle.Render(string(letter)))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s",
		StyleHighlight.Render(fmt.Sprintf("[%d/%d]", m.step, len(m.puzzle.Placements))),
		StyleValue.Render(fmt.Sprintf("%s %s at (%d,%d)",
			current.Word, current.Orientation, current.Row, current.Col))))
	if current.Clue != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(current.Clue))
	}
	b.WriteString("\n")

	return b.String()
}
