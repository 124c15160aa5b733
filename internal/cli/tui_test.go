package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/crossgen/pkg/bank"
	"github.com/matzehuels/crossgen/pkg/pipeline"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

func walkthroughPuzzle(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	b, err := bank.ParseLines(strings.NewReader(testBank))
	if err != nil {
		t.Fatal(err)
	}
	p, err := pipeline.Generate(context.Background(), b.Entries, pipeline.Options{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWalkthroughStartsAtFirstPlacement(t *testing.T) {
	m := newWalkthroughModel(walkthroughPuzzle(t))

	if m.step != 1 {
		t.Errorf("step = %d, want 1", m.step)
	}

	view := m.View()
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("view should show step counter, got:\n%s", view)
	}
}

func TestWalkthroughStepping(t *testing.T) {
	p := walkthroughPuzzle(t)
	var model tea.Model = newWalkthroughModel(p)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})

	m := model.(walkthroughModel)
	if m.step != 3 {
		t.Errorf("step after two rights = %d, want 3", m.step)
	}

	// Stepping past the last placement is a no-op.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	if model.(walkthroughModel).step != 3 {
		t.Error("step should not advance past the last placement")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if model.(walkthroughModel).step != 2 {
		t.Errorf("step after left = %d, want 2", model.(walkthroughModel).step)
	}
}

func TestWalkthroughBounds(t *testing.T) {
	p := walkthroughPuzzle(t)
	var model tea.Model = newWalkthroughModel(p)

	// Stepping before the first placement is a no-op.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if model.(walkthroughModel).step != 1 {
		t.Error("step should not go below 1")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if got := model.(walkthroughModel).step; got != len(p.Placements) {
		t.Errorf("G should jump to last placement, step = %d", got)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if model.(walkthroughModel).step != 1 {
		t.Error("g should jump to first placement")
	}
}

func TestWalkthroughQuit(t *testing.T) {
	var model tea.Model = newWalkthroughModel(walkthroughPuzzle(t))

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
}

func TestWalkthroughViewShowsCurrentWord(t *testing.T) {
	p := walkthroughPuzzle(t)
	m := newWalkthroughModel(p)

	view := m.View()
	if !strings.Contains(view, p.Placements[0].Word) {
		t.Errorf("view should name the current word %q, got:\n%s", p.Placements[0].Word, view)
	}
	if !strings.Contains(view, p.Placements[0].Clue) {
		t.Error("view should show the current clue")
	}
}
