package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

const testBank = `# test bank
CAT,Common house pet
CAR,Road vehicle
ART,Paintings and sculpture
`

func writeBank(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte(testBank), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGenerateJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeBank(t, dir)
	output := filepath.Join(dir, "puzzle.json")

	err := runGenerate(context.Background(), input, genFlags{size: 10}, formatJSON, output, false, "")
	if err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	var p puzzle.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("output is not valid puzzle JSON: %v", err)
	}
	if p.Size != 10 {
		t.Errorf("Size = %d, want 10", p.Size)
	}
	if len(p.Placements) != 3 {
		t.Errorf("len(Placements) = %d, want 3", len(p.Placements))
	}
}

func TestRunGenerateDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeBank(t, dir)

	err := runGenerate(context.Background(), input, genFlags{size: 10}, formatText, "", true, "")
	if err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	// Default output sits next to the input with the format's extension.
	data, err := os.ReadFile(filepath.Join(dir, "words.puzzle.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Common house pet") {
		t.Error("text output should contain the clues")
	}
}

func TestRunGenerateUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeBank(t, dir)

	err := runGenerate(context.Background(), input, genFlags{size: 10}, "pdf", "", false, "")
	if err == nil {
		t.Fatal("runGenerate() should reject unknown formats")
	}
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", apperrors.GetCode(err))
	}
}

func TestRunGenerateMissingBank(t *testing.T) {
	err := runGenerate(context.Background(), filepath.Join(t.TempDir(), "missing.txt"),
		genFlags{}, formatText, "", false, "")
	if err == nil {
		t.Fatal("runGenerate() should fail for a missing bank file")
	}
}

func TestLoadPuzzleFromJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeBank(t, dir)
	output := filepath.Join(dir, "puzzle.json")

	if err := runGenerate(context.Background(), input, genFlags{size: 10}, formatJSON, output, false, ""); err != nil {
		t.Fatal(err)
	}

	p, err := loadPuzzle(context.Background(), output, genFlags{})
	if err != nil {
		t.Fatalf("loadPuzzle() error = %v", err)
	}
	if len(p.Placements) != 3 {
		t.Errorf("len(Placements) = %d, want 3", len(p.Placements))
	}
}

func TestLoadPuzzleFromBank(t *testing.T) {
	dir := t.TempDir()
	input := writeBank(t, dir)

	p, err := loadPuzzle(context.Background(), input, genFlags{size: 10})
	if err != nil {
		t.Fatalf("loadPuzzle() error = %v", err)
	}
	if p.Size != 10 {
		t.Errorf("Size = %d, want 10", p.Size)
	}
}

func TestLoadPuzzleBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadPuzzle(context.Background(), path, genFlags{})
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", apperrors.GetCode(err))
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{formatText, ".txt"},
		{formatHTML, ".html"},
		{formatJSON, ".json"},
		{formatDOT, ".dot"},
		{formatSVG, ".svg"},
	}

	for _, tt := range tests {
		if got := extensionFor(tt.format); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
