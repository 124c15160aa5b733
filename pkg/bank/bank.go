// Package bank loads and validates word banks: the ordered (word, clue)
// pairs that feed the layout planner.
//
// Two on-disk formats are supported:
//
//   - TOML banks with [[entries]] tables (word = "CAT", clue = "..."),
//     selected for files ending in ".toml"
//   - plain line banks with one "WORD,clue text" pair per line, blank lines
//     and #-comments ignored
//
// Words are normalized to uppercase on load and validated against the
// layout engine's rules (ASCII letters only, length >= 2). Shuffling for
// display variety is an explicit, seeded operation; the package keeps no
// global state.
package bank

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// MaxEntries bounds the size of a single bank. Backtracking search cost
// grows quickly with word count; production puzzles use a dozen or two.
const MaxEntries = 200

// tomlBank is the TOML serialization of a word bank.
type tomlBank struct {
	Title   string         `toml:"title"`
	Entries []puzzle.Entry `toml:"entries"`
}

// Bank is a validated word bank with an optional display title.
type Bank struct {
	Title   string
	Entries []puzzle.Entry
}

// Load reads a word bank from path, choosing the format by extension:
// ".toml" for TOML banks, anything else for line banks.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "bank file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidBank, err, "read bank file %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	b, err := ParseLines(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	if b.Title == "" {
		b.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return b, nil
}

// ParseTOML parses a TOML word bank.
func ParseTOML(data []byte) (*Bank, error) {
	var raw tomlBank
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBank, err, "malformed TOML bank")
	}
	b := &Bank{Title: raw.Title, Entries: raw.Entries}
	if err := normalize(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseLines parses the plain line format: one "WORD,clue" pair per line.
// The first comma separates word from clue; later commas belong to the clue.
// Blank lines and lines starting with '#' are skipped.
func ParseLines(r io.Reader) (*Bank, error) {
	b := &Bank{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, clue, ok := strings.Cut(text, ",")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidBank,
				"line %d: expected \"WORD,clue\", got %q", line, text)
		}
		b.Entries = append(b.Entries, puzzle.Entry{
			Word: strings.TrimSpace(word),
			Clue: strings.TrimSpace(clue),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBank, err, "read bank")
	}
	if err := normalize(b); err != nil {
		return nil, err
	}
	return b, nil
}

// normalize uppercases words, then validates every entry and the bank shape.
func normalize(b *Bank) error {
	if len(b.Entries) == 0 {
		return errors.New(errors.ErrCodeInvalidBank, "bank contains no entries")
	}
	if len(b.Entries) > MaxEntries {
		return errors.New(errors.ErrCodeInvalidBank,
			"bank contains %d entries (maximum %d)", len(b.Entries), MaxEntries)
	}

	seen := make(map[string]bool, len(b.Entries))
	for i := range b.Entries {
		e := &b.Entries[i]
		e.Word = strings.ToUpper(strings.TrimSpace(e.Word))
		e.Clue = strings.TrimSpace(e.Clue)
		if err := errors.ValidateWord(e.Word); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		if err := errors.ValidateClue(e.Clue); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i+1, e.Word, err)
		}
		if seen[e.Word] {
			return errors.New(errors.ErrCodeInvalidBank, "duplicate word %q", e.Word)
		}
		seen[e.Word] = true
	}
	return nil
}

// Shuffle returns a copy of entries permuted by the given seed. The planner
// sorts by length with a stable sort, so shuffling reorders words of equal
// length and with it the chosen layout — display variety without any
// process-wide random state.
func Shuffle(entries []puzzle.Entry, seed int64) []puzzle.Entry {
	out := slices.Clone(entries)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
