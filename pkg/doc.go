// Package pkg provides the core libraries for crossword generation.
//
// # Overview
//
// Crossgen turns a bank of words and clues into a numbered crossword puzzle.
// The pkg directory is organized into five main areas:
//
//  1. [puzzle] - Domain logic (grid, placement rules, backtracking planner, numbering)
//  2. [bank] - Word bank loading (TOML and WORD,clue line formats)
//  3. [pipeline] - Orchestration (shuffle → plan → number → capture)
//  4. [render] - Output formats (terminal text, HTML page, crossing graph)
//  5. [store] - Puzzle persistence (memory, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow through crossgen:
//
//	Word Bank (TOML or lines)
//	         ↓
//	    [bank] package (parse, normalize, validate)
//	         ↓
//	    [puzzle] package (grid + planner + numbering)
//	         ↓
//	    [render] package (text, HTML, DOT/SVG)
//	         ↓
//	    terminal / file / HTTP response
//
// # Quick Start
//
// Generate a puzzle and render it for the terminal:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/crossgen/pkg/bank"
//	    "github.com/matzehuels/crossgen/pkg/pipeline"
//	    "github.com/matzehuels/crossgen/pkg/render/text"
//	)
//
//	b, _ := bank.Load("animals.toml")
//	p, _ := pipeline.Generate(context.Background(), b.Entries, pipeline.Options{Size: 15})
//	fmt.Print(text.Render(p, text.Options{Solution: true}))
//
// # Main Packages
//
// [puzzle] - The crossword model: a square grid of cells, legality rules for
// word placement (crossing, flank and adjacency isolation), a backtracking
// planner that places every word or reports failure, a weaker best-effort
// planner, and standard newspaper-style clue numbering.
//
// [bank] - Word bank parsing and normalization. Supports a TOML format with
// [[entries]] tables and a plain line format (WORD,clue per line). Words are
// uppercased, validated, and deduplicated.
//
// [pipeline] - The shared generation entry point used by the CLI and the
// HTTP server, so both produce identical puzzles for identical inputs.
//
// [render/text] - Monospace terminal output with Across/Down clue lists.
//
// [render/html] - A playable, self-contained HTML page.
//
// [render/dot] - The word-crossing graph as Graphviz DOT or rendered SVG.
//
// [store] - Persistence behind a small Store interface with in-memory,
// Redis, and MongoDB backends.
//
// [errors] - Structured errors with machine-readable codes, shared across
// the CLI and the HTTP API.
//
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/puzzle
// [bank]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/bank
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/pipeline
// [render/text]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/render/text
// [render/html]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/render/html
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/render/dot
// [store]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/crossgen/pkg/errors
package pkg
