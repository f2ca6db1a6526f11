//
// shogigo - a Shogi (Japanese chess) playing engine in Go
//
// MIT License
//
// Copyright (c) 2024 The shogigo Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds the typed settings an Engine is constructed
// with. There is no package-level Settings singleton: every value is
// threaded through explicit construction (engine.New(cfg)), so no
// process-wide state hides behind an import. The on-disk format is
// TOML, decoded with BurntSushi/toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
)

// Difficulty selects one of the four preset configurations.
type Difficulty uint8

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// SearchConfig governs the search engine's iterative-deepening loop.
type SearchConfig struct {
	MaxDepth       int  `toml:"max_depth"`
	TimeLimitMs    int  `toml:"time_limit_ms"`
	UseOpeningBook bool `toml:"use_opening_book"`
	// TTSizeEntries bounds the transposition table's capacity;
	// 0 uses the table's own default of about a million entries.
	TTSizeEntries int `toml:"tt_size_entries"`
}

// BeginnerNoise is the probability that, at Beginner difficulty,
// CalculateBestMove substitutes a uniformly random legal move for the
// searched one.
const BeginnerNoise = 0.30

// EvalConfig holds the evaluator's tunable coefficients, so the
// weights live here rather than as magic numbers scattered through
// the evaluator.
type EvalConfig struct {
	// HandDiscountPercent shaves this percentage off a piece's board
	// value when it is counted in hand, reflecting the tempo cost of
	// needing a further drop move to bring it into play.
	HandDiscountPercent int `toml:"hand_discount_percent"`
	// PawnAdvanceBonus is added per rank a pawn has advanced into the
	// promotion zone.
	PawnAdvanceBonus int `toml:"pawn_advance_bonus"`
	// KingOpenFilePenalty is subtracted per file adjacent to a royal
	// that holds no friendly piece.
	KingOpenFilePenalty int `toml:"king_open_file_penalty"`
	// CentralityBonusPerStep rewards silvers/golds/knights for
	// standing closer to the board centre.
	CentralityBonusPerStep int `toml:"centrality_bonus_per_step"`
}

// BookConfig configures the opening book.
type BookConfig struct {
	Path string `toml:"path"`
	// MaxDepthOnLoad bounds how many plies deep the bulk loader keeps
	// entries for during bootstrap.
	MaxDepthOnLoad int `toml:"max_depth_on_load"`
	// MaxBytes bounds the book's approximate in-memory footprint;
	// entries deeper than MaxDepthOnLoad are spilled to the optional
	// disk-resident tier once this is exceeded, or dropped when no
	// DiskDir is set (see openingbook.Book).
	MaxBytes int64 `toml:"max_bytes"`
	// DiskDir, if non-empty, is a badger directory used for the
	// opening book's memory-bounded overflow tier.
	DiskDir string `toml:"disk_dir"`
}

// LogConfig governs per-package log levels.
type LogConfig struct {
	Level       logging.Level `toml:"-"`
	LevelName   string        `toml:"level"`
	SearchLevel logging.Level `toml:"-"`
	SearchName  string        `toml:"search_level"`
}

// Config is the complete set of tunables an Engine is constructed
// from.
type Config struct {
	Difficulty Difficulty `toml:"-"`
	Search     SearchConfig
	Eval       EvalConfig
	Book       BookConfig
	Log        LogConfig
}

// difficultyPresets maps each difficulty to its search tunables.
var difficultyPresets = map[Difficulty]SearchConfig{
	Beginner:     {MaxDepth: 2, TimeLimitMs: 1_000, UseOpeningBook: false, TTSizeEntries: 1 << 16},
	Intermediate: {MaxDepth: 4, TimeLimitMs: 3_000, UseOpeningBook: true, TTSizeEntries: 1 << 18},
	Advanced:     {MaxDepth: 6, TimeLimitMs: 5_000, UseOpeningBook: true, TTSizeEntries: 1 << 20},
	Expert:       {MaxDepth: 8, TimeLimitMs: 30_000, UseOpeningBook: true, TTSizeEntries: 1 << 20},
}

// SearchConfigFor returns the preset SearchConfig for d.
func SearchConfigFor(d Difficulty) SearchConfig {
	return difficultyPresets[d]
}

// Default returns the Intermediate preset with default evaluator
// weights, no on-disk book overflow and info-level logging -- a
// reasonable configuration for an embedder that does not call Load.
func Default() Config {
	return Config{
		Difficulty: Intermediate,
		Search:     SearchConfigFor(Intermediate),
		Eval: EvalConfig{
			HandDiscountPercent:    10,
			PawnAdvanceBonus:       15,
			KingOpenFilePenalty:    25,
			CentralityBonusPerStep: 10,
		},
		Book: BookConfig{Path: "", MaxDepthOnLoad: 40, MaxBytes: 64 << 20},
		Log:  LogConfig{Level: logging.INFO, LevelName: "info", SearchLevel: logging.INFO, SearchName: "info"},
	}
}

// WithDifficulty returns a copy of cfg with the given difficulty's
// search preset applied, leaving Eval/Book/Log untouched.
func (cfg Config) WithDifficulty(d Difficulty) Config {
	cfg.Difficulty = d
	cfg.Search = SearchConfigFor(d)
	return cfg
}

// Load decodes a TOML file at path into a Config seeded from Default,
// so a partial file only overrides the fields it sets. It does not
// populate any package-level global -- callers pass the result to
// engine.New.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %q: %w", path, err)
	}
	cfg.Log.Level = parseLevel(cfg.Log.LevelName, logging.INFO)
	cfg.Log.SearchLevel = parseLevel(cfg.Log.SearchName, logging.INFO)
	return cfg, nil
}

func parseLevel(name string, fallback logging.Level) logging.Level {
	if name == "" {
		return fallback
	}
	lvl, err := logging.LogLevel(name)
	if err != nil {
		return fallback
	}
	return lvl
}
