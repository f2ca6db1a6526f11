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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyPresetsMatchSpec(t *testing.T) {
	cases := []struct {
		d        Difficulty
		depth    int
		timeMs   int
		withBook bool
	}{
		{Beginner, 2, 1_000, false},
		{Intermediate, 4, 3_000, true},
		{Advanced, 6, 5_000, true},
		{Expert, 8, 30_000, true},
	}
	for _, c := range cases {
		sc := SearchConfigFor(c.d)
		assert.Equal(t, c.depth, sc.MaxDepth, c.d.String())
		assert.Equal(t, c.timeMs, sc.TimeLimitMs, c.d.String())
		assert.Equal(t, c.withBook, sc.UseOpeningBook, c.d.String())
	}
}

func TestDefaultIsIntermediate(t *testing.T) {
	cfg := Default()
	assert.Equal(t, Intermediate, cfg.Difficulty)
	assert.Equal(t, SearchConfigFor(Intermediate), cfg.Search)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Eval]\npawn_advance_bonus = 99\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.Eval.PawnAdvanceBonus)
	// untouched fields retain Default()'s values.
	assert.Equal(t, Default().Eval.KingOpenFilePenalty, cfg.Eval.KingOpenFilePenalty)
	assert.Equal(t, SearchConfigFor(Intermediate), cfg.Search)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestWithDifficulty(t *testing.T) {
	cfg := Default().WithDifficulty(Expert)
	assert.Equal(t, Expert, cfg.Difficulty)
	assert.Equal(t, 8, cfg.Search.MaxDepth)
}
