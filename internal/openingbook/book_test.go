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

package openingbook

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komatsu/shogigo/internal/config"
	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

func newMemoryBook(t *testing.T) *Book {
	t.Helper()
	b, err := New(config.BookConfig{MaxDepthOnLoad: 40})
	require.NoError(t, err)
	return b
}

func moveTo(row, col int) Move {
	return NewBoardMove(NewSquare(7, 6), NewSquare(row, col), NewPiece(Pawn, Sente, false), false, NoPiece)
}

func TestFindMovesSortedByDescendingWeight(t *testing.T) {
	b := newMemoryBook(t)
	pos := position.New()
	key := pos.Key()

	b.AddEntry(key, Entry{Move: moveTo(6, 6), Weight: 10})
	b.AddEntry(key, Entry{Move: moveTo(6, 5), Weight: 50})
	b.AddEntry(key, Entry{Move: moveTo(6, 7), Weight: 30})

	entries, ok := b.FindMoves(pos, false, nil)
	require.True(t, ok)
	require.Len(t, entries, 3)
	assert.Equal(t, 50, entries[0].Weight)
	assert.Equal(t, 30, entries[1].Weight)
	assert.Equal(t, 10, entries[2].Weight)
}

func TestFindMovesMissingKeyReturnsFalse(t *testing.T) {
	b := newMemoryBook(t)
	_, ok := b.FindMoves(position.New(), false, nil)
	assert.False(t, ok)
}

// TestUnionOnConflict: inserting two entries under the same key
// yields the deduplicated union of their moves.
func TestUnionOnConflict(t *testing.T) {
	b := newMemoryBook(t)
	pos := position.New()
	key := pos.Key()

	m1, m2 := moveTo(6, 5), moveTo(6, 6)
	b.AddEntry(key, Entry{Move: m1, Weight: 10})
	b.AddEntry(key, Entry{Move: m2, Weight: 20})
	b.AddEntry(key, Entry{Move: m1, Weight: 15}) // replaces, not duplicates

	entries, ok := b.FindMoves(pos, false, nil)
	require.True(t, ok)
	require.Len(t, entries, 2)
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	assert.Equal(t, 35, total)
}

// TestWeightedRandomSelectionFrequency: with weights 900/100 over
// 10 000 draws, the heavier move's empirical frequency lands in
// [85%, 95%].
func TestWeightedRandomSelectionFrequency(t *testing.T) {
	b := newMemoryBook(t)
	pos := position.New()
	key := pos.Key()
	heavy, light := moveTo(6, 5), moveTo(6, 6)
	b.AddEntry(key, Entry{Move: heavy, Weight: 900})
	b.AddEntry(key, Entry{Move: light, Weight: 100})

	rng := rand.New(rand.NewSource(1))
	const draws = 10_000
	heavyCount := 0
	for i := 0; i < draws; i++ {
		entries, ok := b.FindMoves(pos, true, rng)
		require.True(t, ok)
		require.Len(t, entries, 1)
		if entries[0].Move.Equal(heavy) {
			heavyCount++
		}
	}
	freq := float64(heavyCount) / draws
	assert.GreaterOrEqual(t, freq, 0.85)
	assert.LessOrEqual(t, freq, 0.95)
}

func TestBulkLoadFiltersByMaxDepth(t *testing.T) {
	b := newMemoryBook(t)
	records := []Record{
		{Key: "posA", Entries: []Entry{
			{Move: moveTo(6, 5), Weight: 10, Depth: 2},
			{Move: moveTo(6, 6), Weight: 20, Depth: 50},
		}},
		{Key: "posB", Entries: []Entry{
			{Move: moveTo(6, 7), Weight: 5, Depth: 3},
		}},
	}

	loaded, err := b.BulkLoad(records, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Len(t, b.data["posA"], 1)
	assert.Len(t, b.data["posB"], 1)
}

func TestLoadFileParsesJSONContainer(t *testing.T) {
	records := []Record{
		{Key: "posA", Entries: []Entry{{Move: moveTo(6, 5), Weight: 10, Depth: 2}}},
		{Key: "posB", Entries: []Entry{{Move: moveTo(6, 6), Weight: 20, Depth: 4}}},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	b := newMemoryBook(t)
	loaded, err := b.LoadFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Len(t, b.data["posA"], 1)
	assert.Len(t, b.data["posB"], 1)
}

func TestLoadFileMissingFileReportsBookLoadFailed(t *testing.T) {
	b := newMemoryBook(t)
	_, err := b.LoadFile(filepath.Join(t.TempDir(), "missing.json"), 0)
	var loadErr *ErrBookLoadFailed
	assert.ErrorAs(t, err, &loadErr)
}

func TestMemoryBoundedModeDropsDeepEntriesWithoutDiskTier(t *testing.T) {
	b, err := New(config.BookConfig{MaxBytes: 1, MaxDepthOnLoad: 1})
	require.NoError(t, err)

	b.AddEntry("deepkey", Entry{Move: moveTo(6, 5), Weight: 10, Depth: 99, Name: "very long opening name to grow the byte estimate past budget"})

	assert.Empty(t, b.data["deepkey"])
}

func TestDiskOverflowTierRehydratesOnMiss(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "book")
	b, err := New(config.BookConfig{DiskDir: dir, MaxBytes: 1, MaxDepthOnLoad: 1})
	require.NoError(t, err)
	defer b.Close()

	key := "overflowkey"
	entry := Entry{Move: moveTo(6, 5), Weight: 10, Depth: 99}
	b.AddEntry(key, entry)
	// Over budget with Depth > MaxDepthOnLoad: spilled to disk, not kept in memory.
	assert.Empty(t, b.data[key])

	rehydrated, ok := b.rehydrate(key)
	require.True(t, ok)
	require.Len(t, rehydrated, 1)
	assert.True(t, rehydrated[0].Move.Equal(entry.Move))
}
