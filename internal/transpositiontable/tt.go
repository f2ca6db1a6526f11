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

// Package transpositiontable implements a bounded position-key to
// entry map for the search: fixed capacity, addressed by the
// Position.Key() string, replacing the oldest inserted entry once
// full (FIFO). Position equality implies key equality, which is all
// the lookup needs; a Zobrist hash would also work but buys nothing
// at this table's scale.
package transpositiontable

import (
	"github.com/op/go-logging"

	myLogging "github.com/komatsu/shogigo/internal/logging"
)

// DefaultCapacity bounds the table to about a million entries unless
// the caller asks for a different size.
const DefaultCapacity = 1_000_000

// Table is a bounded map from position key to Entry. It is owned
// exclusively by one search invocation and is not safe for concurrent
// use.
type Table struct {
	log      *logging.Logger
	capacity int
	data     map[string]Entry
	order    []string // FIFO insertion order, for eviction

	puts   int
	hits   int
	misses int
}

// New creates a Table bounded to capacity entries. capacity <= 0 is
// treated as DefaultCapacity.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		log:      myLogging.GetLog("tt", logging.WARNING),
		capacity: capacity,
		data:     make(map[string]Entry, minInt(capacity, 1<<16)),
		order:    make([]string, 0, minInt(capacity, 1<<16)),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clear empties the table. (Search.Run does not call it; it builds a
// fresh table at the start of every top-level search call.)
func (t *Table) Clear() {
	t.data = make(map[string]Entry, minInt(t.capacity, 1<<16))
	t.order = t.order[:0]
	t.puts, t.hits, t.misses = 0, 0, 0
}

// Get returns the entry stored for key, if any.
func (t *Table) Get(key string) (Entry, bool) {
	e, ok := t.data[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return e, ok
}

// Put stores entry under key, evicting the oldest inserted entry by
// FIFO order if the table is already at capacity and key is new.
func (t *Table) Put(key string, entry Entry) {
	if _, exists := t.data[key]; !exists {
		if len(t.data) >= t.capacity {
			t.evictOldest()
		}
		t.order = append(t.order, key)
	}
	t.data[key] = entry
	t.puts++
}

func (t *Table) evictOldest() {
	for len(t.order) > 0 {
		oldest := t.order[0]
		t.order = t.order[1:]
		if _, ok := t.data[oldest]; ok {
			delete(t.data, oldest)
			return
		}
	}
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return len(t.data)
}

// Stats returns (puts, hits, misses) counted since the last Clear.
func (t *Table) Stats() (puts, hits, misses int) {
	return t.puts, t.hits, t.misses
}
