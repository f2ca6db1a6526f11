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

// Package openingbook implements the position-key to
// weighted-move-list map consulted before a search: a struct wrapping
// a map, built once and read many times. A
// github.com/dgraph-io/badger/v4 instance serves as an optional
// disk-resident overflow tier for memory-bounded operation, and
// github.com/frankkopp/workerpool normalizes a bulk-load batch
// concurrently before the single-threaded map merge.
package openingbook

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/frankkopp/workerpool"
	"github.com/op/go-logging"

	"github.com/komatsu/shogigo/internal/config"
	myLogging "github.com/komatsu/shogigo/internal/logging"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/types"
)

// Book is a read-mostly map from position key to weighted candidate
// moves. Bulk loading is the only mutator and must not overlap with
// FindMoves on the same instance.
type Book struct {
	log *logging.Logger
	cfg config.BookConfig

	data      map[string][]Entry
	bytesUsed int64
	db        *badger.DB
}

// New creates a Book from cfg. If cfg.DiskDir is non-empty it opens a
// badger instance there for the memory-bounded overflow tier; failure
// to open is reported as *types.ErrBookLoadFailed so callers can
// recover by running without a book.
func New(cfg config.BookConfig) (*Book, error) {
	b := &Book{
		log:  myLogging.GetLog("openingbook", logging.WARNING),
		cfg:  cfg,
		data: make(map[string][]Entry),
	}
	if cfg.DiskDir != "" {
		opts := badger.DefaultOptions(cfg.DiskDir)
		opts.Logger = nil
		db, err := badger.Open(opts)
		if err != nil {
			return nil, &types.ErrBookLoadFailed{Path: cfg.DiskDir, Err: err}
		}
		b.db = db
	}
	return b, nil
}

// Close releases the optional disk-resident overflow tier.
func (b *Book) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// AddEntry inserts entry under key, merging with any existing record
// for the same key: entries for the same move are replaced, entries
// for new moves are appended, so colliding inserts union rather than
// duplicate. If a memory bound is configured and exceeded afterward,
// records holding an entry deeper than MaxDepthOnLoad are evicted, in
// no particular order, until the estimate is back under the bound or
// no such record is left -- spilled to the disk-resident tier if one
// is configured, dropped entirely otherwise.
func (b *Book) AddEntry(key string, entry Entry) {
	existing := b.data[key]
	for i, e := range existing {
		if e.Move.Equal(entry.Move) {
			b.bytesUsed += entry.approxBytes() - e.approxBytes()
			existing[i] = entry
			b.data[key] = existing
			b.enforceBudget()
			return
		}
	}
	b.data[key] = append(existing, entry)
	b.bytesUsed += entry.approxBytes()
	b.enforceBudget()
}

// FindMoves looks up pos's candidate moves. With randomize=false it
// returns every recorded entry sorted by descending weight. With
// randomize=true it draws one entry via weighted-random selection
// using rng, which callers must seed deterministically to keep
// best-move calculation reproducible outside of this one intentional
// nondeterminism.
func (b *Book) FindMoves(pos position.Position, randomize bool, rng *rand.Rand) ([]Entry, bool) {
	key := pos.Key()
	entries, ok := b.data[key]
	if !ok {
		entries, ok = b.rehydrate(key)
		if !ok {
			return nil, false
		}
	}

	if !randomize {
		sorted := append([]Entry(nil), entries...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })
		return sorted, true
	}

	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return entries[:1], true
	}
	r := rng.Intn(total)
	cumulative := 0
	for _, e := range entries {
		cumulative += e.Weight
		if r < cumulative {
			return []Entry{e}, true
		}
	}
	return entries[len(entries)-1:], true
}

// normalizeJob filters one container record down to maxDepth inside
// the bulk loader's worker pool. Each job writes into its own slot of
// the shared result slice, so no two jobs ever touch the same memory.
type normalizeJob struct {
	id       string
	rec      Record
	maxDepth int
	out      *Record
}

func (j *normalizeJob) Id() string { return j.id }

func (j *normalizeJob) Run() error {
	*j.out = filterByDepth(j.rec, j.maxDepth)
	return nil
}

// BulkLoad ingests a batch of records, normalizing each one across a
// worker pool -- filtering entries deeper than maxDepth when
// maxDepth > 0, as an initial bootstrap wants -- before merging them
// into the book map on the calling
// goroutine, one record at a time, so AddEntry's union-on-conflict
// semantics apply exactly as they do for a single AddEntry call.
func (b *Book) BulkLoad(records []Record, maxDepth int) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	normalized := make([]Record, len(records))
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	pool := workerpool.NewWorkerPool(workers, len(records), true)
	for i := range records {
		pool.QueueJob(&normalizeJob{
			id:       fmt.Sprintf("normalize-%d", i),
			rec:      records[i],
			maxDepth: maxDepth,
			out:      &normalized[i],
		})
	}
	pool.Close()
	for range records {
		pool.GetFinishedWait()
	}

	loaded := 0
	for _, rec := range normalized {
		for _, e := range rec.Entries {
			b.AddEntry(rec.Key, e)
			loaded++
		}
	}
	return loaded, nil
}

// LoadFile reads a JSON container file -- an array of records, each a
// position key with its candidate entries -- and bulk loads it,
// filtering entries deeper than maxDepth when maxDepth > 0. Read and
// parse failures are reported as *types.ErrBookLoadFailed so callers
// can fall back to running without a book.
func (b *Book) LoadFile(path string, maxDepth int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &types.ErrBookLoadFailed{Path: path, Err: err}
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, &types.ErrBookLoadFailed{Path: path, Err: err}
	}
	return b.BulkLoad(records, maxDepth)
}

func filterByDepth(rec Record, maxDepth int) Record {
	if maxDepth <= 0 {
		return rec
	}
	kept := make([]Entry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		if e.Depth <= maxDepth {
			kept = append(kept, e)
		}
	}
	return Record{Key: rec.Key, Entries: kept}
}

func (b *Book) enforceBudget() {
	if b.cfg.MaxBytes <= 0 || b.bytesUsed <= b.cfg.MaxBytes {
		return
	}
	for key, entries := range b.data {
		if maxDepthOf(entries) <= b.cfg.MaxDepthOnLoad {
			continue
		}
		if b.db != nil {
			if err := b.spillToDisk(key, entries); err != nil {
				b.log.Warningf("openingbook: spill of %q failed, dropping instead: %v", key, err)
			}
		}
		for _, e := range entries {
			b.bytesUsed -= e.approxBytes()
		}
		delete(b.data, key)
		if b.bytesUsed <= b.cfg.MaxBytes {
			return
		}
	}
}

func maxDepthOf(entries []Entry) int {
	deepest := 0
	for _, e := range entries {
		if e.Depth > deepest {
			deepest = e.Depth
		}
	}
	return deepest
}

func (b *Book) spillToDisk(key string, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("openingbook: marshal spill entries: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// rehydrate looks up key in the disk-resident overflow tier and, on a
// hit, caches the result back into the in-memory map; the tier is
// transparent to FindMoves callers.
func (b *Book) rehydrate(key string) ([]Entry, bool) {
	if b.db == nil {
		return nil, false
	}
	var entries []Entry
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entries)
		})
	})
	if err != nil {
		return nil, false
	}
	b.data[key] = entries
	return entries, true
}
