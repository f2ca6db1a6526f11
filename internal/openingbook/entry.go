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
	. "github.com/komatsu/shogigo/internal/types"
)

// Entry is one candidate move recorded for a position.
type Entry struct {
	Move    Move
	Weight  int
	Name    string
	Comment string
	Depth   int
}

// Record is one container record: a position key plus the candidate
// entries recorded for it. Bulk loading ingests a batch of these.
type Record struct {
	Key     string
	Entries []Entry
}

// approxBytes estimates e's in-memory footprint for the
// memory-bounded mode's byte budget. It does not need to be exact,
// only monotonic in the fields that actually grow the book.
func (e Entry) approxBytes() int64 {
	return int64(32 + len(e.Name) + len(e.Comment))
}
