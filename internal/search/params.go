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

package search

import (
	"time"

	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

// EvaluateFunc scores a position from side's perspective. Injectable
// so tests can stub the evaluator out.
type EvaluateFunc func(pos position.Position, side Side) Score

// GenerateMovesFunc returns every fully legal move for side in pos.
type GenerateMovesFunc func(pos position.Position, side Side) []Move

// Options configures one Search call.
type Options struct {
	MaxDepth  int
	TimeLimit time.Duration
	// Evaluate and GenerateMoves, when non-nil, override the
	// evaluator/move generator this Search was built with for this one
	// call only; Run restores the constructor-bound functions before
	// returning so a later call without an override behaves as if New
	// had just been called.
	Evaluate      EvaluateFunc
	GenerateMoves GenerateMovesFunc
	// RootMoves, when non-nil, is used as the root move list (and its
	// order) instead of calling GenerateMoves for ply 0. This is how a
	// caller supplies a pre-shuffled root order -- ApplyMove/alphaBeta
	// still calls the generator normally at every deeper ply.
	RootMoves []Move
	// TTCapacity overrides the transposition table's entry capacity
	// for this search; 0 uses transpositiontable.DefaultCapacity.
	TTCapacity int
}

// Result is the outcome of one top-level Search call.
type Result struct {
	BestMove Move
	Score    Score
	Depth    int
	PV       []Move
	Nodes    int64
	Time     time.Duration
}
