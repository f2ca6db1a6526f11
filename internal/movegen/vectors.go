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

// Package movegen computes pseudo-legal moves: board moves per piece
// (including sliders, jumps and promotion variants) and drop moves
// filtered by the two cheap drop rules (two-pawns, immobile-piece).
// It knows nothing about check -- self-check filtering and the
// drop-pawn-mate rule live in package rules, which calls back into
// movegen rather than the other way around, breaking the cyclic
// dependency between drop generation and the checkmate detector.
package movegen

import (
	. "github.com/komatsu/shogigo/internal/types"
)

// Vector is one motion direction for a piece: dr/dc are the row/column
// deltas of a single step (already oriented for the side to move),
// and Slide indicates the piece travels repeatedly along it until
// blocked rather than taking exactly one step.
type Vector struct {
	DR, DC int
	Slide  bool
}

// Vectors returns the motion vectors for a piece of effective type pt
// (i.e. already resolved through Piece.Type(), so promoted types are
// passed as ProPawn/Horse/Dragon/... directly) belonging to side.
func Vectors(pt PieceType, side Side) []Vector {
	f := side.Forward()
	switch {
	case pt == Pawn:
		return []Vector{{f, 0, false}}
	case pt == Lance:
		return []Vector{{f, 0, true}}
	case pt == Knight:
		return []Vector{{2 * f, -1, false}, {2 * f, 1, false}}
	case pt == Silver:
		return []Vector{
			{f, 0, false}, {f, -1, false}, {f, 1, false},
			{-f, -1, false}, {-f, 1, false},
		}
	case pt.GoldLike():
		return goldVectors(f)
	case pt == Bishop:
		return diagonalSlides
	case pt == Horse:
		return append(append([]Vector{}, diagonalSlides...), orthogonalSteps...)
	case pt == Rook:
		return orthogonalSlides
	case pt == Dragon:
		return append(append([]Vector{}, orthogonalSlides...), diagonalSteps...)
	case pt.IsRoyal():
		return kingSteps
	default:
		return nil
	}
}

func goldVectors(f int) []Vector {
	return []Vector{
		{f, 0, false}, {f, -1, false}, {f, 1, false},
		{0, -1, false}, {0, 1, false},
		{-f, 0, false},
	}
}

var (
	diagonalSlides   = []Vector{{1, 1, true}, {1, -1, true}, {-1, 1, true}, {-1, -1, true}}
	orthogonalSlides = []Vector{{1, 0, true}, {-1, 0, true}, {0, 1, true}, {0, -1, true}}
	orthogonalSteps  = []Vector{{1, 0, false}, {-1, 0, false}, {0, 1, false}, {0, -1, false}}
	diagonalSteps    = []Vector{{1, 1, false}, {1, -1, false}, {-1, 1, false}, {-1, -1, false}}
	kingSteps        = []Vector{
		{1, 0, false}, {-1, 0, false}, {0, 1, false}, {0, -1, false},
		{1, 1, false}, {1, -1, false}, {-1, 1, false}, {-1, -1, false},
	}
)
