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

// Package position holds the mutable-looking but value-semantic board
// and hand representation for a shogi game: a 9x9 grid plus per-side
// captured-piece counts. Every mutating method returns a new value;
// callers that want mutate/undo style search can keep the parent
// value on their own call stack instead (see rules.ApplyMove).
package position

import (
	. "github.com/komatsu/shogigo/internal/types"
)

// Board is a total mapping from Square to Piece (NoPiece for empty).
// It is a plain array value: copying a Board copies all 81 squares,
// which keeps "every mutation produces a new value" cheap enough for
// a depth-limited negamax search without a magic-bitboard layer.
type Board [81]Piece

// Empty returns the all-empty board.
func Empty() Board {
	return Board{}
}

// Get returns the piece at sq (NoPiece if empty or sq is invalid).
func (b Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b[sq]
}

// Set returns a new board with sq holding piece (NoPiece clears it).
func (b Board) Set(sq Square, piece Piece) Board {
	b[sq] = piece
	return b
}

// Each calls fn for every occupied square on the board.
func (b Board) Each(fn func(sq Square, piece Piece)) {
	for i, p := range b {
		if p != NoPiece {
			fn(Square(i), p)
		}
	}
}

// FindRoyal returns the square of side's king/jewel and true, or
// SquareNone/false if none is present (move generation and the
// checkmate detector must tolerate a briefly missing royal during
// hypothetical-move evaluation).
func (b Board) FindRoyal(side Side) (Square, bool) {
	for i, p := range b {
		if p != NoPiece && p.Side() == side && p.IsRoyal() {
			return Square(i), true
		}
	}
	return SquareNone, false
}

// StartPosition returns the standard shogi starting board.
func StartPosition() Board {
	b := Empty()
	back := [9]PieceType{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for c := 1; c <= 9; c++ {
		b = b.Set(NewSquare(1, c), NewPiece(back[c-1], Gote, false))
		b = b.Set(NewSquare(9, c), NewPiece(back[c-1], Sente, false))
		b = b.Set(NewSquare(3, c), NewPiece(Pawn, Gote, false))
		b = b.Set(NewSquare(7, c), NewPiece(Pawn, Sente, false))
	}
	b = b.Set(NewSquare(2, 2), NewPiece(Rook, Gote, false))
	b = b.Set(NewSquare(2, 8), NewPiece(Bishop, Gote, false))
	b = b.Set(NewSquare(8, 8), NewPiece(Rook, Sente, false))
	b = b.Set(NewSquare(8, 2), NewPiece(Bishop, Sente, false))
	return b
}
