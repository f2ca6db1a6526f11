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

package types

import "fmt"

// Kind distinguishes the two tagged variants of Move.
type Kind uint8

const (
	// BoardMove moves a piece already on the board from From to To.
	BoardMove Kind = iota
	// DropMove places a piece from hand onto an empty square.
	DropMove
)

// Move is a tagged variant covering both board moves and drops. For a
// DropMove, From is SquareNone, Promote is always false and Captured
// is always NoPiece.
type Move struct {
	Kind     Kind
	From     Square
	To       Square
	Piece    Piece // the moving piece (board move) or dropped piece type's unpromoted Piece
	Promote  bool
	Captured Piece // NoPiece when nothing is captured
}

// NewBoardMove constructs a board-move Move.
func NewBoardMove(from, to Square, piece Piece, promote bool, captured Piece) Move {
	return Move{Kind: BoardMove, From: from, To: to, Piece: piece, Promote: promote, Captured: captured}
}

// NewDropMove constructs a drop Move. pieceType must be drop-eligible;
// the dropped piece always belongs to side and is never promoted.
func NewDropMove(to Square, pieceType PieceType, side Side) Move {
	return Move{Kind: DropMove, From: SquareNone, To: to, Piece: NewPiece(pieceType, side, false)}
}

// IsDrop reports whether m is a drop move.
func (m Move) IsDrop() bool {
	return m.Kind == DropMove
}

// IsCapture reports whether m captures an opposing piece.
func (m Move) IsCapture() bool {
	return !m.IsDrop() && m.Captured != NoPiece
}

// IsPromotion reports whether m promotes the moved piece.
func (m Move) IsPromotion() bool {
	return !m.IsDrop() && m.Promote
}

// Side returns the side making the move.
func (m Move) Side() Side {
	return m.Piece.Side()
}

// String renders a move for logs/tests using Square.String, e.g.
// "7767" for a board move from row 7 column 7 to row 7 column 6, or
// "P*55" for a pawn drop on row 5 column 5.
func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.Piece.Type().String(), m.To)
	}
	promo := ""
	if m.Promote {
		promo = "+"
	}
	return fmt.Sprintf("%s%s%s", m.From, m.To, promo)
}

// Equal reports whether two moves describe the same action. Used by
// killer/PV table dedup and by tests.
func (m Move) Equal(o Move) bool {
	return m.Kind == o.Kind && m.From == o.From && m.To == o.To && m.Piece == o.Piece && m.Promote == o.Promote
}

// NoMove is the sentinel for "no move found". It is not Move's zero
// value: Move{} is a board move from and to square 0.
var NoMove = Move{Kind: BoardMove, From: SquareNone, To: SquareNone}

// IsNone reports whether m is the sentinel NoMove.
func (m Move) IsNone() bool {
	return m.From == SquareNone && m.To == SquareNone && m.Kind == BoardMove
}
