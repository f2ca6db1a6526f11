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

// Piece packs a PieceType, a Side and a promoted flag into a single
// byte:
//   bit 5   side
//   bit 4   promoted
//   bits 0-3 base piece type (unpromoted type; promotion status is
//            carried separately so that BaseType() is a plain mask)
type Piece uint8

// NoPiece is the empty-square sentinel.
const NoPiece Piece = 0

const (
	sideShift    = 5
	promotedBit  = 1 << 4
	baseTypeMask = 0x0F
)

// NewPiece builds a Piece from its three components. Promoting a
// gold, king or jewel is a programmer error and will panic; those
// types never promote.
func NewPiece(pt PieceType, s Side, promoted bool) Piece {
	if promoted && !pt.IsPromotable() {
		panic("types: cannot promote piece type " + pt.String())
	}
	p := Piece(pt) & baseTypeMask
	if promoted {
		p |= promotedBit
	}
	p |= Piece(s) << sideShift
	return p
}

// Side returns the owning side of p.
func (p Piece) Side() Side {
	return Side(p >> sideShift)
}

// Promoted reports whether p is currently promoted.
func (p Piece) Promoted() bool {
	return p&promotedBit != 0
}

// BaseType returns the unpromoted piece type of p, i.e. the type stored
// in the low nibble (a promoted rook gives Rook, not Dragon); use
// Type() to get the effective promoted-or-not type.
func (p Piece) BaseType() PieceType {
	return PieceType(p & baseTypeMask)
}

// Type returns the effective piece type, i.e. the promoted variant
// (ProPawn, Horse, Dragon, ...) when Promoted() is true.
func (p Piece) Type() PieceType {
	bt := p.BaseType()
	if p.Promoted() {
		return bt.PromotedTypeOf()
	}
	return bt
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// IsRoyal reports whether p is a king or jewel.
func (p Piece) IsRoyal() bool {
	return p.BaseType().IsRoyal()
}

// Promote returns a promoted copy of p. Panics if the base type
// cannot promote.
func (p Piece) Promote() Piece {
	return NewPiece(p.BaseType(), p.Side(), true)
}

// Unpromote returns the unpromoted (hand) form of p, used when a
// captured piece enters the opponent's hand.
func (p Piece) Unpromote() Piece {
	return NewPiece(p.BaseType(), p.Side(), false)
}

// String renders the piece as a side-tagged symbol, e.g. "S+R" for a
// promoted Sente rook, "gP" for a plain Gote pawn.
func (p Piece) String() string {
	if p.IsEmpty() {
		return ".."
	}
	sideTag := "S"
	if p.Side() == Gote {
		sideTag = "g"
	}
	return sideTag + p.Type().String()
}
