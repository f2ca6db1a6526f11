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

// PieceType enumerates the nine kinds of shogi piece. King and Jewel
// are equivalent royal pieces, kept distinct only for display (see
// IsRoyal).
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	Jewel

	PieceTypeLength int = 10
)

var pieceTypeSymbols = [PieceTypeLength]string{
	NoPieceType: "",
	Pawn:        "P",
	Lance:       "L",
	Knight:      "N",
	Silver:      "S",
	Gold:        "G",
	Bishop:      "B",
	Rook:        "R",
	King:        "K",
	Jewel:       "K",
}

// String returns a single-letter symbol for the piece type, prefixed
// with "+" for promoted types.
func (pt PieceType) String() string {
	if sym, ok := promotedSymbols[pt]; ok {
		return sym
	}
	if int(pt) >= PieceTypeLength {
		panic(fmt.Sprintf("invalid piece type %d", pt))
	}
	return pieceTypeSymbols[pt]
}

// IsRoyal reports whether pt is one of the two equivalent royal piece
// types. Move generation and the checkmate detector must never branch
// on King vs Jewel other than through this predicate.
func (pt PieceType) IsRoyal() bool {
	return pt == King || pt == Jewel
}

// IsPromotable reports whether a piece of this type may promote at
// all (gold, king and jewel never promote).
func (pt PieceType) IsPromotable() bool {
	switch pt {
	case Pawn, Lance, Knight, Silver, Bishop, Rook:
		return true
	default:
		return false
	}
}

// DropEligible reports whether pt is one of the seven piece types that
// may be held in hand and dropped (everything except the royals).
func (pt PieceType) DropEligible() bool {
	return pt != NoPieceType && !pt.IsRoyal()
}

// dropEligibleTypes lists the seven piece types iterated when walking
// a hand (used by the move generator and by Hands.Each).
var dropEligibleTypes = [7]PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

// DropEligibleTypes returns the seven piece types that can be held and
// dropped, in a fixed deterministic order.
func DropEligibleTypes() [7]PieceType {
	return dropEligibleTypes
}

// PromotedTypeOf returns the promoted variant of pt (identity for
// types that do not promote, i.e. gold/king/jewel).
func (pt PieceType) PromotedTypeOf() PieceType {
	switch pt {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return Horse
	case Rook:
		return Dragon
	default:
		return pt
	}
}

// The promoted piece types are represented as distinct PieceType
// constants above PieceTypeLength's base nine, re-using the base
// square footprint (same motion table as gold for the first four,
// special-cased for bishop/rook).
const (
	ProPawn PieceType = iota + PieceType(PieceTypeLength)
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
)

var promotedSymbols = map[PieceType]string{
	ProPawn:   "+P",
	ProLance:  "+L",
	ProKnight: "+N",
	ProSilver: "+S",
	Horse:     "+B",
	Dragon:    "+R",
}

// BaseTypeOf returns the unpromoted base type for pt (identity if pt
// is already a base type). A captured piece becomes unpromoted when
// it enters a hand (ApplyMove does that conversion with
// Piece.BaseType, not with this method).
func (pt PieceType) BaseTypeOf() PieceType {
	switch pt {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	default:
		return pt
	}
}

// IsPromoted reports whether pt is one of the six promoted piece
// types.
func (pt PieceType) IsPromoted() bool {
	return pt >= ProPawn && pt <= Dragon
}

// GoldLike reports whether pt moves using the six gold steps
// (promoted pawn/lance/knight/silver all move like gold; gold itself
// also does).
func (pt PieceType) GoldLike() bool {
	switch pt {
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return true
	default:
		return false
	}
}
