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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			sq := NewSquare(r, c)
			require.True(t, sq.IsValid())
			assert.Equal(t, r, sq.Row())
			assert.Equal(t, c, sq.Col())
		}
	}
	assert.False(t, NewSquare(0, 5).IsValid())
	assert.False(t, NewSquare(5, 10).IsValid())
}

func TestAllSquaresCount(t *testing.T) {
	assert.Len(t, AllSquares(), 81)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Centre, Centre))
	assert.Equal(t, 8, Manhattan(NewSquare(1, 1), Centre))
}

func TestSideBasics(t *testing.T) {
	assert.Equal(t, Gote, Sente.Opponent())
	assert.Equal(t, Sente, Gote.Opponent())
	assert.Equal(t, -1, Sente.Forward())
	assert.Equal(t, 1, Gote.Forward())
	assert.True(t, Sente.PromotionZone(1))
	assert.True(t, Sente.PromotionZone(3))
	assert.False(t, Sente.PromotionZone(4))
	assert.True(t, Gote.PromotionZone(9))
	assert.False(t, Gote.PromotionZone(6))
}

func TestPieceInvariants(t *testing.T) {
	p := NewPiece(Rook, Sente, false)
	assert.Equal(t, Sente, p.Side())
	assert.False(t, p.Promoted())
	assert.Equal(t, Rook, p.Type())

	promoted := p.Promote()
	assert.True(t, promoted.Promoted())
	assert.Equal(t, Dragon, promoted.Type())
	assert.Equal(t, Rook, promoted.BaseType())

	unpromoted := promoted.Unpromote()
	assert.False(t, unpromoted.Promoted())
	assert.Equal(t, p, unpromoted)
}

func TestPiecePromotePanicsForGold(t *testing.T) {
	assert.Panics(t, func() {
		NewPiece(Gold, Sente, true)
	})
	assert.Panics(t, func() {
		NewPiece(King, Gote, true)
	})
}

func TestRoyalEquivalence(t *testing.T) {
	assert.True(t, King.IsRoyal())
	assert.True(t, Jewel.IsRoyal())
	assert.False(t, Gold.IsRoyal())
	king := NewPiece(King, Sente, false)
	jewel := NewPiece(Jewel, Gote, false)
	assert.True(t, king.IsRoyal())
	assert.True(t, jewel.IsRoyal())
}

func TestDropEligibleTypes(t *testing.T) {
	types := DropEligibleTypes()
	assert.Len(t, types, 7)
	for _, pt := range types {
		assert.True(t, pt.DropEligible())
	}
	assert.False(t, King.DropEligible())
	assert.False(t, Jewel.DropEligible())
}

func TestMoveStringAndEquality(t *testing.T) {
	board := NewBoardMove(NewSquare(7, 7), NewSquare(7, 6), NewPiece(Pawn, Sente, false), false, NoPiece)
	assert.Equal(t, "7767", board.String())
	drop := NewDropMove(NewSquare(5, 5), Gold, Sente)
	assert.True(t, drop.IsDrop())
	assert.Equal(t, "G*55", drop.String())
	assert.True(t, board.Equal(NewBoardMove(NewSquare(7, 7), NewSquare(7, 6), NewPiece(Pawn, Sente, false), false, NoPiece)))
}

func TestMateScoreHelpers(t *testing.T) {
	assert.True(t, MateIn(3).IsMateScore())
	assert.False(t, DrawScore.IsMateScore())
}
