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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

func TestStartPositionPawnPushes(t *testing.T) {
	b := position.StartPosition()
	moves := GenerateBoardMoves(b, Sente)
	found := false
	for _, m := range moves {
		if m.From == NewSquare(7, 7) && m.To == NewSquare(6, 7) {
			found = true
		}
	}
	assert.True(t, found, "expected 7g7f among Sente's opening moves")
}

func TestPawnForcedPromotionOnLastRank(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(2, 5), NewPiece(Pawn, Sente, false))
	moves := GenerateBoardMoves(b, Sente)
	assert.Len(t, moves, 1)
	assert.True(t, moves[0].Promote)
}

func TestSilverPromotionIsOptionalInZone(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(4, 5), NewPiece(Silver, Sente, false))
	moves := GenerateBoardMoves(b, Sente)
	var intoZone []Move
	for _, m := range moves {
		if m.To == NewSquare(3, 5) {
			intoZone = append(intoZone, m)
		}
	}
	assert.Len(t, intoZone, 2, "entering the zone should offer both promote and non-promote variants")
}

func TestKnightForcedPromotionOnLastTwoRanks(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(3, 5), NewPiece(Knight, Sente, false))
	moves := GenerateBoardMoves(b, Sente)
	for _, m := range moves {
		assert.True(t, m.Promote, "knight landing on row %d must be forced to promote", m.To.Row())
	}
}

func TestRookSlidesUntilBlocked(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(5, 5), NewPiece(Rook, Sente, false))
	b = b.Set(NewSquare(5, 8), NewPiece(Pawn, Gote, false))
	moves := GenerateBoardMoves(b, Sente)
	var rightward []Square
	for _, m := range moves {
		if m.From == NewSquare(5, 5) && m.To.Row() == 5 && m.To.Col() > 5 {
			rightward = append(rightward, m.To)
		}
	}
	assert.Contains(t, rightward, NewSquare(5, 8), "rook should be able to capture the blocker")
	assert.Len(t, rightward, 3, "rook should reach cols 6,7,8 and stop at the blocker")
}

func TestSliderCannotCaptureOwnPiece(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(5, 5), NewPiece(Rook, Sente, false))
	b = b.Set(NewSquare(5, 8), NewPiece(Pawn, Sente, false))
	moves := GenerateBoardMoves(b, Sente)
	for _, m := range moves {
		assert.NotEqual(t, NewSquare(5, 8), m.To)
	}
}

func TestTwoPawnsInFileForbidsDrop(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(5, 5), NewPiece(Pawn, Sente, false))
	h := position.NewHands()
	h = h.Add(Sente, Pawn)
	moves := GeneratePseudoDropMoves(b, h, Sente)
	for _, m := range moves {
		assert.NotEqual(t, 5, m.To.Col(), "must not offer a drop in a file Sente already has an unpromoted pawn in")
	}
}

func TestPromotedPawnDoesNotBlockDrop(t *testing.T) {
	b := position.Empty()
	b = b.Set(NewSquare(2, 5), NewPiece(Pawn, Sente, true))
	h := position.NewHands()
	h = h.Add(Sente, Pawn)
	moves := GeneratePseudoDropMoves(b, h, Sente)
	hasCol5 := false
	for _, m := range moves {
		if m.To.Col() == 5 {
			hasCol5 = true
		}
	}
	assert.True(t, hasCol5, "a promoted pawn in the file must not count toward two-pawns")
}

func TestPawnAndLanceCannotDropOnLastRank(t *testing.T) {
	b := position.Empty()
	h := position.NewHands()
	h = h.Add(Sente, Pawn)
	h = h.Add(Sente, Lance)
	moves := GeneratePseudoDropMoves(b, h, Sente)
	for _, m := range moves {
		if m.Piece.BaseType() == Pawn || m.Piece.BaseType() == Lance {
			assert.NotEqual(t, Sente.LastRank(), m.To.Row())
		}
	}
}

func TestKnightCannotDropOnLastTwoRanks(t *testing.T) {
	b := position.Empty()
	h := position.NewHands()
	h = h.Add(Sente, Knight)
	moves := GeneratePseudoDropMoves(b, h, Sente)
	for _, m := range moves {
		assert.Greater(t, m.To.Row(), 2)
	}
}

func TestGoldCanDropOnLastRank(t *testing.T) {
	b := position.Empty()
	h := position.NewHands()
	h = h.Add(Sente, Gold)
	moves := GeneratePseudoDropMoves(b, h, Sente)
	hasLastRank := false
	for _, m := range moves {
		if m.To.Row() == Sente.LastRank() {
			hasLastRank = true
		}
	}
	assert.True(t, hasLastRank)
}

func TestMoveGenerationIsDeterministic(t *testing.T) {
	b := position.StartPosition()
	m1 := GenerateBoardMoves(b, Sente)
	m2 := GenerateBoardMoves(b, Sente)
	assert.Equal(t, m1, m2)
}
