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
	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

// GenerateBoardMoves yields one or more Move values per reachable
// destination for every piece side owns on board. Promotable pieces
// crossing into or starting inside the promotion zone get both
// promote=false and promote=true variants, except where promotion is
// forced (pawn/lance onto the last rank, knight onto the last two
// ranks), in which case only the promoted variant is produced.
//
// Ordering is deterministic: squares are walked in row-major
// (Gote-first) order, and for each source piece, vectors are walked
// in the fixed order Vectors() returns.
func GenerateBoardMoves(board position.Board, side Side) []Move {
	moves := make([]Move, 0, 64)
	for _, from := range AllSquares() {
		piece := board.Get(from)
		if piece == NoPiece || piece.Side() != side {
			continue
		}
		for _, v := range Vectors(piece.Type(), side) {
			walkVector(board, side, from, piece, v, &moves)
		}
	}
	return moves
}

func walkVector(board position.Board, side Side, from Square, piece Piece, v Vector, moves *[]Move) {
	row, col := from.Row(), from.Col()
	for {
		row += v.DR
		col += v.DC
		to := NewSquare(row, col)
		if !to.IsValid() {
			return
		}
		target := board.Get(to)
		if target != NoPiece && target.Side() == side {
			return
		}
		appendBoardMoveVariants(from, to, piece, side, target, moves)
		if !v.Slide || target != NoPiece {
			return
		}
	}
}

func appendBoardMoveVariants(from, to Square, piece Piece, side Side, captured Piece, moves *[]Move) {
	baseType := piece.BaseType()
	if !piece.Promoted() && baseType.IsPromotable() {
		forced := isForcedPromotion(baseType, side, to.Row())
		inZone := side.PromotionZone(from.Row()) || side.PromotionZone(to.Row())
		if forced {
			*moves = append(*moves, NewBoardMove(from, to, piece, true, captured))
			return
		}
		if inZone {
			*moves = append(*moves, NewBoardMove(from, to, piece, true, captured))
			*moves = append(*moves, NewBoardMove(from, to, piece, false, captured))
			return
		}
	}
	*moves = append(*moves, NewBoardMove(from, to, piece, false, captured))
}

// isForcedPromotion reports whether a pawn/lance/knight move ending on
// row would leave the piece with no legal destination ever again,
// forcing promotion.
func isForcedPromotion(baseType PieceType, side Side, toRow int) bool {
	switch baseType {
	case Pawn, Lance:
		return toRow == side.LastRank()
	case Knight:
		return knightForcedRow(side, toRow)
	default:
		return false
	}
}

func knightForcedRow(side Side, row int) bool {
	if side == Sente {
		return row <= 2
	}
	return row >= 8
}

// GeneratePseudoDropMoves enumerates drop moves filtered by the two
// rules that do not require a checkmate detector: two-pawns-in-file
// and immobile-piece drops. It deliberately omits the drop-pawn-mate
// filter -- package rules layers that on top by calling this function
// from inside its own hypothetical-checkmate test, which keeps the
// "detector enumerates drops / drops need the detector" cycle to a
// single, non-recursive step.
func GeneratePseudoDropMoves(board position.Board, hands position.Hands, side Side) []Move {
	moves := make([]Move, 0, 32)
	hands.Each(side, func(pieceType PieceType, _ int) {
		for _, to := range AllSquares() {
			if board.Get(to) != NoPiece {
				continue
			}
			if !dropAllowed(board, side, pieceType, to) {
				continue
			}
			moves = append(moves, NewDropMove(to, pieceType, side))
		}
	})
	return moves
}

func dropAllowed(board position.Board, side Side, pieceType PieceType, to Square) bool {
	row, col := to.Row(), to.Col()
	switch pieceType {
	case Pawn, Lance:
		if row == side.LastRank() {
			return false
		}
	case Knight:
		if knightForcedRow(side, row) {
			return false
		}
	}
	if pieceType == Pawn && fileHasUnpromotedPawn(board, side, col) {
		return false
	}
	return true
}

func fileHasUnpromotedPawn(board position.Board, side Side, col int) bool {
	for row := 1; row <= 9; row++ {
		p := board.Get(NewSquare(row, col))
		if p != NoPiece && p.Side() == side && p.BaseType() == Pawn && !p.Promoted() {
			return true
		}
	}
	return false
}

