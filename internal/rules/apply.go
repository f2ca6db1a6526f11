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

// Package rules applies moves to a board/hands pair, enforces the
// rules move generation alone cannot (self-check, two-pawns, immobile
// drops, drop-pawn-mate) and answers "is side in check" / "is side
// checkmated". It is the only package allowed to import both movegen
// and position, which keeps the mutual dependency between drop
// generation and the checkmate detector inside a single package
// instead of across two.
package rules

import (
	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

// ApplyMove applies move to (board, hands) for the given side to move
// and returns the resulting board, hands and next side to move. It
// enforces every move-legality rule except self-check, which callers
// (the legal-move filter below, and the search) enforce themselves by
// applying the move and then calling InCheck.
func ApplyMove(board position.Board, hands position.Hands, side Side, move Move) (position.Board, position.Hands, Side, error) {
	if move.IsDrop() {
		return applyDrop(board, hands, side, move)
	}
	return applyBoardMove(board, hands, side, move)
}

func applyBoardMove(board position.Board, hands position.Hands, side Side, move Move) (position.Board, position.Hands, Side, error) {
	actual := board.Get(move.From)
	if actual == NoPiece {
		return board, hands, side, NewIllegalMoveError(NoPieceAtSource, move)
	}
	if actual.Side() != side {
		return board, hands, side, NewIllegalMoveError(WrongOwner, move)
	}
	target := board.Get(move.To)
	if target != NoPiece && target.Side() == side {
		return board, hands, side, NewIllegalMoveError(CaptureOwnPiece, move)
	}

	if target != NoPiece {
		hands = hands.Add(side, target.BaseType())
	}

	final := actual
	if move.Promote || forcesImmobility(actual.BaseType(), side, move.To.Row()) {
		final = actual.Promote()
	}

	board = board.Set(move.From, NoPiece).Set(move.To, final)
	return board, hands, side.Opponent(), nil
}

func applyDrop(board position.Board, hands position.Hands, side Side, move Move) (position.Board, position.Hands, Side, error) {
	nextBoard, nextHands, err := checkedDropPlacement(board, hands, side, move)
	if err != nil {
		return board, hands, side, err
	}
	pieceType := move.Piece.BaseType()
	if pieceType == Pawn && IsImmediateCheckmate(nextBoard, nextHands, side.Opponent()) {
		return board, hands, side, NewIllegalMoveError(DropPawnMate, move)
	}
	return nextBoard, nextHands, side.Opponent(), nil
}

// checkedDropPlacement runs every drop legality check except
// drop-pawn-mate and, if they pass, returns the resulting board and
// hands. It is the shared core of applyDrop and placeDropNoMateCheck:
// the former adds the drop-pawn-mate test on top, the latter
// deliberately does not, so that HasAnyLegalReply's own use of this
// core (by way of placeDropNoMateCheck) can probe candidate drops
// without re-entering IsCheckmate and looping forever.
func checkedDropPlacement(board position.Board, hands position.Hands, side Side, move Move) (position.Board, position.Hands, error) {
	pieceType := move.Piece.BaseType()
	if hands.Count(side, pieceType) <= 0 {
		return board, hands, NewIllegalMoveError(NoPieceInHand, move)
	}
	if board.Get(move.To) != NoPiece {
		return board, hands, NewIllegalMoveError(SquareOccupied, move)
	}
	row, col := move.To.Row(), move.To.Col()
	if err := checkDropZone(pieceType, side, row, move); err != nil {
		return board, hands, err
	}
	if pieceType == Pawn && fileHasUnpromotedPawn(board, side, col) {
		return board, hands, NewIllegalMoveError(TwoPawnsInFile, move)
	}
	nextHands := hands.Remove(side, pieceType)
	nextBoard := board.Set(move.To, NewPiece(pieceType, side, false))
	return nextBoard, nextHands, nil
}

// placeDropNoMateCheck applies a drop candidate without testing
// drop-pawn-mate. It exists solely for HasAnyLegalReply: whether a
// reply drop would itself deliver a pawn-drop checkmate is not
// relevant to "does side have some legal reply", and probing it with
// the mate-checking applyDrop would call IsCheckmate from inside
// IsCheckmate's own evaluation, an unbounded recursion.
func placeDropNoMateCheck(board position.Board, hands position.Hands, side Side, move Move) (position.Board, position.Hands, error) {
	return checkedDropPlacement(board, hands, side, move)
}

func checkDropZone(pieceType PieceType, side Side, row int, move Move) error {
	switch pieceType {
	case Pawn, Lance:
		if row == side.LastRank() {
			return NewIllegalMoveError(ImmobilePieceDrop, move)
		}
	case Knight:
		if knightForcedRow(side, row) {
			return NewIllegalMoveError(ImmobilePieceDrop, move)
		}
	}
	return nil
}

func forcesImmobility(baseType PieceType, side Side, toRow int) bool {
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

func fileHasUnpromotedPawn(board position.Board, side Side, col int) bool {
	for row := 1; row <= 9; row++ {
		p := board.Get(NewSquare(row, col))
		if p != NoPiece && p.Side() == side && p.BaseType() == Pawn && !p.Promoted() {
			return true
		}
	}
	return false
}

// RevertMove is the inverse of ApplyMove: given the board/hands/side
// that resulted from applying move while sideBefore was to move, it
// reconstructs the pre-move board, hands and side to move. It exists
// for search paths that prefer mutate/undo to copying;
// because Board and Hands are plain value types here, "undo" is just
// running the inverse transformation rather than popping a stack.
func RevertMove(board position.Board, hands position.Hands, sideToMove Side, move Move) (position.Board, position.Hands, Side) {
	mover := sideToMove.Opponent()
	if move.IsDrop() {
		board = board.Set(move.To, NoPiece)
		hands = hands.Add(mover, move.Piece.BaseType())
		return board, hands, mover
	}

	current := board.Get(move.To)
	orig := current
	forced := forcesImmobility(current.BaseType(), mover, move.To.Row()) && !move.Piece.Promoted()
	if move.Promote || forced {
		orig = current.Unpromote()
	}
	board = board.Set(move.To, move.Captured).Set(move.From, orig)
	if move.Captured != NoPiece {
		hands = hands.Remove(mover, move.Captured.BaseType())
	}
	return board, hands, mover
}
