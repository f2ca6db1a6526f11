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

package rules

import (
	"github.com/komatsu/shogigo/internal/movegen"
	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

// InCheck reports whether side's royal piece is currently attacked.
// A missing royal also counts as in check (treated as mated for
// search purposes) -- move generation must tolerate a briefly-missing
// royal during hypothetical evaluation.
func InCheck(board position.Board, side Side) bool {
	royal, ok := board.FindRoyal(side)
	if !ok {
		return true
	}
	for _, m := range movegen.GenerateBoardMoves(board, side.Opponent()) {
		if m.To == royal {
			return true
		}
	}
	return false
}

// HasAnyLegalReply reports whether side has at least one move (board
// move or drop, promotion variants included) that does not leave it
// in check afterwards. Drop candidates are generated without the
// drop-pawn-mate filter -- whether a candidate reply is itself an
// illegal pawn-drop-mate is a concern for the move that made it, not
// for whether the side has *some* way to answer check, and checking
// it here would make mate detection call back into itself.
func HasAnyLegalReply(board position.Board, hands position.Hands, side Side) bool {
	for _, m := range movegen.GenerateBoardMoves(board, side) {
		nb, nh, _, err := ApplyMove(board, hands, side, m)
		if err != nil {
			continue
		}
		if !InCheck(nb, side) {
			_ = nh
			return true
		}
	}
	for _, m := range movegen.GeneratePseudoDropMoves(board, hands, side) {
		nb, _, err := placeDropNoMateCheck(board, hands, side, m)
		if err != nil {
			continue
		}
		if !InCheck(nb, side) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether side is in check with no legal reply.
func IsCheckmate(board position.Board, hands position.Hands, side Side) bool {
	return InCheck(board, side) && !HasAnyLegalReply(board, hands, side)
}

// IsImmediateCheckmate is the narrow 1-ply mate test behind the
// drop-pawn-mate rule: it is exactly IsCheckmate, named separately so
// that applyDrop's drop-pawn-mate check has its own call site
// distinct from general-purpose mate detection. Because
// HasAnyLegalReply already probes drop replies through
// placeDropNoMateCheck (no drop-pawn-mate filter on the reply side),
// this function terminates in one step and never recurses into
// itself.
func IsImmediateCheckmate(board position.Board, hands position.Hands, side Side) bool {
	return IsCheckmate(board, hands, side)
}

// GenerateAllLegalDropMoves enumerates every drop move for side that
// survives all four drop filters, including drop-pawn-mate: a pawn
// drop is excluded if, applied hypothetically, it delivers immediate
// checkmate to the opponent.
func GenerateAllLegalDropMoves(board position.Board, hands position.Hands, side Side) []Move {
	candidates := movegen.GeneratePseudoDropMoves(board, hands, side)
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		nb, nh, _, err := ApplyMove(board, hands, side, m)
		if err != nil {
			// ApplyMove itself re-checks drop-pawn-mate for pawn
			// drops, so an error here is exactly that rejection.
			continue
		}
		if InCheck(nb, side) {
			continue
		}
		_ = nh
		legal = append(legal, m)
	}
	return legal
}

// GenerateAllLegalMoves returns every fully legal move (board moves
// and drops) for side: pseudo-legal generation filtered by self-check,
// plus GenerateAllLegalDropMoves for drops.
func GenerateAllLegalMoves(board position.Board, hands position.Hands, side Side) []Move {
	moves := make([]Move, 0, 96)
	for _, m := range movegen.GenerateBoardMoves(board, side) {
		nb, _, _, err := ApplyMove(board, hands, side, m)
		if err != nil {
			continue
		}
		if InCheck(nb, side) {
			continue
		}
		moves = append(moves, m)
	}
	moves = append(moves, GenerateAllLegalDropMoves(board, hands, side)...)
	return moves
}
