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

package position

import (
	"strconv"
	"strings"

	. "github.com/komatsu/shogigo/internal/types"
)

// Position bundles a Board, Hands and the side to move: the unit of
// data search, move generation and the evaluator all operate on. It
// deliberately excludes a ply/move counter from its identity -- two
// positions with the same board, hands and side to move are the same
// position for transposition and opening-book purposes.
type Position struct {
	Board      Board
	Hands      Hands
	SideToMove Side
}

// New returns the standard shogi starting position, Sente to move.
func New() Position {
	return Position{Board: StartPosition(), Hands: NewHands(), SideToMove: Sente}
}

// CloneBoardAndHands returns a defensive deep copy of p's board and
// hands. Because Board and Hands are plain array values in Go, a copy
// is already deep on assignment; this helper exists so callers do not
// need to know that to get the deep-copy guarantee.
func (p Position) CloneBoardAndHands() (Board, Hands) {
	return p.Board, p.Hands
}

// Key returns the canonical position-key string used by the
// transposition table and the opening book. It serializes board
// occupancy in Gote-first row-major order with run-length-encoded
// blank squares, a side-to-move marker, and both hands' counts --
// deliberately omitting any ply/move counter.
//
// Equal positions always produce equal keys and vice versa, which is
// all the transposition table and opening book require; a Zobrist
// hash would satisfy the same contract.
func (p Position) Key() string {
	var sb strings.Builder
	for row := 1; row <= 9; row++ {
		blanks := 0
		for col := 1; col <= 9; col++ {
			piece := p.Board.Get(NewSquare(row, col))
			if piece == NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(pieceKeyToken(piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		sb.WriteByte('/')
	}
	if p.SideToMove == Sente {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	for _, side := range []Side{Sente, Gote} {
		for _, pt := range DropEligibleTypes() {
			n := p.Hands.Count(side, pt)
			if n > 0 {
				sb.WriteString(strconv.Itoa(n))
				sb.WriteString(pt.String())
			}
		}
		sb.WriteByte('|')
	}
	return sb.String()
}

// pieceKeyToken renders a single board piece for Key(): uppercase for
// Sente, lowercase for Gote, "+" prefixed when promoted.
func pieceKeyToken(piece Piece) string {
	token := piece.BaseType().String()
	if piece.Promoted() {
		token = "+" + token
	}
	if piece.Side() == Gote {
		token = strings.ToLower(token)
	}
	return token
}
