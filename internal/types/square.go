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

// Square identifies one of the 81 squares of a shogi board. Row 1 is
// Gote's back rank, row 9 is Sente's; column 1 is the rightmost file
// in traditional notation (9 leftmost), but this package treats both
// as plain 1..9 integers and leaves notation concerns to callers.
type Square int8

// SquareNone is the out-of-board sentinel.
const SquareNone Square = -1

// NewSquare builds a Square from 1-based row and column. Out-of-range
// inputs return SquareNone.
func NewSquare(row, col int) Square {
	if row < 1 || row > 9 || col < 1 || col > 9 {
		return SquareNone
	}
	return Square((row-1)*9 + (col - 1))
}

// Row returns the 1-based row (1 = Gote's back rank).
func (sq Square) Row() int {
	return int(sq)/9 + 1
}

// Col returns the 1-based column.
func (sq Square) Col() int {
	return int(sq)%9 + 1
}

// IsValid reports whether sq addresses one of the 81 board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 81
}

// String renders a square in "<col><row>" form as two digits, e.g.
// "76" for row 6, column 7; shogigo does not implement Japanese
// kanji-rank notation (out of scope), so this uses a plain numeric
// form useful for logs and tests.
func (sq Square) String() string {
	if !sq.IsValid() {
		return fmt.Sprintf("sq(%d)", int(sq))
	}
	return fmt.Sprintf("%d%d", sq.Col(), sq.Row())
}

// AllSquares returns all 81 valid squares in row-major (Gote-first)
// order, matching the order used by Position.Key().
func AllSquares() []Square {
	squares := make([]Square, 0, 81)
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			squares = append(squares, NewSquare(r, c))
		}
	}
	return squares
}

// Manhattan returns the Manhattan distance between two squares.
func Manhattan(a, b Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Centre is the centre square of the board, used by the search's
// centrality move-ordering term.
var Centre = NewSquare(5, 5)
