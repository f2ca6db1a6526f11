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

// Side represents which player a piece or move belongs to.
type Side uint8

// The two sides of a shogi game. Sente moves first and advances
// toward row 1; Gote advances toward row 9.
const (
	Sente Side = 0
	Gote  Side = 1

	SideLength int = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return s ^ 1
}

// IsValid reports whether s is one of Sente or Gote.
func (s Side) IsValid() bool {
	return s <= Gote
}

// String returns "sente" or "gote".
func (s Side) String() string {
	switch s {
	case Sente:
		return "sente"
	case Gote:
		return "gote"
	default:
		panic(fmt.Sprintf("invalid side %d", s))
	}
}

// Forward returns -1 for Sente (advancing toward row 1) and +1 for
// Gote (advancing toward row 9): the row-delta factor the per-piece
// motion vectors are oriented by.
func (s Side) Forward() int {
	return forwardFactor[s]
}

var forwardFactor = [2]int{-1, 1}

// LastRank returns the row index a piece of this side cannot move
// beyond (1 for Sente, 9 for Gote).
func (s Side) LastRank() int {
	return lastRank[s]
}

var lastRank = [2]int{1, 9}

// PromotionZone reports whether row r lies within this side's three
// furthest ranks.
func (s Side) PromotionZone(row int) bool {
	if s == Sente {
		return row <= 3
	}
	return row >= 7
}
