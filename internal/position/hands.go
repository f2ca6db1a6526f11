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
	. "github.com/komatsu/shogigo/internal/types"
)

// Hands holds, for each side, a non-negative count per drop-eligible
// piece type. Indexed directly by PieceType so callers never need a
// translation table; only the seven drop-eligible slots are ever
// written (royals are never held in hand).
type Hands [int(SideLength)][int(Rook) + 1]int8

// NewHands returns empty hands for both sides.
func NewHands() Hands {
	return Hands{}
}

// Count returns how many of pieceType side currently holds.
func (h Hands) Count(side Side, pieceType PieceType) int {
	if !pieceType.DropEligible() {
		return 0
	}
	return int(h[side][pieceType])
}

// Add returns new hands with one more pieceType added to side's hand.
func (h Hands) Add(side Side, pieceType PieceType) Hands {
	h[side][pieceType]++
	return h
}

// Remove returns new hands with one pieceType removed from side's
// hand. Panics if side holds none -- callers must check Count first
// (rules.ApplyMove turns this into NoPieceInHand instead of panicking).
func (h Hands) Remove(side Side, pieceType PieceType) Hands {
	if h[side][pieceType] <= 0 {
		panic("position: removing piece not present in hand")
	}
	h[side][pieceType]--
	return h
}

// Each calls fn once per drop-eligible piece type side holds more
// than zero of, in the fixed DropEligibleTypes order; generated move
// lists must be deterministic, so the walk order is too.
func (h Hands) Each(side Side, fn func(pieceType PieceType, count int)) {
	for _, pt := range DropEligibleTypes() {
		if n := h[side][pt]; n > 0 {
			fn(pt, int(n))
		}
	}
}

// IsEmpty reports whether side holds no pieces at all.
func (h Hands) IsEmpty(side Side) bool {
	for _, pt := range DropEligibleTypes() {
		if h[side][pt] > 0 {
			return false
		}
	}
	return true
}
