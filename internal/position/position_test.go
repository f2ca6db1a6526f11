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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/komatsu/shogigo/internal/types"
)

func TestStartPositionHasBothRoyals(t *testing.T) {
	b := StartPosition()
	_, ok := b.FindRoyal(Sente)
	assert.True(t, ok)
	_, ok = b.FindRoyal(Gote)
	assert.True(t, ok)
}

func TestBoardSetIsImmutable(t *testing.T) {
	b1 := Empty()
	b2 := b1.Set(NewSquare(5, 5), NewPiece(Gold, Sente, false))
	assert.Equal(t, NoPiece, b1.Get(NewSquare(5, 5)))
	assert.NotEqual(t, NoPiece, b2.Get(NewSquare(5, 5)))
}

func TestHandsAddRemoveRoundTrip(t *testing.T) {
	h := NewHands()
	h = h.Add(Sente, Pawn)
	h = h.Add(Sente, Pawn)
	assert.Equal(t, 2, h.Count(Sente, Pawn))
	h = h.Remove(Sente, Pawn)
	assert.Equal(t, 1, h.Count(Sente, Pawn))
	assert.Equal(t, 0, h.Count(Gote, Pawn))
}

func TestHandsRemoveEmptyPanics(t *testing.T) {
	h := NewHands()
	assert.Panics(t, func() { h.Remove(Sente, Gold) })
}

func TestKeyExcludesMoveCounter(t *testing.T) {
	p := New()
	k1 := p.Key()
	// simulate "ply passing" by just recomputing the key; Position has
	// no ply field at all, so the key is stable regardless of history.
	k2 := p.Key()
	assert.Equal(t, k1, k2)
}

func TestKeyDistinguishesPositions(t *testing.T) {
	p1 := New()
	p2 := New()
	p2.SideToMove = Gote
	assert.NotEqual(t, p1.Key(), p2.Key())

	p3 := New()
	p3.Hands = p3.Hands.Add(Sente, Pawn)
	assert.NotEqual(t, p1.Key(), p3.Key())
}

func TestKeyEqualForEqualPositions(t *testing.T) {
	p1 := New()
	p2 := New()
	assert.Equal(t, p1.Key(), p2.Key())
}

func TestCloneBoardAndHandsIsIndependent(t *testing.T) {
	p := New()
	b, h := p.CloneBoardAndHands()
	b = b.Set(NewSquare(1, 1), NoPiece)
	h = h.Add(Sente, Pawn)
	assert.NotEqual(t, b, p.Board)
	assert.NotEqual(t, h, p.Hands)
}
