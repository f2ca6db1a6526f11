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

// Package history holds the per-search move-ordering tables: a
// killer-move table (<=2 non-capture moves per ply that caused a beta
// cutoff) and a principal-variation table (the best move found at
// each ply during the previous iterative-deepening iteration). Both
// tables live for the duration of a single search call, are cleared
// at its start, and are owned exclusively by one Search instance.
package history

import (
	. "github.com/komatsu/shogigo/internal/types"
)

// KillersPerPly is the maximum number of killer moves retained per
// ply.
const KillersPerPly = 2

// Tables bundles the killer-move and PV tables for one search(). Build
// one with NewTables; the zero value has no PV map, so SetPV on it
// panics.
type Tables struct {
	killers [][KillersPerPly]Move
	pv      map[int]Move
}

// NewTables returns an empty table set sized for maxPly plies of
// recursion (ply 0 is the root).
func NewTables(maxPly int) *Tables {
	if maxPly < 1 {
		maxPly = 1
	}
	t := &Tables{
		killers: make([][KillersPerPly]Move, maxPly+1),
		pv:      make(map[int]Move, maxPly+1),
	}
	for i := range t.killers {
		t.killers[i] = [KillersPerPly]Move{NoMove, NoMove}
	}
	return t
}

// Killers returns the up-to-two killer moves recorded at ply, most
// recent first. Unused slots are NoMove.
func (t *Tables) Killers(ply int) [KillersPerPly]Move {
	if ply < 0 || ply >= len(t.killers) {
		return [KillersPerPly]Move{NoMove, NoMove}
	}
	return t.killers[ply]
}

// AddKiller records a non-capturing move that caused a beta cutoff at
// ply. New killers go to the front; an existing duplicate is moved to
// the front rather than doubled.
func (t *Tables) AddKiller(ply int, move Move) {
	if ply < 0 || ply >= len(t.killers) || move.IsCapture() {
		return
	}
	slot := &t.killers[ply]
	if slot[0].Equal(move) {
		return
	}
	if slot[1].Equal(move) {
		slot[0], slot[1] = move, slot[0]
		return
	}
	slot[1] = slot[0]
	slot[0] = move
}

// PV returns the principal-variation move recorded at ply, and
// whether one was recorded.
func (t *Tables) PV(ply int) (Move, bool) {
	m, ok := t.pv[ply]
	return m, ok
}

// SetPV records move as the best move found at ply during the current
// iteration -- called whenever a move improves alpha to an exact
// score.
func (t *Tables) SetPV(ply int, move Move) {
	t.pv[ply] = move
}

// Line reconstructs the principal variation starting at the root (ply
// 0) by following SetPV's records forward until a ply has no
// recorded move, capped at maxLen entries to guard against a cycle in
// a malformed table.
func (t *Tables) Line(maxLen int) []Move {
	line := make([]Move, 0, maxLen)
	for ply := 0; ply < maxLen; ply++ {
		m, ok := t.pv[ply]
		if !ok {
			break
		}
		line = append(line, m)
	}
	return line
}
