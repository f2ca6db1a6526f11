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

package search

import (
	"sort"

	"github.com/komatsu/shogigo/internal/evaluator"
	"github.com/komatsu/shogigo/internal/history"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	. "github.com/komatsu/shogigo/internal/types"
)

// orderMoves sorts moves in place, largest move-ordering score first:
// PV/TT move, killers, MVV-LVA captures, checks, promotions,
// centrality.
func orderMoves(moves []Move, pos position.Position, ply int, ttBest Move, hist *history.Tables) {
	pv, hasPV := hist.PV(ply)
	killers := hist.Killers(ply)

	type scored struct {
		m Move
		s int
	}
	pairs := make([]scored, len(moves))
	for i, m := range moves {
		pairs[i] = scored{m, moveOrderScore(m, pos, hasPV, pv, killers, ttBest)}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
	for i := range pairs {
		moves[i] = pairs[i].m
	}
}

func moveOrderScore(m Move, pos position.Position, hasPV bool, pv Move, killers [history.KillersPerPly]Move, ttBest Move) int {
	total := 0
	if hasPV && m.Equal(pv) {
		total += 10_000
	}
	if !ttBest.IsNone() && m.Equal(ttBest) {
		total += 10_000
	}
	for idx, k := range killers {
		if !k.IsNone() && m.Equal(k) {
			total += 8_000 - 100*idx
		}
	}
	if m.IsCapture() {
		total += 5_000 + evaluator.PieceValue(m.Captured.Type()) - evaluator.PieceValue(m.Piece.Type())/10
	}
	if givesCheck(pos, m) {
		total += 2_000
	}
	if m.IsPromotion() {
		total += 1_000
	}
	total += 10 * (8 - Manhattan(m.To, Centre))
	return total
}

// givesCheck reports whether applying m to pos leaves the opponent in
// check.
func givesCheck(pos position.Position, m Move) bool {
	nb, _, next, err := rules.ApplyMove(pos.Board, pos.Hands, pos.SideToMove, m)
	if err != nil {
		return false
	}
	return rules.InCheck(nb, next)
}
