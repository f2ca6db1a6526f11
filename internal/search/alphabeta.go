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
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	"github.com/komatsu/shogigo/internal/transpositiontable"
	. "github.com/komatsu/shogigo/internal/types"
)

// alphaBeta is the recursive negamax search with alpha-beta pruning,
// a transposition-table probe/store and the six-term move-ordering
// heuristic. depth counts plies remaining; ply
// counts plies from the root (used for mate-distance scoring and for
// indexing the killer/PV tables).
func (s *Search) alphaBeta(pos position.Position, alpha, beta Score, depth, ply int) Score {
	s.stats.nodes++
	if s.lim.shouldStop() {
		return 0
	}

	key := pos.Key()
	var ttBest Move
	if e, ok := s.tt.Get(key); ok {
		s.stats.ttHit++
		if !e.BestMove.IsNone() || e.HasBest {
			ttBest = e.BestMove
		}
		if e.Depth >= depth {
			switch e.Kind {
			case transpositiontable.Exact:
				return e.Score
			case transpositiontable.LowerBound:
				if e.Score >= beta {
					return e.Score
				}
				if e.Score > alpha {
					alpha = e.Score
				}
			case transpositiontable.UpperBound:
				if e.Score <= alpha {
					return e.Score
				}
				if e.Score < beta {
					beta = e.Score
				}
			}
			if alpha >= beta {
				return e.Score
			}
		}
	}

	if depth == 0 {
		return s.eval(pos, pos.SideToMove)
	}

	moves := s.genMoves(pos, pos.SideToMove)
	if len(moves) == 0 {
		if rules.InCheck(pos.Board, pos.SideToMove) {
			return -MateIn(ply)
		}
		return DrawScore
	}

	orderMoves(moves, pos, ply, ttBest, s.hist)

	bestScore := -Infinity
	bestMove := NoMove
	kind := transpositiontable.UpperBound
	for _, m := range moves {
		nb, nh, next, err := rules.ApplyMove(pos.Board, pos.Hands, pos.SideToMove, m)
		if err != nil {
			continue
		}
		child := position.Position{Board: nb, Hands: nh, SideToMove: next}
		score := -s.alphaBeta(child, -beta, -alpha, depth-1, ply+1)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			kind = transpositiontable.Exact
			s.hist.SetPV(ply, m)
		}
		if alpha >= beta {
			s.hist.AddKiller(ply, m)
			kind = transpositiontable.LowerBound
			break
		}
		if s.lim.shouldStop() {
			break
		}
	}

	s.tt.Put(key, transpositiontable.Entry{
		Score: bestScore, Depth: depth, Kind: kind, BestMove: bestMove, HasBest: !bestMove.IsNone(),
	})
	s.stats.ttPut++
	return bestScore
}
