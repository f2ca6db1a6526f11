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

// Package search implements the iterative-deepening negamax engine:
// Search.Run repeatedly calls the recursive alphaBeta helper
// (alphabeta.go) at increasing depth until options.MaxDepth or
// options.TimeLimit is reached, always returning the last *completed*
// iteration's result. Search is a struct owning its own transposition
// table and move-ordering tables, built once and driven through a
// single exported entry point.
package search

import (
	"github.com/op/go-logging"

	"github.com/komatsu/shogigo/internal/config"
	"github.com/komatsu/shogigo/internal/evaluator"
	"github.com/komatsu/shogigo/internal/history"
	myLogging "github.com/komatsu/shogigo/internal/logging"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	"github.com/komatsu/shogigo/internal/transpositiontable"
	. "github.com/komatsu/shogigo/internal/types"
)

// Search drives one or more top-level Run calls. It owns a reusable
// evaluator and move generator; the transposition table and
// killer/PV tables are recreated fresh at the start of every Run and
// never persist between external calls.
type Search struct {
	log      *logging.Logger
	eval     EvaluateFunc
	genMoves GenerateMovesFunc

	tt    *transpositiontable.Table
	hist  *history.Tables
	lim   *limits
	stats statistics
}

// New builds a Search. A nil eval/genMoves falls back to this
// module's own evaluator.Evaluate / rules.GenerateAllLegalMoves.
func New(eval EvaluateFunc, genMoves GenerateMovesFunc) *Search {
	if eval == nil {
		e := evaluator.New(config.Default().Eval)
		eval = e.Evaluate
	}
	if genMoves == nil {
		genMoves = func(pos position.Position, side Side) []Move {
			return rules.GenerateAllLegalMoves(pos.Board, pos.Hands, side)
		}
	}
	return &Search{
		log:      myLogging.GetLog("search", logging.WARNING),
		eval:     eval,
		genMoves: genMoves,
	}
}

// Stop requests cancellation of any in-flight Run call. Idempotent
// and safe to call from a different goroutine than the one running
// Run: a second caller must not call back *into* the search
// concurrently, but stopping it from outside is fine.
func (s *Search) Stop() {
	if s.lim != nil {
		s.lim.stop()
	}
}

// Run searches pos for side and returns the best result found within
// options' depth/time budget. options.Evaluate and
// options.GenerateMoves, when set, override the constructor-bound
// evaluator/move generator for this call only; both are restored
// before Run returns.
func (s *Search) Run(pos position.Position, side Side, options Options) Result {
	s.tt = transpositiontable.New(options.TTCapacity)
	maxPly := options.MaxDepth + 4
	s.hist = history.NewTables(maxPly)
	s.lim = newLimits(options.TimeLimit)
	s.stats.reset()

	origEval, origGenMoves := s.eval, s.genMoves
	if options.Evaluate != nil {
		s.eval = options.Evaluate
	}
	if options.GenerateMoves != nil {
		s.genMoves = options.GenerateMoves
	}
	defer func() { s.eval, s.genMoves = origEval, origGenMoves }()

	rootMoves := options.RootMoves
	if rootMoves == nil {
		rootMoves = s.genMoves(pos, side)
	}
	if len(rootMoves) == 0 {
		return Result{BestMove: NoMove, Score: DrawScore, Depth: 0, Time: s.lim.elapsed()}
	}

	var best Result
	var pvMove Move

	for depth := 1; depth <= options.MaxDepth; depth++ {
		ordered := append([]Move(nil), rootMoves...)
		orderMoves(ordered, pos, 0, pvMove, s.hist)

		bestScore := -Infinity
		bestMove := NoMove
		abandoned := false

		for _, m := range ordered {
			nb, nh, next, err := rules.ApplyMove(pos.Board, pos.Hands, side, m)
			if err != nil {
				continue
			}
			child := position.Position{Board: nb, Hands: nh, SideToMove: next}
			score := -s.alphaBeta(child, -Infinity, -bestScore, depth-1, 1)

			// depth > 1 deliberately: the depth-1 iteration is never
			// abandoned for timeout, so Run always has at least one
			// fully-ordered 1-ply iteration to return instead of
			// falling back to shallowFallback's unordered eval pass.
			if s.lim.shouldStop() && depth > 1 {
				abandoned = true
				break
			}
			if score > bestScore {
				bestScore = score
				bestMove = m
				s.hist.SetPV(0, m)
			}
		}

		if abandoned {
			break
		}

		pvMove = bestMove
		best = Result{
			BestMove: bestMove,
			Score:    bestScore,
			Depth:    depth,
			PV:       s.hist.Line(depth),
			Nodes:    s.stats.nodes,
			Time:     s.lim.elapsed(),
		}

		if s.lim.shouldStop() {
			break
		}
	}

	if best.BestMove.IsNone() {
		// No iteration completed: return a shallow 1-ply
		// best-effort result rather than nothing.
		best = s.shallowFallback(pos, side, rootMoves)
	}

	ttPuts, ttHits, _ := s.tt.Stats()
	s.log.Debugf("search done: depth %d best %s %s",
		best.Depth, best.BestMove,
		out.Sprintf("score %d, %d nodes, tt %d/%d, %d ms",
			best.Score, s.stats.nodes, ttHits, ttPuts, best.Time.Milliseconds()))
	return best
}

func (s *Search) shallowFallback(pos position.Position, side Side, rootMoves []Move) Result {
	bestMove := rootMoves[0]
	bestScore := -Infinity
	for _, m := range rootMoves {
		nb, nh, next, err := rules.ApplyMove(pos.Board, pos.Hands, side, m)
		if err != nil {
			continue
		}
		score := -s.eval(position.Position{Board: nb, Hands: nh, SideToMove: next}, next)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	return Result{BestMove: bestMove, Score: bestScore, Depth: 0, Nodes: s.stats.nodes, Time: s.lim.elapsed()}
}

