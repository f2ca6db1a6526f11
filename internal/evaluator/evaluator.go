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

// Package evaluator contains the static position-evaluation function
// used by the search: material, hand material and a handful of
// positional terms, summed from the perspective of one side to move.
// The Evaluator is a struct created once and reused across calls,
// carrying a logger and the tunable coefficients it was built with.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/komatsu/shogigo/internal/config"
	myLogging "github.com/komatsu/shogigo/internal/logging"
	"github.com/komatsu/shogigo/internal/position"
	. "github.com/komatsu/shogigo/internal/types"
)

// pieceValues are base centipawn values for each board piece type,
// promoted variants included. Exact coefficients are a tuning
// parameter; this is a reasonable starting table (pawn=100 through
// rook=1040, promotions priced above their base type).
var pieceValues = map[PieceType]int{
	Pawn: 100, Lance: 430, Knight: 450, Silver: 640, Gold: 690,
	Bishop: 890, Rook: 1040,
	King: 0, Jewel: 0,
	ProPawn: 420, ProLance: 530, ProKnight: 540, ProSilver: 670,
	Horse: 1150, Dragon: 1300,
}

// PieceValue returns the base centipawn value used for pt, exported
// so the search's MVV-LVA move-ordering term can share the same table
// instead of keeping a second copy.
func PieceValue(pt PieceType) int {
	return pieceValues[pt]
}

// Evaluator is a reusable static evaluator parameterized by EvalConfig.
// Create one with New and call Evaluate per position; it holds no
// per-call mutable state so a single instance is safe to reuse across
// an entire search, though not across concurrent searches.
type Evaluator struct {
	log *logging.Logger
	cfg config.EvalConfig
}

// New creates an Evaluator using cfg's tunable coefficients.
func New(cfg config.EvalConfig) *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog("evaluator", logging.WARNING),
		cfg: cfg,
	}
}

// Evaluate returns a centipawn score for pos from the perspective of
// side, combining material, hand material and positional terms. It is
// a pure function of its arguments.
func (e *Evaluator) Evaluate(pos position.Position, side Side) Score {
	opponent := side.Opponent()
	score := e.materialAndHand(pos, side) - e.materialAndHand(pos, opponent)
	score += e.positional(pos, side) - e.positional(pos, opponent)
	return Score(score)
}

func (e *Evaluator) materialAndHand(pos position.Position, side Side) int {
	total := 0
	pos.Board.Each(func(_ Square, piece Piece) {
		if piece.Side() == side {
			total += pieceValues[piece.Type()]
		}
	})
	pos.Hands.Each(side, func(pt PieceType, count int) {
		discounted := pieceValues[pt] * (100 - e.cfg.HandDiscountPercent) / 100
		total += discounted * count
	})
	return total
}

func (e *Evaluator) positional(pos position.Position, side Side) int {
	total := 0
	total += e.pawnAdvancement(pos, side)
	total += e.centrality(pos, side)
	total -= e.kingOpenFiles(pos, side)
	return total
}

// pawnAdvancement rewards friendly pawns standing inside the
// promotion zone, scaled by how deep they have advanced into it.
func (e *Evaluator) pawnAdvancement(pos position.Position, side Side) int {
	bonus := 0
	pos.Board.Each(func(sq Square, piece Piece) {
		if piece.Side() != side || piece.BaseType() != Pawn {
			return
		}
		if !side.PromotionZone(sq.Row()) {
			return
		}
		depth := promotionDepth(side, sq.Row())
		bonus += e.cfg.PawnAdvanceBonus * depth
	})
	return bonus
}

// promotionDepth returns how many ranks into the three-rank promotion
// zone row lies (1 = shallowest, 3 = the back rank itself).
func promotionDepth(side Side, row int) int {
	if side == Sente {
		return 4 - row
	}
	return row - 6
}

// centrality rewards silvers, golds and knights standing near the
// board's centre square, a cheap proxy for active piece placement.
func (e *Evaluator) centrality(pos position.Position, side Side) int {
	bonus := 0
	pos.Board.Each(func(sq Square, piece Piece) {
		if piece.Side() != side {
			return
		}
		switch piece.BaseType() {
		case Silver, Gold, Knight:
			steps := 8 - Manhattan(sq, Centre)
			if steps > 0 {
				bonus += steps * e.cfg.CentralityBonusPerStep / 8
			}
		}
	})
	return bonus
}

// kingOpenFiles penalizes side's royal for each adjacent file that
// holds none of side's own pieces, a cheap king-safety proxy.
func (e *Evaluator) kingOpenFiles(pos position.Position, side Side) int {
	royal, ok := pos.Board.FindRoyal(side)
	if !ok {
		return 0
	}
	penalty := 0
	for dc := -1; dc <= 1; dc++ {
		col := royal.Col() + dc
		if col < 1 || col > 9 {
			continue
		}
		if !fileHasFriendly(pos, side, col) {
			penalty += e.cfg.KingOpenFilePenalty
		}
	}
	return penalty
}

func fileHasFriendly(pos position.Position, side Side, col int) bool {
	for row := 1; row <= 9; row++ {
		p := pos.Board.Get(NewSquare(row, col))
		if p != NoPiece && p.Side() == side {
			return true
		}
	}
	return false
}
