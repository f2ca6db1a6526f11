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

// Package engine exposes the embedder-facing API: a single Engine
// type constructed with an explicit Config (no package singleton)
// that wraps the search, evaluator and opening book packages behind
// CalculateBestMove/EvaluatePosition/GenerateAllLegalMoves/Stop. A
// golang.org/x/sync/semaphore.Weighted of size 1 enforces that only
// one caller is inside the engine at a time.
package engine

import (
	"math/rand"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/komatsu/shogigo/internal/config"
	"github.com/komatsu/shogigo/internal/evaluator"
	myLogging "github.com/komatsu/shogigo/internal/logging"
	"github.com/komatsu/shogigo/internal/matesearch"
	"github.com/komatsu/shogigo/internal/openingbook"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	"github.com/komatsu/shogigo/internal/search"
	. "github.com/komatsu/shogigo/internal/types"
)

// PositionEvaluation is the cached evaluation snapshot
// GetLastEvaluation returns.
type PositionEvaluation struct {
	Score Score
	Depth int
	Nodes int64
	Time  time.Duration
	PV    []Move
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithShuffleRNG overrides the RNG used for beginner-difficulty
// root-move shuffling.
func WithShuffleRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.shuffleRNG = rng }
}

// WithNoiseRNG overrides the RNG used for beginner-difficulty
// random-move substitution.
func WithNoiseRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.noiseRNG = rng }
}

// WithBookRNG overrides the RNG used for the opening book's
// weighted-random move selection.
func WithBookRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.bookRNG = rng }
}

// WithProfiling wraps every CalculateBestMove call in a CPU profile
// written under path.
func WithProfiling(path string) Option {
	return func(e *Engine) { e.profilePath = path }
}

// Engine is the embedder-facing façade.
type Engine struct {
	log *logging.Logger
	cfg config.Config

	book        *openingbook.Book
	running     *semaphore.Weighted
	shuffleRNG  *rand.Rand
	noiseRNG    *rand.Rand
	bookRNG     *rand.Rand
	profilePath string

	lastEval PositionEvaluation

	searcher *search.Search
	mate     *matesearch.MateSearcher
}

// New builds an Engine from cfg. Opening-book loading is a separate
// step (LoadOpeningBook) because it can fail and is recoverable:
// construction itself never fails.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		log:        myLogging.GetLog("engine", cfg.Log.Level),
		cfg:        cfg,
		running:    semaphore.NewWeighted(1),
		shuffleRNG: rand.New(rand.NewSource(1)),
		noiseRNG:   rand.New(rand.NewSource(2)),
		bookRNG:    rand.New(rand.NewSource(3)),
	}
	for _, opt := range opts {
		opt(e)
	}
	eval := evaluator.New(cfg.Eval)
	e.searcher = search.New(eval.Evaluate, func(pos position.Position, side Side) []Move {
		return rules.GenerateAllLegalMoves(pos.Board, pos.Hands, side)
	})
	e.mate = matesearch.New()
	return e
}

// NewWithDifficulty is a convenience constructor for embedders that
// only care about the difficulty preset.
func NewWithDifficulty(d config.Difficulty, opts ...Option) *Engine {
	return New(config.Default().WithDifficulty(d), opts...)
}

// SetDifficulty swaps in the search preset for d, leaving the
// evaluator/book/log configuration untouched.
func (e *Engine) SetDifficulty(d config.Difficulty) {
	e.cfg = e.cfg.WithDifficulty(d)
}

// GetConfig returns the Engine's current configuration.
func (e *Engine) GetConfig() config.Config {
	return e.cfg
}

// SetConfig replaces the Engine's configuration wholesale. Callers
// that want a partial update should read GetConfig, modify the copy,
// and pass it back -- there is no hidden merge logic to keep in sync
// with Config's fields.
func (e *Engine) SetConfig(cfg config.Config) {
	e.cfg = cfg
}

// LoadOpeningBook opens (or reopens) the book described by the
// Engine's current BookConfig. A failure is recovered locally: the
// Engine falls back to pure search.
func (e *Engine) LoadOpeningBook() error {
	book, err := openingbook.New(e.cfg.Book)
	if err != nil {
		e.log.Warningf("engine: opening book load failed, continuing without a book: %v", err)
		e.book = nil
		return err
	}
	if e.cfg.Book.Path != "" {
		if _, err := book.LoadFile(e.cfg.Book.Path, e.cfg.Book.MaxDepthOnLoad); err != nil {
			e.log.Warningf("engine: opening book load failed, continuing without a book: %v", err)
			book.Close()
			e.book = nil
			return err
		}
	}
	e.book = book
	return nil
}

// Stop requests cancellation of any in-flight CalculateBestMove call.
func (e *Engine) Stop() {
	if e.searcher != nil {
		e.searcher.Stop()
	}
	if e.mate != nil {
		e.mate.Stop()
	}
}

// GetLastEvaluation returns the evaluation cached by the most recent
// CalculateBestMove or EvaluatePosition call.
func (e *Engine) GetLastEvaluation() PositionEvaluation {
	return e.lastEval
}

// GenerateAllLegalMoves returns every fully legal move for side in
// the given board/hands.
func (e *Engine) GenerateAllLegalMoves(board position.Board, hands position.Hands, side Side) []Move {
	return rules.GenerateAllLegalMoves(board, hands, side)
}

// EvaluatePosition returns a static evaluation of (board, hands) from
// side's perspective, without searching.
func (e *Engine) EvaluatePosition(board position.Board, hands position.Hands, side Side) PositionEvaluation {
	eval := evaluator.New(e.cfg.Eval)
	score := eval.Evaluate(position.Position{Board: board, Hands: hands, SideToMove: side}, side)
	result := PositionEvaluation{Score: score}
	e.lastEval = result
	return result
}

// CalculateBestMove computes the best move for side from the given
// board and hands. It is guarded by a size-1 semaphore: a concurrent
// call that finds the Engine already busy is rejected rather than
// queued.
//
// The move history parameter exists for embedders that track one;
// this module does not implement sennichite (repetition-draw)
// detection, so it is accepted but not yet consulted.
func (e *Engine) CalculateBestMove(board position.Board, hands position.Hands, side Side, _ []Move) (Move, error) {
	if !e.running.TryAcquire(1) {
		return NoMove, &ErrEngineBusy{}
	}
	defer e.running.Release(1)

	legalMoves := rules.GenerateAllLegalMoves(board, hands, side)
	if len(legalMoves) == 0 {
		return NoMove, &ErrNoLegalMoves{Side: side}
	}

	if e.profilePath != "" {
		stop := startProfile(e.profilePath)
		defer stop()
	}

	pos := position.Position{Board: board, Hands: hands, SideToMove: side}

	if e.cfg.Search.UseOpeningBook && e.book != nil {
		if entries, ok := e.book.FindMoves(pos, true, e.bookRNG); ok && len(entries) > 0 {
			mv := entries[0].Move
			e.lastEval = PositionEvaluation{Depth: 0}
			return mv, nil
		}
	}

	// Trivial mate-in-one probe before the full search: if a single
	// move mates right now, no depth or time tuning can beat it.
	if mate := e.mate.Search(pos, side, 1, 250*time.Millisecond); mate.IsMate && len(mate.PrincipalLine) > 0 {
		e.lastEval = PositionEvaluation{
			Score: MateIn(1),
			Depth: 1,
			Nodes: mate.NodesSearched,
			Time:  time.Duration(mate.ElapsedMs) * time.Millisecond,
			PV:    mate.PrincipalLine,
		}
		return mate.PrincipalLine[0], nil
	}

	// rootOverride, when set, replaces the search's own root move
	// generation for this one call (search.Options.RootMoves). This is
	// how beginner-difficulty's shuffle actually reaches the engine's
	// output: Search.Run orders its PV/killer moves first and its own
	// generator afterward for every deeper ply, so only the ply-0 list
	// itself can carry the shuffle through.
	var rootOverride []Move

	if e.cfg.Difficulty == config.Beginner {
		shuffled := shuffledMoves(legalMoves, e.shuffleRNG)
		if e.noiseRNG.Float64() < config.BeginnerNoise {
			mv := shuffled[e.noiseRNG.Intn(len(shuffled))]
			e.lastEval = PositionEvaluation{Depth: 0}
			return mv, nil
		}
		rootOverride = shuffled
	}

	result := e.searcher.Run(pos, side, search.Options{
		MaxDepth:   e.cfg.Search.MaxDepth,
		TimeLimit:  time.Duration(e.cfg.Search.TimeLimitMs) * time.Millisecond,
		TTCapacity: e.cfg.Search.TTSizeEntries,
		RootMoves:  rootOverride,
	})
	e.lastEval = PositionEvaluation{Score: result.Score, Depth: result.Depth, Nodes: result.Nodes, Time: result.Time, PV: result.PV}

	if result.BestMove.IsNone() {
		// legalMoves was non-empty, so an empty result can only mean
		// the search was stopped before its first iteration finished.
		return NoMove, &ErrSearchAborted{Reason: "stopped before any iteration completed"}
	}
	return result.BestMove, nil
}

// shuffledMoves returns a freshly allocated Fisher-Yates shuffle of
// moves, leaving moves itself untouched.
func shuffledMoves(moves []Move, rng *rand.Rand) []Move {
	shuffled := append([]Move(nil), moves...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled
}
