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

package engine

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komatsu/shogigo/internal/config"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	. "github.com/komatsu/shogigo/internal/types"
)

func sq(r, c int) Square { return NewSquare(r, c) }

func fastTestConfig() config.Config {
	cfg := config.Default()
	cfg.Search.MaxDepth = 2
	cfg.Search.TimeLimitMs = 2000
	cfg.Search.UseOpeningBook = false
	return cfg
}

func TestCalculateBestMoveFromStartPosition(t *testing.T) {
	e := New(fastTestConfig())
	pos := position.New()

	move, err := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)
	require.NoError(t, err)
	assert.False(t, move.IsNone())

	lastEval := e.GetLastEvaluation()
	assert.Greater(t, lastEval.Depth, 0)
}

// TestCalculateBestMoveOnTerminalPositionReturnsError reuses the
// knight/rook no-legal-moves fixture: Sente's king is checkmated, so
// CalculateBestMove must report ErrNoLegalMoves rather than search.
func TestCalculateBestMoveOnTerminalPositionReturnsError(t *testing.T) {
	board := position.Empty()
	board = board.Set(sq(9, 5), NewPiece(King, Sente, false))
	board = board.Set(sq(9, 4), NewPiece(Knight, Sente, false))
	board = board.Set(sq(9, 6), NewPiece(Knight, Sente, false))
	board = board.Set(sq(8, 4), NewPiece(Knight, Sente, false))
	board = board.Set(sq(8, 6), NewPiece(Knight, Sente, false))
	board = board.Set(sq(8, 5), NewPiece(Rook, Gote, false))
	board = board.Set(sq(7, 5), NewPiece(Pawn, Gote, false))
	board = board.Set(sq(1, 1), NewPiece(King, Gote, false))
	hands := position.NewHands()

	e := New(fastTestConfig())
	move, err := e.CalculateBestMove(board, hands, Sente, nil)

	var noLegal *ErrNoLegalMoves
	require.ErrorAs(t, err, &noLegal)
	assert.Equal(t, Sente, noLegal.Side)
	assert.True(t, move.IsNone())
}

func TestBeginnerDifficultyUsesNoiseAndShuffle(t *testing.T) {
	cfg := fastTestConfig().WithDifficulty(config.Beginner)
	// Force the noise branch to always fire so the test is deterministic:
	// noiseRNG.Float64() < BeginnerNoise must hold on the very first draw.
	e := New(cfg, WithNoiseRNG(rand.New(zeroSource{})), WithShuffleRNG(rand.New(rand.NewSource(7))))

	pos := position.New()
	move, err := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)
	require.NoError(t, err)
	assert.False(t, move.IsNone())
	assert.Equal(t, 0, e.GetLastEvaluation().Depth)
}

// TestShuffledMovesIsAPermutationAndSeedDependent checks shuffledMoves,
// the helper CalculateBestMove's non-noise beginner path now threads
// into search.Options.RootMoves (see engine.go): it must return every
// input move exactly once, and two different RNG seeds must (for a
// list long enough to make a collision implausible) produce different
// orders -- otherwise the "shuffle" would be a no-op, which is exactly
// what the prior dead-code version of this feature did.
func TestShuffledMovesIsAPermutationAndSeedDependent(t *testing.T) {
	pos := position.New()
	moves := rules.GenerateAllLegalMoves(pos.Board, pos.Hands, pos.SideToMove)
	require.GreaterOrEqual(t, len(moves), 8)

	shuffledA := shuffledMoves(moves, rand.New(rand.NewSource(1)))
	shuffledB := shuffledMoves(moves, rand.New(rand.NewSource(2)))

	assert.ElementsMatch(t, moves, shuffledA)
	assert.ElementsMatch(t, moves, shuffledB)
	assert.NotEqual(t, shuffledA, shuffledB)
}

// TestBeginnerDifficultyNonNoisePathStillSearches checks that the
// non-noise beginner branch falls through to a real search (unlike the
// noise branch's immediate return): CalculateBestMove's cached
// evaluation must show a completed iteration, not the Depth: 0 marker
// the noise and book paths set. CalculateBestMove now threads the
// computed shuffle into search.Options.RootMoves instead of discarding
// it (engine.go's rootOverride); search's own
// TestRunHonorsRootMovesOverride test proves Run actually honors
// whatever RootMoves it is given.
func TestBeginnerDifficultyNonNoisePathStillSearches(t *testing.T) {
	cfg := fastTestConfig().WithDifficulty(config.Beginner)
	// Force the non-noise branch: halfSource makes noiseRNG.Float64()
	// return exactly 0.5, which is >= BeginnerNoise on every draw.
	e := New(cfg, WithNoiseRNG(rand.New(halfSource{})), WithShuffleRNG(rand.New(rand.NewSource(7))))

	pos := position.New()
	move, err := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)
	require.NoError(t, err)
	assert.False(t, move.IsNone())
	assert.Greater(t, e.GetLastEvaluation().Depth, 0)
}

// TestCalculateBestMoveFindsMateInOne exercises the mate-in-one probe
// that runs ahead of the full search: the gold in hand drops next to
// the boxed Gote king (supported by the pawn on 3,5) and mates
// immediately, so CalculateBestMove must return a mating move and
// cache a mate score, regardless of the configured search depth.
func TestCalculateBestMoveFindsMateInOne(t *testing.T) {
	board := position.Empty()
	board = board.Set(sq(9, 5), NewPiece(King, Sente, false))
	board = board.Set(sq(3, 5), NewPiece(Pawn, Sente, false))
	board = board.Set(sq(1, 5), NewPiece(King, Gote, false))
	board = board.Set(sq(1, 4), NewPiece(Pawn, Gote, false))
	board = board.Set(sq(1, 6), NewPiece(Pawn, Gote, false))
	board = board.Set(sq(2, 4), NewPiece(Pawn, Gote, false))
	board = board.Set(sq(2, 6), NewPiece(Pawn, Gote, false))
	hands := position.NewHands().Add(Sente, Gold)

	e := New(fastTestConfig())
	move, err := e.CalculateBestMove(board, hands, Sente, nil)
	require.NoError(t, err)

	nb, nh, next, applyErr := rules.ApplyMove(board, hands, Sente, move)
	require.NoError(t, applyErr)
	assert.True(t, rules.IsCheckmate(nb, nh, next))
	assert.True(t, e.GetLastEvaluation().Score.IsMateScore())
}

// TestConcurrentCallRejectedAsBusy: a call that arrives while another
// is still holding the semaphore is rejected, not queued.
func TestConcurrentCallRejectedAsBusy(t *testing.T) {
	e := New(fastTestConfig())
	require.True(t, e.running.TryAcquire(1))
	defer e.running.Release(1)

	pos := position.New()
	move, err := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)

	var busy *ErrEngineBusy
	require.ErrorAs(t, err, &busy)
	assert.True(t, move.IsNone())
}

func TestSetDifficultyChangesSearchPreset(t *testing.T) {
	e := New(config.Default())
	e.SetDifficulty(config.Expert)
	assert.Equal(t, config.SearchConfigFor(config.Expert), e.GetConfig().Search)
}

func TestLoadOpeningBookFailureIsRecoverable(t *testing.T) {
	// A regular file cannot be opened as a badger directory, so this
	// deterministically exercises the recoverable failure path.
	blocked := filepath.Join(t.TempDir(), "not-a-directory")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	cfg := fastTestConfig()
	cfg.Book.DiskDir = blocked
	e := New(cfg)

	err := e.LoadOpeningBook()
	assert.Error(t, err)

	pos := position.New()
	move, moveErr := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)
	require.NoError(t, moveErr)
	assert.False(t, move.IsNone())
}

func TestEvaluatePositionDoesNotSearch(t *testing.T) {
	e := New(fastTestConfig())
	pos := position.New()
	result := e.EvaluatePosition(pos.Board, pos.Hands, pos.SideToMove)
	assert.Equal(t, 0, result.Depth)
	assert.Equal(t, result, e.GetLastEvaluation())
}

func TestGenerateAllLegalMovesMatchesStartPositionCount(t *testing.T) {
	e := New(fastTestConfig())
	pos := position.New()
	moves := e.GenerateAllLegalMoves(pos.Board, pos.Hands, pos.SideToMove)
	assert.Len(t, moves, 30)
}

// zeroSource is a rand.Source that always returns 0, forcing
// Float64() to return 0 so a noise-probability branch always fires.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// halfSource always returns 1<<62, forcing Float64() to return 0.5 so
// a noise-probability branch never fires.
type halfSource struct{}

func (halfSource) Int63() int64 { return 1 << 62 }
func (halfSource) Seed(int64)   {}
