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

// IllegalMoveKind enumerates the ways ApplyMove can reject a move.
type IllegalMoveKind uint8

const (
	NoPieceAtSource IllegalMoveKind = iota
	WrongOwner
	CaptureOwnPiece
	NoPieceInHand
	SquareOccupied
	TwoPawnsInFile
	ImmobilePieceDrop
	DropPawnMate
)

func (k IllegalMoveKind) String() string {
	switch k {
	case NoPieceAtSource:
		return "no piece at source"
	case WrongOwner:
		return "piece does not belong to side to move"
	case CaptureOwnPiece:
		return "destination holds a friendly piece"
	case NoPieceInHand:
		return "no such piece in hand"
	case SquareOccupied:
		return "destination square is occupied"
	case TwoPawnsInFile:
		return "file already holds an unpromoted pawn of this side"
	case ImmobilePieceDrop:
		return "drop would leave the piece unable to ever move"
	case DropPawnMate:
		return "pawn drop would deliver immediate checkmate"
	default:
		return "unknown illegal move"
	}
}

// IllegalMoveError is returned by ApplyMove when a move violates one
// of the move-legality rules. It carries enough context
// (the offending move and the kind of violation) to diagnose the
// rejection without re-deriving it from the board.
type IllegalMoveError struct {
	Kind IllegalMoveKind
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Kind)
}

// NewIllegalMoveError builds an IllegalMoveError for the given move.
func NewIllegalMoveError(kind IllegalMoveKind, move Move) *IllegalMoveError {
	return &IllegalMoveError{Kind: kind, Move: move}
}

// ErrNoLegalMoves is returned by calculateBestMove when the position
// to move from is terminal (checkmate or stalemate-equivalent).
type ErrNoLegalMoves struct {
	Side Side
}

func (e *ErrNoLegalMoves) Error() string {
	return fmt.Sprintf("no legal moves available for %s", e.Side)
}

// ErrSearchAborted is returned when a search is stopped or times out
// before a single iteration has completed.
type ErrSearchAborted struct {
	Reason string
}

func (e *ErrSearchAborted) Error() string {
	return "search aborted before any iteration completed: " + e.Reason
}

// ErrBookLoadFailed wraps an opening-book ingestion error.
// Engine.LoadOpeningBook recovers from this locally by running without
// a book.
type ErrBookLoadFailed struct {
	Path string
	Err  error
}

func (e *ErrBookLoadFailed) Error() string {
	return fmt.Sprintf("opening book load failed for %q: %v", e.Path, e.Err)
}

func (e *ErrBookLoadFailed) Unwrap() error {
	return e.Err
}

// ErrEngineBusy is returned by CalculateBestMove when a prior call on
// the same Engine instance has not yet returned; an Engine serves one
// caller at a time.
type ErrEngineBusy struct{}

func (e *ErrEngineBusy) Error() string {
	return "engine is already searching"
}
