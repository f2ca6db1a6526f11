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

// Score is a centipawn evaluation from the perspective of some side
// to move (negamax convention: score(parent) = -max(score(children))).
type Score int32

const (
	// MateScore is the evaluation assigned to an immediate win. Actual
	// mate scores are MateScore-ply so that shorter mates sort higher.
	MateScore Score = 100_000

	// DrawScore is returned for stalemate / no-legal-move non-mate
	// positions.
	DrawScore Score = 0

	// Infinity bounds alpha-beta windows wide enough to never clip a
	// real evaluation or mate score.
	Infinity Score = MateScore + 1_000
)

// MateIn returns the score for delivering mate in the given number of
// plies from the current node ("-MATE_SCORE + ply" from the search's
// point of view).
func MateIn(ply int) Score {
	return MateScore - Score(ply)
}

// IsMateScore reports whether s represents a forced mate for either
// side.
func (s Score) IsMateScore() bool {
	return s > MateScore-1_000 || s < -(MateScore-1_000)
}
