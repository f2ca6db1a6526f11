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

// Package matesearch implements a depth-bounded,
// alternating AND/OR mate search: the attacker's OR nodes succeed if
// any move leads to a succeeding AND node, the defender's AND nodes
// succeed only if every legal reply leads to a succeeding OR node
// (and succeed outright if the defender has no legal move at all,
// since the defender is then already mated). It shares
// the recursive, cooperative-cancellation shape of
// internal/search.alphaBeta -- a node counter, a time limit, and a
// polled stop flag -- but replaces negamax scoring with a boolean
// win/lose propagation, since a mate search only cares whether a
// forced mate exists, not by how much a position is ahead.
package matesearch

import (
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/komatsu/shogigo/internal/logging"
	"github.com/komatsu/shogigo/internal/position"
	"github.com/komatsu/shogigo/internal/rules"
	. "github.com/komatsu/shogigo/internal/types"
)

// Result is the outcome of one top-level Search call.
type Result struct {
	IsMate        bool
	PrincipalLine []Move
	NodesSearched int64
	ElapsedMs     int64
}

// MateSearcher runs depth-bounded AND/OR mate searches. The zero value
// is ready to use; each Search call resets its own node counter and
// time budget, so state never leaks between invocations.
type MateSearcher struct {
	log *logging.Logger

	nodes     int64
	startTime time.Time
	timeLimit time.Duration
	stopped   bool
}

// New creates a MateSearcher.
func New() *MateSearcher {
	return &MateSearcher{log: myLogging.GetLog("matesearch", logging.WARNING)}
}

// Stop requests cancellation of the in-flight Search call.
func (m *MateSearcher) Stop() {
	m.stopped = true
}

// Search looks for a forced mate of side's opponent, starting from
// pos with attacker, within maxPlies (only odd values are meaningful:
// ply 1 is "attacker delivers mate in one", ply 3 is "mate in two"
// plies for the attacker, and so on) and timeLimit (0 means no
// timeout).
func (m *MateSearcher) Search(pos position.Position, attacker Side, maxPlies int, timeLimit time.Duration) Result {
	m.nodes = 0
	m.startTime = time.Now()
	m.timeLimit = timeLimit
	m.stopped = false

	line := make([]Move, 0, maxPlies)
	isMate, pv := m.orNode(pos, attacker, maxPlies, line)
	return Result{
		IsMate:        isMate,
		PrincipalLine: pv,
		NodesSearched: m.nodes,
		ElapsedMs:     time.Since(m.startTime).Milliseconds(),
	}
}

func (m *MateSearcher) timedOut() bool {
	if m.stopped {
		return true
	}
	if m.timeLimit <= 0 {
		return false
	}
	return time.Since(m.startTime) > m.timeLimit
}

// orNode is the attacker's node: succeeds if any move leads to a
// succeeding AND node (the defender finding no escape).
func (m *MateSearcher) orNode(pos position.Position, attacker Side, pliesLeft int, line []Move) (bool, []Move) {
	m.nodes++
	if pliesLeft <= 0 || m.timedOut() {
		return false, nil
	}

	moves := rules.GenerateAllLegalMoves(pos.Board, pos.Hands, attacker)
	for _, mv := range moves {
		nb, nh, next, err := rules.ApplyMove(pos.Board, pos.Hands, attacker, mv)
		if err != nil {
			continue
		}
		child := position.Position{Board: nb, Hands: nh, SideToMove: next}
		if !rules.InCheck(nb, next) {
			continue // only forcing checks count toward a mating sequence
		}
		childLine := append(append([]Move(nil), line...), mv)
		if ok, pv := m.andNode(child, attacker, pliesLeft-1, childLine); ok {
			return true, pv
		}
		if m.timedOut() {
			return false, nil
		}
	}
	return false, nil
}

// andNode is the defender's node: succeeds (for the attacker) only if
// every legal reply leads to a succeeding OR node. A defender with no
// legal move at all is already mated, which also counts as success.
func (m *MateSearcher) andNode(pos position.Position, attacker Side, pliesLeft int, line []Move) (bool, []Move) {
	m.nodes++
	defender := attacker.Opponent()
	moves := rules.GenerateAllLegalMoves(pos.Board, pos.Hands, defender)
	if len(moves) == 0 {
		return true, line
	}
	if pliesLeft <= 0 || m.timedOut() {
		return false, nil
	}

	var longestPV []Move
	for _, mv := range moves {
		nb, nh, next, err := rules.ApplyMove(pos.Board, pos.Hands, defender, mv)
		if err != nil {
			continue
		}
		child := position.Position{Board: nb, Hands: nh, SideToMove: next}
		childLine := append(append([]Move(nil), line...), mv)
		ok, pv := m.orNode(child, attacker, pliesLeft-1, childLine)
		if !ok {
			return false, nil
		}
		longestPV = pv
		if m.timedOut() {
			return false, nil
		}
	}
	return true, longestPV
}
