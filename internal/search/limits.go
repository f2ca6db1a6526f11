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
	"sync/atomic"
	"time"
)

// limits tracks the cooperative stop/timeout condition a search polls
// at every node and at every iterative-deepening boundary. It is
// deliberately a plain atomic flag rather than a context.Context:
// there is no pre-emption anywhere -- both sides of the check are
// cooperative, so a flag is all the recursion needs.
type limits struct {
	stopped   atomic.Bool
	startTime time.Time
	timeLimit time.Duration
}

func newLimits(timeLimit time.Duration) *limits {
	return &limits{startTime: time.Now(), timeLimit: timeLimit}
}

// stop sets the cooperative stop flag. Idempotent.
func (l *limits) stop() {
	l.stopped.Store(true)
}

// shouldStop reports whether the search should abandon its current
// iteration: either stop() was called, or the configured time budget
// has elapsed. A zero TimeLimit means "no timeout".
func (l *limits) shouldStop() bool {
	if l.stopped.Load() {
		return true
	}
	if l.timeLimit <= 0 {
		return false
	}
	return time.Since(l.startTime) > l.timeLimit
}

func (l *limits) elapsed() time.Duration {
	return time.Since(l.startTime)
}
