// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package editor

import (
	"slices"

	"github.com/danielhkuo/quickly-rank/ballot"
)

// Every method here returns true only when the ballot changed. Gestures
// whose preconditions are not met are silently ignored.

// ClickCandidate picks up c.
func (e *Editor) ClickCandidate(c ballot.Candidate) {
	e.Focus(c)
}

// ClickRow places the held candidate at rank.
func (e *Editor) ClickRow(rank int) bool {
	c, ok := e.Focused()
	if !ok || !e.validRow(rank) {
		return false
	}
	return e.applyMove(c, rank, nil)
}

// DragStart begins a pointer drag of c. Starting a drag focuses the source.
func (e *Editor) DragStart(c ballot.Candidate) {
	if !e.ballot.Contains(c) {
		return
	}
	rank, err := e.ballot.RankOf(c)
	if err != nil {
		return
	}
	e.Focus(c)
	e.drag = InteractionState{Source: DragPointer, DraggedChoice: c, DragTarget: rank}
}

// DragOver reports whether rank accepts a drop and records it as the
// current target.
func (e *Editor) DragOver(rank int) bool {
	if !e.drag.Dragging() && e.held == ballot.NoCandidate {
		return false
	}
	if !e.validRow(rank) {
		return false
	}
	e.drag.DragTarget = rank
	return true
}

// Drop moves the focused candidate to rank. When focus was lost mid-drag
// the dragged candidate is used instead.
func (e *Editor) Drop(rank int) bool {
	c, ok := e.Focused()
	if !ok {
		c = e.drag.DraggedChoice
	}
	defer e.clearDrag()
	if c == ballot.NoCandidate || !e.validRow(rank) {
		return false
	}
	return e.applyMove(c, rank, nil)
}

// DragEnd finishes or cancels a pointer drag.
func (e *Editor) DragEnd() {
	if e.drag.Source == DragPointer {
		e.clearDrag()
	}
}

// TouchStart begins a touch drag of c at pos. The initial target is c's own
// row, so lifting the finger without moving is a no-op.
func (e *Editor) TouchStart(c ballot.Candidate, pos Point) {
	if e.drag.Dragging() {
		e.log.Debug("clearing stranded drag", "candidate", int(e.drag.DraggedChoice))
		e.clearDrag()
	}
	rank, err := e.ballot.RankOf(c)
	if err != nil {
		return
	}
	e.drag = InteractionState{Source: DragTouch, DraggedChoice: c, DragTarget: rank, DragPos: pos}
}

// TouchMove tracks the finger. When hit resolves a row under pos it becomes
// the target; otherwise the last valid target is kept.
func (e *Editor) TouchMove(pos Point, hit HitTester) {
	if e.drag.Source != DragTouch {
		return
	}
	e.drag.DragPos = pos
	if hit == nil {
		return
	}
	if rank, ok := hit.RankAt(pos); ok && e.validRow(rank) {
		e.drag.DragTarget = rank
	}
}

// TouchEnd drops the dragged candidate on the last valid target.
func (e *Editor) TouchEnd() bool {
	if e.drag.Source != DragTouch {
		return false
	}
	c, target := e.drag.DraggedChoice, e.drag.DragTarget
	changed := e.applyMove(c, target, nil)
	e.clearDrag()
	return changed
}

// TouchCancel abandons a touch drag without moving anything.
func (e *Editor) TouchCancel() {
	if e.drag.Source == DragTouch {
		e.clearDrag()
	}
}

// PointerDown must be reported for every new press. A touch drag that never
// received touchend or touchcancel is cleared here.
func (e *Editor) PointerDown() {
	if e.drag.Dragging() {
		e.log.Debug("clearing stranded drag", "candidate", int(e.drag.DraggedChoice))
		e.clearDrag()
	}
}

// KeyDown handles a key pressed while a candidate holds focus.
func (e *Editor) KeyDown(k Key) bool {
	c, ok := e.Focused()
	if !ok {
		return false
	}
	rank, err := e.ballot.RankOf(c)
	if err != nil {
		return false
	}

	switch k {
	case KeyEnter, KeySpace:
		e.ClickCandidate(c)
	case KeyArrowUp:
		return e.applyMove(c, rank-1, e.refocus(c))
	case KeyArrowDown:
		return e.applyMove(c, rank+1, e.refocus(c))
	case KeyArrowLeft, KeyArrowRight:
		group := e.ballot.Group(rank)
		i := slices.Index(group, c)
		if k == KeyArrowLeft && i > 0 {
			e.held = group[i-1]
		} else if k == KeyArrowRight && i < len(group)-1 {
			e.held = group[i+1]
		}
	case KeyEscape:
		e.Blur()
	}
	return false
}

// KeyDownOnRow handles a key pressed while a rank row holds focus.
func (e *Editor) KeyDownOnRow(k Key, rank int) bool {
	switch k {
	case KeyEnter, KeySpace:
		return e.ClickRow(rank)
	}
	return false
}

// ContextClick splits c out of its tie.
func (e *Editor) ContextClick(c ballot.Candidate) bool {
	if !e.ballot.Contains(c) {
		return false
	}
	e.Focus(c)
	rank, err := e.ballot.RankOf(c)
	if err != nil {
		return false
	}
	return e.applySplit(c, rank, nil)
}
