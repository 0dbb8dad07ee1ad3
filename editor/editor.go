// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package editor

import (
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/sanity-io/litter"

	"github.com/danielhkuo/quickly-rank/ballot"
	"github.com/danielhkuo/quickly-rank/codec"
	"github.com/danielhkuo/quickly-rank/models"
)

// Point is a pointer or touch coordinate in projector space.
type Point struct {
	X, Y float64
}

// HitTester resolves a coordinate to the rank row under it.
type HitTester interface {
	RankAt(p Point) (rank int, ok bool)
}

// HitFunc adapts a function to HitTester.
type HitFunc func(p Point) (int, bool)

func (f HitFunc) RankAt(p Point) (int, bool) { return f(p) }

// DragSource tells which protocol started a drag.
type DragSource int

const (
	DragNone DragSource = iota
	DragPointer
	DragTouch
)

// InteractionState is the transient drag context. It is never transmitted.
type InteractionState struct {
	Source        DragSource
	DraggedChoice ballot.Candidate
	DragTarget    int
	DragPos       Point
}

// Dragging reports whether a drag is in progress.
func (s InteractionState) Dragging() bool { return s.Source != DragNone }

var idle = InteractionState{Source: DragNone, DraggedChoice: ballot.NoCandidate}

type Option func(*Editor)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithStrict makes invariant violations panic instead of only being logged.
func WithStrict(strict bool) Option {
	return func(e *Editor) { e.strict = strict }
}

// WithRand sets the source used to shuffle a fresh ballot.
func WithRand(rng *rand.Rand) Option {
	return func(e *Editor) { e.rng = rng }
}

// Editor routes input events from every protocol onto one ballot. All
// mutation goes through applyMove and applySplit.
//
// An Editor has a single owner and is not safe for concurrent use.
type Editor struct {
	names  []string
	ballot *ballot.Ballot

	held    ballot.Candidate
	drag    InteractionState
	pending []func()

	log    *slog.Logger
	strict bool
	rng    *rand.Rand
}

// New starts an editing session. An empty or malformed initial ranking
// starts from a shuffled ballot.
func New(candidates []string, initial models.FlatSelection, opts ...Option) *Editor {
	e := &Editor{
		names: slices.Clone(candidates),
		held:  ballot.NoCandidate,
		drag:  idle,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ballot = codec.Initial(len(e.names), initial, e.rng)
	return e
}

// Candidates returns the candidate names, indexed by Candidate.
func (e *Editor) Candidates() []string { return slices.Clone(e.names) }

// Ballot returns a copy of the current ballot.
func (e *Editor) Ballot() *ballot.Ballot { return e.ballot.Clone() }

// GetSelections encodes the current ballot for submission.
func (e *Editor) GetSelections() models.FlatSelection { return codec.Encode(e.ballot) }

// Describe renders the current ballot as "A > B = C".
func (e *Editor) Describe() string { return codec.Describe(e.names, e.GetSelections()) }

// Focused returns the held candidate.
func (e *Editor) Focused() (ballot.Candidate, bool) {
	return e.held, e.held != ballot.NoCandidate
}

// State returns the current drag context.
func (e *Editor) State() InteractionState { return e.drag }

// Snapshot is everything a projector needs to draw one frame.
type Snapshot struct {
	Names   []string
	Groups  [][]ballot.Candidate
	Focused ballot.Candidate
	Drag    InteractionState
}

func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Names:   e.Candidates(),
		Groups:  e.ballot.Groups(),
		Focused: e.held,
		Drag:    e.drag,
	}
}

// TrailingRank is the rank of the always-present empty row. Targeting it
// creates a new lowest group.
func (e *Editor) TrailingRank() int { return e.ballot.Ranks() }

// Rendered tells the editor the projector has materialized the latest
// layout. Continuations queued by mutations run now.
func (e *Editor) Rendered() {
	for len(e.pending) > 0 {
		pending := e.pending
		e.pending = nil
		for _, fn := range pending {
			fn()
		}
	}
}

// Teardown drops all transient state. The ballot is kept so the caller can
// still read selections.
func (e *Editor) Teardown() {
	e.held = ballot.NoCandidate
	e.drag = idle
	e.pending = nil
}

// Focus makes c the held candidate.
func (e *Editor) Focus(c ballot.Candidate) {
	if !e.ballot.Contains(c) {
		return
	}
	e.held = c
}

// Blur abandons whatever gesture relied on the held candidate.
func (e *Editor) Blur() {
	e.held = ballot.NoCandidate
}

func (e *Editor) validRow(rank int) bool {
	return rank >= 0 && rank <= e.TrailingRank()
}

// applyMove is the single entry point for moves. then runs after the next
// render, once the projector has laid out the new rows.
func (e *Editor) applyMove(c ballot.Candidate, target int, then func()) bool {
	from, err := e.ballot.RankOf(c)
	if err != nil {
		return false
	}
	if !e.ballot.MoveCandidateToRank(c, target) {
		return false
	}
	e.log.Debug("candidate moved", "candidate", int(c), "from", from, "to", target, "ballot", e.ballot.String())
	e.afterMutation(then)
	return true
}

func (e *Editor) applySplit(c ballot.Candidate, rank int, then func()) bool {
	if !e.ballot.SplitCandidateToNewRank(c, rank) {
		return false
	}
	e.log.Debug("candidate split", "candidate", int(c), "rank", rank, "ballot", e.ballot.String())
	e.afterMutation(then)
	return true
}

func (e *Editor) afterMutation(then func()) {
	if err := e.ballot.Validate(); err != nil {
		e.log.Error("ballot invariant violated", "error", err, "groups", litter.Sdump(e.ballot.Groups()))
		if e.strict {
			panic(err)
		}
	}
	// The moved element is re-rendered, which drops platform focus.
	e.held = ballot.NoCandidate
	if then != nil {
		e.pending = append(e.pending, then)
	}
}

// refocus returns a continuation restoring focus to c unless something else
// took focus in the meantime.
func (e *Editor) refocus(c ballot.Candidate) func() {
	return func() {
		if e.held == ballot.NoCandidate {
			e.held = c
		}
	}
}

func (e *Editor) clearDrag() {
	e.drag = idle
}
