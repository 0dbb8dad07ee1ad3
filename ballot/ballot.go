// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Candidate is a stable zero-based index into the candidate name list.
type Candidate int

// NoCandidate marks the absence of a candidate (nothing focused or dragged).
const NoCandidate Candidate = -1

// LeadingRank is the move target meaning "before rank 0".
const LeadingRank = -1

// ConsistencyError reports a violated ballot invariant. It indicates a bug
// in whatever mutated the ballot, never bad user input.
type ConsistencyError struct {
	Candidate Candidate
	Reason    string
}

func (e *ConsistencyError) Error() string {
	if e.Candidate == NoCandidate {
		return "ballot inconsistent: " + e.Reason
	}
	return fmt.Sprintf("ballot inconsistent: candidate %d %s", e.Candidate, e.Reason)
}

// Ballot is an ordered sequence of rank groups. Group 0 is the most
// preferred; candidates inside a group are tied.
//
// A Ballot is not safe for concurrent use.
type Ballot struct {
	n      int
	groups [][]Candidate
}

// New builds a ballot over n candidates from explicit groups and checks
// every invariant.
func New(n int, groups [][]Candidate) (*Ballot, error) {
	b := &Ballot{n: n, groups: make([][]Candidate, 0, len(groups))}
	for _, g := range groups {
		b.groups = append(b.groups, slices.Clone(g))
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Identity returns n singleton groups in index order.
func Identity(n int) *Ballot {
	b := &Ballot{n: n, groups: make([][]Candidate, n)}
	for i := range n {
		b.groups[i] = []Candidate{Candidate(i)}
	}
	return b
}

// Len returns the number of candidates.
func (b *Ballot) Len() int { return b.n }

// Ranks returns the number of rank groups.
func (b *Ballot) Ranks() int { return len(b.groups) }

// Group returns a copy of the members of group r, or nil if r is out of range.
func (b *Ballot) Group(r int) []Candidate {
	if r < 0 || r >= len(b.groups) {
		return nil
	}
	return slices.Clone(b.groups[r])
}

// Groups returns a deep copy of all groups.
func (b *Ballot) Groups() [][]Candidate {
	out := make([][]Candidate, len(b.groups))
	for i, g := range b.groups {
		out[i] = slices.Clone(g)
	}
	return out
}

// Clone returns an independent copy.
func (b *Ballot) Clone() *Ballot {
	return &Ballot{n: b.n, groups: b.Groups()}
}

// Equal reports whether both ballots hold the same candidates in the same
// groups. Order inside a group does not matter.
func (b *Ballot) Equal(other *Ballot) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.n != other.n || len(b.groups) != len(other.groups) {
		return false
	}
	for i := range b.groups {
		left := mapset.NewThreadUnsafeSet(b.groups[i]...)
		right := mapset.NewThreadUnsafeSet(other.groups[i]...)
		if !left.Equal(right) {
			return false
		}
	}
	return true
}

// RankOf returns the index of the group holding c.
func (b *Ballot) RankOf(c Candidate) (int, error) {
	for r, g := range b.groups {
		if slices.Contains(g, c) {
			return r, nil
		}
	}
	return 0, &ConsistencyError{Candidate: c, Reason: "is not in any rank group"}
}

// Contains reports whether c is a valid candidate index for this ballot.
func (b *Ballot) Contains(c Candidate) bool {
	return c >= 0 && int(c) < b.n
}

// MoveCandidateToRank removes c from its group and appends it to the group
// at targetRank. The target is resolved after the source group collapses, so
// a target equal to (or, after a collapse, one past) the group count creates
// a new trailing group and LeadingRank creates a new leading group.
//
// It returns false when nothing changed: c already at targetRank, unknown
// candidate, or a target outside [LeadingRank, Ranks()].
func (b *Ballot) MoveCandidateToRank(c Candidate, targetRank int) bool {
	if !b.Contains(c) || targetRank < LeadingRank || targetRank > len(b.groups) {
		return false
	}
	cur, err := b.RankOf(c)
	if err != nil || cur == targetRank {
		return false
	}
	before := b.Clone()

	b.remove(c, cur)

	switch {
	case targetRank == LeadingRank:
		b.groups = slices.Insert(b.groups, 0, []Candidate{c})
	case targetRank >= len(b.groups):
		b.groups = append(b.groups, []Candidate{c})
	default:
		b.groups[targetRank] = append(b.groups[targetRank], c)
	}

	return !b.Equal(before)
}

// SplitCandidateToNewRank breaks c out of its tie at currentRank into a new
// singleton group directly below it. Splitting a singleton is a no-op.
func (b *Ballot) SplitCandidateToNewRank(c Candidate, currentRank int) bool {
	if currentRank < 0 || currentRank >= len(b.groups) {
		return false
	}
	g := b.groups[currentRank]
	if len(g) < 2 || !slices.Contains(g, c) {
		return false
	}
	b.remove(c, currentRank)
	b.groups = slices.Insert(b.groups, currentRank+1, []Candidate{c})
	return true
}

// remove deletes c from group r and drops the group if it became empty.
func (b *Ballot) remove(c Candidate, r int) {
	g := b.groups[r]
	i := slices.Index(g, c)
	g = slices.Delete(g, i, i+1)
	if len(g) == 0 {
		b.groups = slices.Delete(b.groups, r, r+1)
		return
	}
	b.groups[r] = g
}

// Validate checks the partition invariant: every candidate 0..n-1 appears in
// exactly one group and no group is empty.
func (b *Ballot) Validate() error {
	seen := mapset.NewThreadUnsafeSet[Candidate]()
	for r, g := range b.groups {
		if len(g) == 0 {
			return &ConsistencyError{Candidate: NoCandidate, Reason: fmt.Sprintf("rank %d is empty", r)}
		}
		for _, c := range g {
			if !b.Contains(c) {
				return &ConsistencyError{Candidate: c, Reason: "is out of range"}
			}
			if !seen.Add(c) {
				return &ConsistencyError{Candidate: c, Reason: "appears more than once"}
			}
		}
	}
	if seen.Cardinality() != b.n {
		for i := range b.n {
			if !seen.Contains(Candidate(i)) {
				return &ConsistencyError{Candidate: Candidate(i), Reason: "is not in any rank group"}
			}
		}
	}
	return nil
}

// String renders the groups as [[0 1] [2]].
func (b *Ballot) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range b.groups {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, g)
	}
	sb.WriteByte(']')
	return sb.String()
}
