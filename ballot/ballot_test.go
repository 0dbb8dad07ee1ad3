package ballot

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	A Candidate = iota
	B
	C
	D
)

func mustBallot(t *testing.T, n int, groups ...[]Candidate) *Ballot {
	t.Helper()
	b, err := New(n, groups)
	require.NoError(t, err)
	return b
}

func requireGroups(t *testing.T, b *Ballot, want ...[]Candidate) {
	t.Helper()
	expected := mustBallot(t, b.Len(), want...)
	require.Truef(t, b.Equal(expected), "got %s want %s", litter.Sdump(b.Groups()), litter.Sdump(want))
	require.NoError(t, b.Validate())
}

func TestNewRejectsBrokenPartitions(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		groups [][]Candidate
	}{
		{"missing candidate", 3, [][]Candidate{{A}, {B}}},
		{"duplicate candidate", 2, [][]Candidate{{A}, {A, B}}},
		{"empty group", 2, [][]Candidate{{A}, {}, {B}}},
		{"out of range", 2, [][]Candidate{{A}, {B, C}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.groups)
			var ce *ConsistencyError
			require.True(t, errors.As(err, &ce), "expected ConsistencyError, got %v", err)
		})
	}
}

func TestIdentity(t *testing.T) {
	b := Identity(3)
	requireGroups(t, b, []Candidate{A}, []Candidate{B}, []Candidate{C})
	assert.Equal(t, 3, b.Ranks())
	assert.Equal(t, "[[0] [1] [2]]", b.String())
}

func TestRankOf(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{C}, []Candidate{A, B})

	r, err := b.RankOf(B)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	_, err = b.RankOf(D)
	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, D, ce.Candidate)
}

func TestMoveToLeadingRank(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{A}, []Candidate{B, C})

	require.True(t, b.MoveCandidateToRank(B, LeadingRank))
	requireGroups(t, b, []Candidate{B}, []Candidate{A}, []Candidate{C})
}

func TestMoveCollapsedSlotDoesNotSkipRank(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{A}, []Candidate{B}, []Candidate{C})

	require.True(t, b.MoveCandidateToRank(B, 2))
	requireGroups(t, b, []Candidate{A}, []Candidate{C}, []Candidate{B})

	// C now sits at rank 1 already.
	require.False(t, b.MoveCandidateToRank(C, 1))
	requireGroups(t, b, []Candidate{A}, []Candidate{C}, []Candidate{B})
}

func TestMoveIntoExistingGroup(t *testing.T) {
	b := mustBallot(t, 4, []Candidate{A}, []Candidate{B}, []Candidate{C, D})

	require.True(t, b.MoveCandidateToRank(D, 0))
	requireGroups(t, b, []Candidate{A, D}, []Candidate{B}, []Candidate{C})
	assert.Equal(t, []Candidate{A, D}, b.Group(0), "appended at the end of the group")
}

func TestMoveSoleMemberBetweenNeighbours(t *testing.T) {
	// Moving the only member of rank 1 up leaves no gap between A and C.
	b := mustBallot(t, 3, []Candidate{A}, []Candidate{B}, []Candidate{C})

	require.True(t, b.MoveCandidateToRank(B, 0))
	requireGroups(t, b, []Candidate{A, B}, []Candidate{C})
	assert.Equal(t, 2, b.Ranks())
}

func TestMoveToTrailingRank(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{A, B}, []Candidate{C})

	require.True(t, b.MoveCandidateToRank(A, 2))
	requireGroups(t, b, []Candidate{B}, []Candidate{C}, []Candidate{A})
}

func TestMoveNoOps(t *testing.T) {
	tests := []struct {
		name   string
		c      Candidate
		target int
	}{
		{"current rank", B, 1},
		{"below leading", A, -2},
		{"past trailing row", A, 4},
		{"unknown candidate", D + 1, 0},
		{"singleton to leading", A, LeadingRank},
		{"last singleton to trailing row", C, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Identity(3)
			before := b.Clone()
			assert.False(t, b.MoveCandidateToRank(tt.c, tt.target))
			assert.True(t, b.Equal(before), litter.Sdump(b.Groups()))
		})
	}
}

func TestSplit(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{A, B}, []Candidate{C})

	require.True(t, b.SplitCandidateToNewRank(A, 0))
	requireGroups(t, b, []Candidate{B}, []Candidate{A}, []Candidate{C})
}

func TestSplitKeepsOthersTied(t *testing.T) {
	b := mustBallot(t, 4, []Candidate{A, B, C}, []Candidate{D})

	require.True(t, b.SplitCandidateToNewRank(B, 0))
	requireGroups(t, b, []Candidate{A, C}, []Candidate{B}, []Candidate{D})
}

func TestSplitNoOps(t *testing.T) {
	b := mustBallot(t, 3, []Candidate{A, B}, []Candidate{C})
	before := b.Clone()

	assert.False(t, b.SplitCandidateToNewRank(C, 1), "singleton")
	assert.False(t, b.SplitCandidateToNewRank(C, 0), "wrong group")
	assert.False(t, b.SplitCandidateToNewRank(A, 5), "out of range")
	assert.True(t, b.Equal(before))
}

func TestEqualIgnoresOrderInsideGroup(t *testing.T) {
	left := mustBallot(t, 3, []Candidate{A, B}, []Candidate{C})
	right := mustBallot(t, 3, []Candidate{B, A}, []Candidate{C})
	other := mustBallot(t, 3, []Candidate{A}, []Candidate{B, C})

	assert.True(t, left.Equal(right))
	assert.False(t, left.Equal(other))
	assert.False(t, left.Equal(nil))
}

func TestCloneIsIndependent(t *testing.T) {
	b := Identity(3)
	c := b.Clone()
	require.True(t, c.MoveCandidateToRank(A, 1))
	requireGroups(t, b, []Candidate{A}, []Candidate{B}, []Candidate{C})
}

func TestRandomOperationsKeepPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 50; round++ {
		n := 1 + rng.IntN(7)
		b := Identity(n)
		for step := 0; step < 200; step++ {
			c := Candidate(rng.IntN(n))
			before := b.Clone()
			if rng.IntN(3) == 0 {
				r, err := b.RankOf(c)
				require.NoError(t, err)
				b.SplitCandidateToNewRank(c, r)
			} else {
				b.MoveCandidateToRank(c, rng.IntN(b.Ranks()+2)-1)
			}
			require.NoErrorf(t, b.Validate(), "before %s after %s", before, b)
			require.LessOrEqual(t, b.Ranks(), n)

			r, err := b.RankOf(c)
			require.NoError(t, err)
			copyBefore := b.Clone()
			require.False(t, b.MoveCandidateToRank(c, r))
			require.True(t, b.Equal(copyBefore))
		}
	}
}
