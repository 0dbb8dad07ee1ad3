// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/danielhkuo/quickly-rank/ballot"
	"github.com/danielhkuo/quickly-rank/models"
)

var ErrMalformedSelection = errors.New("malformed selection")

// Decode rebuilds a ballot over n candidates from a flat selection. Ranks are
// compacted to 0..k-1 in ascending order, so sparse or unsorted input is fine.
// An empty selection yields the identity ballot.
func Decode(n int, flat models.FlatSelection) (*ballot.Ballot, error) {
	if len(flat) == 0 {
		return ballot.Identity(n), nil
	}
	if len(flat) != n {
		return nil, fmt.Errorf("%w: %d items for %d candidates", ErrMalformedSelection, len(flat), n)
	}

	seen := mapset.NewThreadUnsafeSet[int]()
	for _, item := range flat {
		if item.Candidate < 0 || item.Candidate >= n {
			return nil, fmt.Errorf("%w: candidate %d out of range", ErrMalformedSelection, item.Candidate)
		}
		if item.Rank < 0 {
			return nil, fmt.Errorf("%w: negative rank for candidate %d", ErrMalformedSelection, item.Candidate)
		}
		if !seen.Add(item.Candidate) {
			return nil, fmt.Errorf("%w: duplicate candidate %d", ErrMalformedSelection, item.Candidate)
		}
	}

	items := slices.Clone(flat)
	slices.SortStableFunc(items, func(a, b models.VoteItem) int {
		return cmp.Compare(a.Rank, b.Rank)
	})

	var groups [][]ballot.Candidate
	for i, item := range items {
		if i == 0 || item.Rank != items[i-1].Rank {
			groups = append(groups, nil)
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], ballot.Candidate(item.Candidate))
	}

	b, err := ballot.New(n, groups)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSelection, err)
	}
	return b, nil
}

// Encode flattens a ballot, emitting members of group r with rank r.
func Encode(b *ballot.Ballot) models.FlatSelection {
	flat := make(models.FlatSelection, 0, b.Len())
	for r, g := range b.Groups() {
		for _, c := range g {
			flat = append(flat, models.VoteItem{Candidate: int(c), Rank: r})
		}
	}
	return flat
}

// RandomInitialBallot returns n singleton groups in uniformly shuffled order.
// Voters who have not voted yet start here so no candidate benefits from
// being listed first. A nil rng uses the global source.
func RandomInitialBallot(n int, rng *rand.Rand) *ballot.Ballot {
	var order []int
	if rng != nil {
		order = rng.Perm(n)
	} else {
		order = rand.Perm(n)
	}

	groups := make([][]ballot.Candidate, n)
	for i, c := range order {
		groups[i] = []ballot.Candidate{ballot.Candidate(c)}
	}
	b, err := ballot.New(n, groups)
	if err != nil {
		// A permutation is always a valid partition.
		panic(err)
	}
	return b
}

// Initial picks the starting ballot for an editing session: the decoded
// prior ranking when there is one, otherwise a shuffle. Malformed prior
// rankings are logged and replaced by a shuffle.
func Initial(n int, flat models.FlatSelection, rng *rand.Rand) *ballot.Ballot {
	if len(flat) == 0 {
		return RandomInitialBallot(n, rng)
	}
	b, err := Decode(n, flat)
	if err != nil {
		slog.Warn("discarding prior ranking", "error", err, "candidates", n)
		return RandomInitialBallot(n, rng)
	}
	return b
}

// Describe renders a selection as "A > B = C": ">" between ranks, "=" inside
// a tie. Unknown candidate indices render as #i.
func Describe(names []string, flat models.FlatSelection) string {
	items := slices.Clone(flat)
	slices.SortStableFunc(items, func(a, b models.VoteItem) int {
		return cmp.Compare(a.Rank, b.Rank)
	})

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			if item.Rank != items[i-1].Rank {
				sb.WriteString(" > ")
			} else {
				sb.WriteString(" = ")
			}
		}
		if item.Candidate >= 0 && item.Candidate < len(names) {
			sb.WriteString(names[item.Candidate])
		} else {
			fmt.Fprintf(&sb, "#%d", item.Candidate)
		}
	}
	return sb.String()
}
