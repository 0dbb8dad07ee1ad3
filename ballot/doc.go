// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot holds the rank-group model of a ranked ballot with ties.

A Ballot is an ordered list of rank groups. Position is rank (0 is best) and
candidates in the same group are tied:

	[[2] [0 3] [1]]   // 2 > 0 = 3 > 1

# Invariants

After construction and after every mutation:

  - every candidate 0..n-1 is in exactly one group
  - no group is empty
  - ranks are contiguous 0..Ranks()-1

Validate checks all three and returns a *ConsistencyError on violation.

# Mutation

Only two operations change a ballot:

	b.MoveCandidateToRank(c, target) // LeadingRank and Ranks() create new groups
	b.SplitCandidateToNewRank(c, r)  // break c out of its tie, directly below r

Both return false when the call is a no-op.
*/
package ballot
