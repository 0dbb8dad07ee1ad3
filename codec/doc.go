// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec converts between ballot.Ballot and models.FlatSelection.

	flat := codec.Encode(b)             // [{c, rank}, ...], rank = group index
	b, err := codec.Decode(n, flat)     // ranks compacted to 0..k-1

Decode(n, Encode(b)) equals b for every valid ballot.

# Starting Ballots

A voter with no prior ballot starts from a shuffled order:

	b := codec.Initial(n, prior, rng)

Initial never fails. An empty or malformed prior ranking falls back to
RandomInitialBallot.
*/
package codec
