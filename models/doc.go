// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire, request, response, and view types.

# Wire Types

The only serialized ballot shape:

  - VoteItem: {"candidate": int, "rank": int}
  - FlatSelection: []VoteItem, one entry per candidate

Ranks in a FlatSelection received from elsewhere may be sparse or unsorted.

# Request Types

  - CreateSessionRequest: candidates, initial_ranking
  - EventRequest: type plus the fields that event type reads

# Response Types

  - CreateSessionResponse: session_id, session_key, view
  - EventResponse: changed, view
  - SelectionsResponse: selections, description
  - ErrorResponse: error, message

# View Types

What a projector renders:

  - BallotView: rows, focused candidate, drag preview
  - RowView: one rank row (the trailing row is always empty)
  - CandidateView: index, name, focus and drag flags

# Event Types

	EventClickCandidate = "click_candidate"
	EventClickRow       = "click_row"
	EventDragStart      = "drag_start"
	EventTouchMove      = "touch_move"
	EventKey            = "key"
	EventContextClick   = "context_click"
	EventRendered       = "rendered"
	...
*/
package models
