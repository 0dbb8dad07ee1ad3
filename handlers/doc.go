// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickly-rank API.

The API lets a remote projector, such as a browser page, drive an editor
held on the server. The client renders the views it receives and reports
user input back as events. Submitting the final ballot is up to the client.

# Sessions

SessionHandler is created with the session store and Config:

	sessionHandler := handlers.NewSessionHandler(store, cfg)

	POST   /sessions                 → CreateSession (returns session_key)
	GET    /sessions/{id}            → GetSession (?format=text for plain text)
	POST   /sessions/{id}/events     → PostEvent
	GET    /sessions/{id}/selections → GetSelections
	DELETE /sessions/{id}            → DeleteSession

Everything but CreateSession requires the X-Session-Key header.

# Events

Each event names one input protocol step and carries the fields it needs:

	{"type": "click_candidate", "candidate": 2}
	{"type": "click_row", "rank": 0}
	{"type": "touch_move", "x": 10, "y": 42, "target_rank": 1}
	{"type": "key", "key": "ArrowUp"}
	{"type": "rendered"}

The client hit tests touch moves itself and sends the row under the finger
as target_rank, or omits it when the finger is not over a row. After drawing
a view the client sends "rendered" so keyboard moves can restore focus.
*/
package handlers
