// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the quickly-rank command.

quickly-rank edits ranked ballots with ties: candidates are arranged into
ordered rank groups by clicking, dragging, touch, keyboard, or context
click, and the result is exported as a flat list of {candidate, rank}.

# Editing in the Terminal

	quickly-rank edit -c "Pizza, Sushi, Tacos"
	quickly-rank edit -f ballot.yaml

Press enter with nothing focused to submit. The ballot is printed as JSON:

	{
	  "selections": [{"candidate": 1, "rank": 0}, ...],
	  "description": "Sushi > Pizza = Tacos"
	}

# Serving Remote Projectors

	SESSION_KEY_SALT=... quickly-rank serve -p 3318

Browsers and other remote clients open editing sessions over HTTP and send
their input as events. Idle sessions are removed after --idle-timeout.

# Configuration

Required settings (serve):

  - SESSION_KEY_SALT (--session-salt): Secret for session key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - SESSION_IDLE_TIMEOUT (--idle-timeout): default 24h
  - LOG_LEVEL (--log-level): debug, info, warn, error
  - CANDIDATES, BALLOT_FILE, SHUFFLE_SEED: edit defaults

A .env file in the working directory is loaded first.

# Architecture

  - ballot: rank groups and the two mutations
  - codec: FlatSelection encoding and decoding
  - editor: input protocols over one ballot
  - projector: views, text layout, hit testing
  - tui: terminal projector
  - session: in-memory sessions for remote projectors
  - handlers, router, middleware: HTTP API
  - models: wire and view types
  - auth: session keys
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
