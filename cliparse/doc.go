// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Each command has its own parser returning a Config:

	cfg, err := cliparse.ParseFlags(args)     // serve
	cfg, err := cliparse.ParseEditFlags(args) // edit

Both first load a .env file (--env-file, default ".env") if one exists.
Variables already set in the environment win over the file.

# Serve Flags

	-p, --port        Server port (default: 3318)
	--session-salt    Session key salt (required)
	--idle-timeout    Remove sessions idle this long (default: 24h)
	--log-level       debug, info, warn, error

# Edit Flags

	-f, --file        YAML ballot file
	-c, --candidates  Comma or newline separated candidates
	-t, --title       Ballot title
	--seed            Shuffle seed for a fresh ballot
	--log-level       debug, info, warn, error

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	SESSION_KEY_SALT     → --session-salt
	SESSION_IDLE_TIMEOUT → --idle-timeout
	LOG_LEVEL            → --log-level
	CANDIDATES           → -c
	BALLOT_FILE          → -f
	SHUFFLE_SEED         → --seed

CLI flags take precedence over environment variables.

# Ballot Files

	title: Lunch
	candidates: [Pizza, Sushi, Tacos]
	initial_ranking:
	  - {candidate: 1, rank: 0}

initial_ranking is a previous submission to restore. Without it the editor
starts from a shuffled ballot.
*/
package cliparse
