package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/tui"
)

const editLogFile = "quickly-rank.log"

var errNotSubmitted = errors.New("ballot not submitted")

func runEdit(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := cliparse.ParseEditFlags(args)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("edit needs an interactive terminal")
	}

	// The editor owns the screen, so debug logs go to a file.
	if cfg.LogLevel <= slog.LevelDebug {
		f, err := os.OpenFile(editLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(newHandler(f, false, cfg.LogLevel)))
	} else {
		setupLogger(os.Stderr, max(cfg.LogLevel, slog.LevelWarn))
	}

	opts := []editor.Option{editor.WithLogger(slog.Default())}
	if cfg.Seed != nil {
		opts = append(opts, editor.WithRand(rand.New(rand.NewPCG(*cfg.Seed, *cfg.Seed))))
	}
	ed := editor.New(cfg.Candidates, cfg.InitialRanking, opts...)

	submitted, err := tui.Run(ctx, ed, cfg.Title)
	if err != nil {
		return err
	}
	if !submitted {
		return errNotSubmitted
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(models.SelectionsResponse{
		Selections:  ed.GetSelections(),
		Description: ed.Describe(),
	})
}
