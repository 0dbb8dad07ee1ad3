package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/router"
	"github.com/danielhkuo/quickly-rank/session"
)

const shutdownTimeout = 5 * time.Second

func runServe(ctx context.Context, args []string) error {
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.LogLevel)

	store := session.NewStore()
	mux := router.NewRouter(store, cfg)

	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.RunSweeper(ctx, cfg.SweepInterval(), cfg.SessionIdleTimeout)
	})
	g.Go(func() error {
		// Wait for a signal or a failed listener
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if err != nil {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "sessions", store.Len())
	}
	return err
}
