package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "edit"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Expected %s command, got %v (%v)", name, cmd, err)
		}
		if !cmd.DisableFlagParsing {
			t.Errorf("%s should leave flag parsing to cliparse", name)
		}
	}
}

func TestIgnoreHelp(t *testing.T) {
	if err := ignoreHelp(pflag.ErrHelp); err != nil {
		t.Errorf("Expected help to be ignored, got %v", err)
	}
	boom := errors.New("boom")
	if err := ignoreHelp(boom); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestServeRequiresSalt(t *testing.T) {
	t.Setenv("SESSION_KEY_SALT", "")
	err := runServe(context.Background(), []string{"--env-file", ""})
	if err == nil || !strings.Contains(err.Error(), "SESSION_KEY_SALT") {
		t.Errorf("Expected missing salt error, got %v", err)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newHandler(&buf, false, slog.LevelInfo)).Info("hello", "n", 1)
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected JSON log line, got %q", buf.String())
	}
	if rec["msg"] != "hello" {
		t.Errorf("Expected msg hello, got %v", rec["msg"])
	}

	buf.Reset()
	logger := slog.New(newHandler(&buf, true, slog.LevelWarn))
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("Unexpected text log output %q", buf.String())
	}
}
