// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rank/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "SESSION_KEY_SALT", "SESSION_IDLE_TIMEOUT", "LOG_LEVEL",
		"CANDIDATES", "BALLOT_FILE", "SHUFFLE_SEED"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_KEY_SALT", "test-salt")
	t.Setenv("SESSION_IDLE_TIMEOUT", "90m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.SessionKeySalt != "test-salt" {
		t.Errorf("expected salt from env, got %q", cfg.SessionKeySalt)
	}
	if cfg.SessionIdleTimeout != 90*time.Minute {
		t.Errorf("expected 90m idle timeout, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{"-p", "8080", "--session-salt", "s1", "--idle-timeout", "1h", "--log-level", "warn"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SessionIdleTimeout != time.Hour {
		t.Errorf("expected 1h, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("expected warn level, got %s", cfg.LogLevel)
	}
	if cfg.SweepInterval() != 15*time.Minute {
		t.Errorf("expected 15m sweep interval, got %s", cfg.SweepInterval())
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"--session-salt", "s"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.SessionIdleTimeout != DefaultIdleTimeout {
		t.Errorf("expected default idle timeout, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", nil, nil},
		{"bad port env", map[string]string{"PORT": "abc"}, []string{"--session-salt", "s"}},
		{"port out of range", nil, []string{"-p", "70000", "--session-salt", "s"}},
		{"bad idle env", map[string]string{"SESSION_IDLE_TIMEOUT": "soon"}, []string{"--session-salt", "s"}},
		{"negative idle", nil, []string{"--idle-timeout", "-1h", "--session-salt", "s"}},
		{"bad log level", nil, []string{"--log-level", "loud", "--session-salt", "s"}},
		{"unknown flag", nil, []string{"--database-url", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SESSION_KEY_SALT")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SESSION_KEY_SALT=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"--env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SessionKeySalt != "from-file" {
		t.Errorf("expected salt from env file, got %q", cfg.SessionKeySalt)
	}
}

func TestParseEditFlags_Candidates(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseEditFlags([]string{"-c", "Pizza, Sushi,,Tacos ", "--seed", "7"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Pizza", "Sushi", "Tacos"}; !reflect.DeepEqual(cfg.Candidates, want) {
		t.Errorf("expected %v, got %v", want, cfg.Candidates)
	}
	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Errorf("expected seed 7, got %v", cfg.Seed)
	}
	if cfg.Title == "" {
		t.Error("expected a default title")
	}
}

func TestParseEditFlags_EnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANDIDATES", "A\nB")
	t.Setenv("SHUFFLE_SEED", "42")

	cfg, err := ParseEditFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(cfg.Candidates, want) {
		t.Errorf("expected %v, got %v", want, cfg.Candidates)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Seed)
	}
}

func TestParseEditFlags_BallotFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ballot.yaml")
	content := `title: Lunch
candidates:
  - Pizza
  - " Sushi "
  - Tacos
initial_ranking:
  - {candidate: 1, rank: 0}
  - {candidate: 0, rank: 1}
  - {candidate: 2, rank: 1}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseEditFlags([]string{"-f", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Lunch" {
		t.Errorf("expected title Lunch, got %q", cfg.Title)
	}
	if want := []string{"Pizza", "Sushi", "Tacos"}; !reflect.DeepEqual(cfg.Candidates, want) {
		t.Errorf("expected %v, got %v", want, cfg.Candidates)
	}
	want := models.FlatSelection{{Candidate: 1, Rank: 0}, {Candidate: 0, Rank: 1}, {Candidate: 2, Rank: 1}}
	if !reflect.DeepEqual(cfg.InitialRanking, want) {
		t.Errorf("expected %v, got %v", want, cfg.InitialRanking)
	}
	if cfg.Seed != nil {
		t.Errorf("expected no seed, got %d", *cfg.Seed)
	}
}

func TestLoadBallotFile_BlankCandidates(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "blank dropped without ranking",
			content: "candidates: [Pizza, \"\", Sushi, Tacos]\n",
			want:    []string{"Pizza", "Sushi", "Tacos"},
		},
		{
			name: "blank with ranking",
			content: `candidates: [Pizza, "", Sushi, Tacos]
initial_ranking:
  - {candidate: 1, rank: 0}
  - {candidate: 0, rank: 1}
  - {candidate: 2, rank: 1}
  - {candidate: 3, rank: 1}
`,
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "ballot"+string(rune('0'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			bf, err := LoadBallotFile(path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got candidates %v", bf.Candidates)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(bf.Candidates, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, bf.Candidates)
			}
		})
	}
}

func TestParseEditFlags_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("candidates: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"no candidates", nil},
		{"only separators", []string{"-c", " , \n"}},
		{"both sources", []string{"-c", "A", "-f", "x.yaml"}},
		{"missing file", []string{"-f", filepath.Join(dir, "nope.yaml")}},
		{"broken file", []string{"-f", broken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := ParseEditFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"A", []string{"A"}},
		{"A\nB\n\n C \n", []string{"A", "B", "C"}},
		{"A,B , C", []string{"A", "B", "C"}},
		{"New York\nLos Angeles", []string{"New York", "Los Angeles"}},
	}

	for _, tt := range tests {
		if got := ParseCandidates(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseCandidates(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
