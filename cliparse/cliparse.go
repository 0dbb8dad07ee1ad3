package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-rank/models"
)

const (
	DefaultPort        = 3318
	DefaultIdleTimeout = 24 * time.Hour
	DefaultEnvFile     = ".env"
)

type Config struct {
	Port               int
	SessionKeySalt     string
	SessionIdleTimeout time.Duration
	LogLevel           slog.Level

	// Terminal editor
	Title          string
	BallotFile     string
	Candidates     []string
	InitialRanking models.FlatSelection
	Seed           *uint64
}

// SweepInterval is how often idle sessions are looked for.
func (c Config) SweepInterval() time.Duration {
	return max(c.SessionIdleTimeout/4, time.Second)
}

// LogLevel is a pflag.Value for slog levels.
type LogLevel struct {
	lvl *slog.Level
}

func (f LogLevel) String() string {
	if f.lvl == nil {
		return slog.LevelInfo.String()
	}
	return f.lvl.String()
}

func (f LogLevel) Set(v string) error {
	return f.lvl.UnmarshalText([]byte(v))
}

func (f LogLevel) Type() string { return "level" }

// common registers flags shared by every command.
func common(fs *pflag.FlagSet, cfg *Config, envFile *string) {
	fs.Var(LogLevel{&cfg.LogLevel}, "log-level", "Log level: debug, info, warn, error")
	fs.StringVar(envFile, "env-file", DefaultEnvFile, "Load environment variables from this file if it exists")
}

// loadEnv reads a .env file without overriding variables already set.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func logLevelFromEnv(fs *pflag.FlagSet, cfg *Config) error {
	if fs.Changed("log-level") {
		return nil
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL env variable: %w", err)
		}
	}
	return nil
}

// ParseFlags parses the serve command's flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")
	fs.DurationVar(&cfg.SessionIdleTimeout, "idle-timeout", 0, "Remove sessions idle for this long")
	common(fs, &cfg, &envFile)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := loadEnv(envFile); err != nil {
		return Config{}, err
	}
	if err := logLevelFromEnv(fs, &cfg); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.SessionIdleTimeout == 0 {
		if v := os.Getenv("SESSION_IDLE_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid SESSION_IDLE_TIMEOUT env variable: %w", err)
			}
			cfg.SessionIdleTimeout = d
		} else {
			cfg.SessionIdleTimeout = DefaultIdleTimeout
		}
	}
	if cfg.SessionIdleTimeout <= 0 {
		return Config{}, errors.New("idle timeout must be positive")
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	return cfg, nil
}

// ParseEditFlags parses the edit command's flags. Candidates come from -c,
// a ballot file, or the CANDIDATES env variable, in that order.
func ParseEditFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, candidates string
	var seed uint64

	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	fs.StringVarP(&cfg.BallotFile, "file", "f", "", "YAML ballot file")
	fs.StringVarP(&candidates, "candidates", "c", "", "Comma or newline separated candidates")
	fs.StringVarP(&cfg.Title, "title", "t", "", "Ballot title")
	fs.Uint64Var(&seed, "seed", 0, "Shuffle seed for a fresh ballot")
	common(fs, &cfg, &envFile)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := loadEnv(envFile); err != nil {
		return Config{}, err
	}
	if err := logLevelFromEnv(fs, &cfg); err != nil {
		return Config{}, err
	}

	if fs.Changed("seed") {
		cfg.Seed = &seed
	} else if v := os.Getenv("SHUFFLE_SEED"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid SHUFFLE_SEED env variable")
		}
		cfg.Seed = &s
	}

	if candidates != "" && cfg.BallotFile != "" {
		return Config{}, errors.New("use either -c or -f, not both")
	}
	if candidates == "" && cfg.BallotFile == "" {
		candidates = os.Getenv("CANDIDATES")
		if candidates == "" {
			cfg.BallotFile = os.Getenv("BALLOT_FILE")
		}
	}

	if cfg.BallotFile != "" {
		bf, err := LoadBallotFile(cfg.BallotFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Candidates = bf.Candidates
		cfg.InitialRanking = bf.InitialRanking
		if cfg.Title == "" {
			cfg.Title = bf.Title
		}
	} else {
		cfg.Candidates = ParseCandidates(candidates)
	}

	if len(cfg.Candidates) == 0 {
		return Config{}, errors.New("candidates required (use -c, -f, CANDIDATES or BALLOT_FILE env)")
	}
	if cfg.Title == "" {
		cfg.Title = "Rank the candidates"
	}

	return cfg, nil
}

// ParseCandidates splits a candidate list on newlines and commas, trimming
// whitespace and dropping empty entries.
func ParseCandidates(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
