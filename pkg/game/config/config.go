// Package config resolves runtime settings from defaults, an optional .env
// file, MAZE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"mazerunner/pkg/game/generator"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Rows        int    // Grid height including the border
	Cols        int    // Grid width including the border
	Seed        uint64 // Random seed; only meaningful when SeedSet
	SeedSet     bool   // False means a time-based seed is chosen at startup
	Renderer    string // "tui" or "ebiten"
	MaxAttempts int    // Generation attempts before giving up; 0 means no limit
	LogFile     string // Log destination; empty discards logs
	LogLevel    string // logrus level name
	Lang        string // Locale for player-facing text
	LocaleDir   string // Directory holding <lang>/LC_MESSAGES/default.po; empty uses the built-in catalogs
	Dump        bool   // Print the generated maze and its solution instead of playing
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Rows:        generator.DefaultRows,
		Cols:        generator.DefaultCols,
		Renderer:    RendererTUI,
		MaxAttempts: 0,
		LogLevel:    "info",
		Lang:        "en_GB",
		LocaleDir:   "",
	}
}

// Load builds the configuration for a process invocation. A missing .env
// file is not an error.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := FromEnv(Default(), os.LookupEnv)
	if err != nil {
		return Config{}, err
	}

	cfg, err = ParseFlags(cfg, args)
	if err != nil {
		return Config{}, err
	}

	if !cfg.SeedSet {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

// FromEnv overrides cfg with any MAZE_* variables found through lookup
func FromEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	var err error

	if v, ok := lookup("MAZE_ROWS"); ok {
		if cfg.Rows, err = parseInt("MAZE_ROWS", v); err != nil {
			return cfg, err
		}
	}
	if v, ok := lookup("MAZE_COLS"); ok {
		if cfg.Cols, err = parseInt("MAZE_COLS", v); err != nil {
			return cfg, err
		}
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return cfg, fmt.Errorf("%w: MAZE_SEED must be an unsigned integer: %v", ErrInvalidConfig, perr)
		}
		cfg.Seed, cfg.SeedSet = seed, true
	}
	if v, ok := lookup("MAZE_MAX_ATTEMPTS"); ok {
		if cfg.MaxAttempts, err = parseInt("MAZE_MAX_ATTEMPTS", v); err != nil {
			return cfg, err
		}
	}
	if v, ok := lookup("MAZE_RENDERER"); ok {
		cfg.Renderer = v
	}
	if v, ok := lookup("MAZE_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("MAZE_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MAZE_LANG"); ok {
		cfg.Lang = v
	}
	if v, ok := lookup("MAZE_LOCALE_DIR"); ok {
		cfg.LocaleDir = v
	}
	if v, ok := lookup("MAZE_DUMP"); ok {
		dump, perr := strconv.ParseBool(v)
		if perr != nil {
			return cfg, fmt.Errorf("%w: MAZE_DUMP must be a boolean: %v", ErrInvalidConfig, perr)
		}
		cfg.Dump = dump
	}

	return cfg, nil
}

// ParseFlags overrides cfg with command-line flags
func ParseFlags(cfg Config, args []string) (Config, error) {
	flags := flag.NewFlagSet("mazerunner", flag.ContinueOnError)

	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "maze height including the outer wall")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "maze width including the outer wall")
	seed := flags.Uint64("seed", cfg.Seed, "random seed (default: time based)")
	flags.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer backend: tui or ebiten")
	flags.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "give up after this many unsolvable mazes (0 = never)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for game text")
	flags.StringVar(&cfg.LocaleDir, "locale-dir", cfg.LocaleDir, "directory holding translation catalogs")
	flags.BoolVar(&cfg.Dump, "dump", cfg.Dump, "print the maze and its solution, then exit")

	if err := flags.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed, cfg.SeedSet = *seed, true
		}
	})

	return cfg, nil
}

// Validate checks settings that are not validated by the component using them
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts must not be negative", ErrInvalidConfig)
	}
	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}
