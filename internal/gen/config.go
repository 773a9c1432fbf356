package gen

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds slotseqgen configuration.
type Config struct {
	Inputs    []string
	OutDir    string
	Jobs      int
	LogLevel  slog.Level
	Qualifier string
	DryRun    bool
}

type envConfig struct {
	OutDir   string `env:"SLOTSEQGEN_OUT_DIR"`
	Jobs     int    `env:"SLOTSEQGEN_JOBS" envDefault:"4"`
	LogLevel string `env:"SLOTSEQGEN_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig reads environment defaults, then flags, into a Config.
// Positional arguments are the input documents.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		OutDir: envCfg.OutDir,
		Jobs:   envCfg.Jobs,
	}
	level := envCfg.LogLevel

	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory (default: next to each input, or SLOTSEQGEN_OUT_DIR)")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "max documents generated concurrently")
	fs.StringVar(&level, "log-level", level, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.Qualifier, "qualifier", "", "package qualifier for slotseq identifiers (default: slotseq)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "print generated source instead of writing files")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}
	cfg.Inputs = fs.Args()
	if len(cfg.Inputs) == 0 {
		return Config{}, errors.New("no input documents")
	}
	if cfg.Jobs <= 0 {
		return Config{}, fmt.Errorf("-jobs must be > 0, got %d", cfg.Jobs)
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
