// Package config defines the application's configuration, parses it from the
// command line, and layers environment variables and an optional TOML file
// underneath the explicit flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
)

const (
	// EnvPrefix is prepended to every environment variable the application reads.
	EnvPrefix = "ALGODEMO_"
	// DefaultAlgo is the Fibonacci strategy used when -algo is not given.
	DefaultAlgo = "fast"
	// AllAlgos selects every registered strategy for a comparison run.
	AllAlgos = "all"
	// DefaultTimeout bounds a single CLI run.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the HTTP port used by -serve.
	DefaultPort = "8080"
	// DefaultN is the Fibonacci index computed when -n is omitted.
	DefaultN int64 = 100
)

// AppConfig aggregates every parameter of a run.
type AppConfig struct {
	// N is the Fibonacci index. Negative values are passed through so the
	// calculators can reject them with an invalid-argument error.
	N          int64
	Algo       string
	LastDigits int
	Timeout    time.Duration

	// Abbr switches to the abbreviation checker, deciding whether A can
	// become B.
	Abbr bool
	A    string
	B    string

	Verbose    bool
	Details    bool
	Quiet      bool
	ShowValue  bool
	OutputFile string
	NoColor    bool
	LogLevel   string

	REPL  bool
	TUI   bool
	Serve bool
	Port  string

	ConfigFile string
	// Completion names a shell whose completion script is printed instead
	// of running anything else.
	Completion string
}

// ShouldCompare reports whether every strategy runs for cross-checking.
func (c AppConfig) ShouldCompare() bool {
	return c.Algo == AllAlgos
}

// ParseConfig parses args into an AppConfig. Values resolve with the priority
// CLI flags > environment > config file > defaults. availableAlgos lists the
// strategy names -algo may take besides "all".
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.Int64Var(&cfg.N, "n", DefaultN, "Index of the Fibonacci number to compute.")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo,
		fmt.Sprintf("Fibonacci strategy (%s, or %q to compare them).", strings.Join(availableAlgos, ", "), AllAlgos))
	fs.IntVar(&cfg.LastDigits, "last-digits", 0, "Print only the last K decimal digits of F(n) (0 disables).")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of a run (e.g. 30s, 5m).")

	fs.BoolVar(&cfg.Abbr, "abbr", false, "Run the abbreviation checker on -a and -b instead of Fibonacci.")
	fs.StringVar(&cfg.A, "a", "", "Source string for the abbreviation checker.")
	fs.StringVar(&cfg.B, "b", "", "Target string for the abbreviation checker.")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output (full value, DP table).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&cfg.Details, "d", false, "Show details (timings, sizes, derivation plan).")
	fs.BoolVar(&cfg.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode: print only the result.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Alias for -q.")
	fs.BoolVar(&cfg.ShowValue, "c", false, "Print the calculated value.")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "Alias for -c.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the result to this file.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Alias for -o.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")

	fs.BoolVar(&cfg.REPL, "repl", false, "Start the interactive command loop.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Start the interactive terminal playground.")
	fs.BoolVar(&cfg.Serve, "serve", false, "Serve both algorithms over HTTP.")
	fs.StringVar(&cfg.Port, "port", DefaultPort, "HTTP port for -serve.")

	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a TOML configuration file.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv(EnvPrefix + "CONFIG")
	}
	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintln(errWriter, "Error:", err)
			return AppConfig{}, err
		}
		fc.applyTo(&cfg, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic consistency of the configuration. Every
// failure is an apperrors.ConfigError.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Algo != AllAlgos && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s, %s)",
			c.Algo, strings.Join(availableAlgos, ", "), AllAlgos)
	}
	if c.LastDigits < 0 || c.LastDigits > fibonacci.MaxLastDigits {
		return apperrors.NewConfigError("-last-digits must be between 0 and %d, got %d",
			fibonacci.MaxLastDigits, c.LastDigits)
	}
	if c.LastDigits > 0 && c.ShouldCompare() {
		return apperrors.NewConfigError("-last-digits cannot be combined with -algo %s", AllAlgos)
	}
	if c.Abbr && c.LastDigits > 0 {
		return apperrors.NewConfigError("-abbr cannot be combined with -last-digits")
	}

	modes := 0
	for _, on := range []bool{c.REPL, c.TUI, c.Serve} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("-repl, -tui and -serve are mutually exclusive")
	}

	if c.Serve {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return apperrors.NewConfigError("invalid port %q", c.Port)
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}
