package config

import (
	"flag"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/algodemo/internal/errors"
)

// FileConfig mirrors the subset of AppConfig that may be set from a TOML
// file. Nil fields were absent from the file.
type FileConfig struct {
	N          *int64  `toml:"n"`
	Algo       *string `toml:"algo"`
	LastDigits *int    `toml:"last_digits"`
	Timeout    *string `toml:"timeout"`
	Verbose    *bool   `toml:"verbose"`
	Details    *bool   `toml:"details"`
	Quiet      *bool   `toml:"quiet"`
	ShowValue  *bool   `toml:"calculate"`
	Output     *string `toml:"output"`
	NoColor    *bool   `toml:"no_color"`
	LogLevel   *string `toml:"log_level"`
	Port       *string `toml:"port"`

	timeout time.Duration
}

// LoadFile decodes a TOML configuration file. Unknown keys and malformed
// durations are reported as configuration errors.
func LoadFile(path string) (*FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, apperrors.NewConfigError("config file %s: %v", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, apperrors.NewConfigError("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return nil, apperrors.NewConfigError("config file %s: invalid timeout %q", path, *fc.Timeout)
		}
		fc.timeout = d
	}
	return &fc, nil
}

// applyTo copies the file values into cfg for every flag that was not set
// explicitly on the command line.
func (fc *FileConfig) applyTo(cfg *AppConfig, fs *flag.FlagSet) {
	set := func(names ...string) bool { return isFlagSetAny(fs, names...) }

	if fc.N != nil && !set("n") {
		cfg.N = *fc.N
	}
	if fc.Algo != nil && !set("algo") {
		cfg.Algo = *fc.Algo
	}
	if fc.LastDigits != nil && !set("last-digits") {
		cfg.LastDigits = *fc.LastDigits
	}
	if fc.Timeout != nil && !set("timeout") {
		cfg.Timeout = fc.timeout
	}
	if fc.Verbose != nil && !set("v", "verbose") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Details != nil && !set("d", "details") {
		cfg.Details = *fc.Details
	}
	if fc.Quiet != nil && !set("q", "quiet") {
		cfg.Quiet = *fc.Quiet
	}
	if fc.ShowValue != nil && !set("c", "calculate") {
		cfg.ShowValue = *fc.ShowValue
	}
	if fc.Output != nil && !set("o", "output") {
		cfg.OutputFile = *fc.Output
	}
	if fc.NoColor != nil && !set("no-color") {
		cfg.NoColor = *fc.NoColor
	}
	if fc.LogLevel != nil && !set("log-level") {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Port != nil && !set("port") {
		cfg.Port = *fc.Port
	}
}
