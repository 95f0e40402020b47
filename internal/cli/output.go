// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write to the filesystem.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/algodemo/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	Quiet      bool
	Verbose    bool
	Details    bool
	ShowValue  bool
}

// WriteResultToFile writes F(n) with a metadata header to cfg.OutputFile,
// creating parent directories as needed. It is a no-op without a path.
func WriteResultToFile(result *big.Int, n int64, duration time.Duration, algo string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	value := result.String()
	fmt.Fprintf(file, "# Fibonacci Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(value))
	fmt.Fprintf(file, "\nF(%d) =\n%s\n", n, value)

	return file.Close()
}

// FormatQuietResult formats a result for scripting: the bare decimal value.
func FormatQuietResult(result *big.Int) string {
	return result.String()
}

// DisplayQuietResult prints the bare decimal value.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResultWithConfig prints a result in the mode selected by cfg and
// saves it when an output file is configured.
func DisplayResultWithConfig(out io.Writer, result *big.Int, n int64, duration time.Duration, algo string, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(result, n, duration, cfg.Verbose, cfg.Details, cfg.ShowValue, out)
	}

	if cfg.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(result, n, duration, algo, cfg); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
	}
	return nil
}
