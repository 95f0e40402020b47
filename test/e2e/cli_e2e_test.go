package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary end to end: output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	tmpDir := t.TempDir()
	binName := "algodemo"
	if runtime.GOOS == "windows" {
		binName = "algodemo.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/algodemo")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build algodemo: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:    "Basic Calculation",
			args:    []string{"-n", "10", "-c"},
			wantOut: "F(10) = 55",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "All Algorithms Comparison",
			args:    []string{"-n", "100", "--algo", "all", "-c"},
			wantOut: "354,224,848,179,261,915,075",
		},
		{
			name:    "Quiet Mode",
			args:    []string{"-n", "10", "--quiet"},
			wantOut: "55",
		},
		{
			name:     "Negative Index",
			args:     []string{"-n", "-5", "-q"},
			wantOut:  "invalid argument",
			wantCode: 5,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"-n", "50000000", "-algo", "iterative", "--timeout", "1ms"},
			wantOut:  "timeout",
			wantCode: 2,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"-algo", "quantum"},
			wantOut:  "unknown algorithm",
			wantCode: 4,
		},
		{
			name:     "Bad Environment Config File",
			args:     []string{"-n", "5"},
			env:      []string{"ALGODEMO_CONFIG=" + filepath.Join(tmpDir, "missing.toml")},
			wantOut:  "config",
			wantCode: 4,
		},
		{
			name:    "Zero",
			args:    []string{"-n", "0", "-c"},
			wantOut: "F(0) = 0",
		},
		{
			name:    "Last Digits",
			args:    []string{"-n", "1000000", "-last-digits", "8", "-q"},
			wantOut: "",
		},
		{
			name:    "Abbreviation Possible",
			args:    []string{"-abbr", "-a", "daBcd", "-b", "ABC", "-q"},
			wantOut: "true",
		},
		{
			name:    "Abbreviation Impossible Is Not An Error",
			args:    []string{"-abbr", "-a", "dBcd", "-b", "ABC", "-q"},
			wantOut: "false",
		},
		{
			name:    "Environment Override",
			args:    []string{"-q"},
			env:     []string{"ALGODEMO_N=20"},
			wantOut: "6765",
		},
		{
			name:    "Completion",
			args:    []string{"-completion", "bash"},
			wantOut: "complete -F _algodemo_completions",
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "algodemo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
