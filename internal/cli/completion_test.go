package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	algos := []string{"fast", "iterative", "naive"}
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _algodemo_completions algodemo", `algorithms="fast iterative naive all"`, "-abbr", "-output|-o)"}},
		{"zsh", []string{"#compdef algodemo", "'-algo[Fibonacci strategy]:algorithm:(fast iterative naive all)'", "'(-v -verbose)'"}},
		{"fish", []string{"complete -c algodemo -o last-digits", "-xa 'bash zsh fish'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, "algodemo", algos); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s script missing %q", tt.shell, s)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnknownShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, "tcsh", "algodemo", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell: tcsh") {
		t.Errorf("err = %v", err)
	}
}

func TestGenerateCompletion_DoesNotMutateAlgorithms(t *testing.T) {
	t.Parallel()

	algos := make([]string, 2, 8)
	copy(algos, []string{"fast", "naive"})
	_ = GenerateCompletion(&bytes.Buffer{}, "bash", "algodemo", algos)
	if got := algos[:cap(algos)][2]; got != "" {
		t.Errorf("backing array modified: %q", got)
	}
}
