package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
type FlagCompletion struct {
	Name      string   // flag name without the leading dash
	Alias     string   // optional short alias
	Help      string   // description text
	Values    []string // suggested values
	ValueName string   // label of the value; empty for boolean flags
	IsFile    bool     // value is a file path
	IsAlgo    bool     // values come from the algorithm list
}

// flagRegistry lists every flag offered by completion scripts.
var flagRegistry = []FlagCompletion{
	{Name: "help", Alias: "h", Help: "Show help message"},
	{Name: "version", Alias: "V", Help: "Show version information"},
	{Name: "n", Help: "Fibonacci index to calculate", ValueName: "number"},
	{Name: "algo", Help: "Fibonacci strategy", IsAlgo: true, ValueName: "algorithm"},
	{Name: "last-digits", Help: "Print only the last K digits", ValueName: "count"},
	{Name: "abbr", Help: "Run the abbreviation checker"},
	{Name: "a", Help: "Abbreviation source string", ValueName: "string"},
	{Name: "b", Help: "Abbreviation target string", ValueName: "string"},
	{Name: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Name: "verbose", Alias: "v", Help: "Full values and DP table"},
	{Name: "details", Alias: "d", Help: "Timings, sizes and derivation plan"},
	{Name: "quiet", Alias: "q", Help: "Quiet mode for scripts"},
	{Name: "calculate", Alias: "c", Help: "Print the calculated value"},
	{Name: "output", Alias: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Name: "repl", Help: "Interactive command loop"},
	{Name: "tui", Help: "Interactive terminal playground"},
	{Name: "serve", Help: "Serve over HTTP"},
	{Name: "port", Help: "HTTP port", Values: []string{"8080", "9090"}, ValueName: "port"},
	{Name: "no-color", Help: "Disable colors"},
	{Name: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Name: "config", Help: "TOML configuration file", IsFile: true, ValueName: "file"},
	{Name: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// SupportedShells lists the shells GenerateCompletion accepts.
var SupportedShells = []string{"bash", "zsh", "fish"}

// GenerateCompletion writes a completion script for shell.
func GenerateCompletion(out io.Writer, shell, program string, algorithms []string) error {
	algos := strings.Join(append(append([]string{}, algorithms...), "all"), " ")

	var script string
	switch shell {
	case "bash":
		script = bashCompletion(program, algos)
	case "zsh":
		script = zshCompletion(program, algos)
	case "fish":
		script = fishCompletion(program, algos)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(SupportedShells, ", "))
	}

	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(program, algos string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		patterns := []string{"-" + f.Name}
		if f.Alias != "" {
			patterns = append(patterns, "-"+f.Alias)
		}
		opts = append(opts, patterns...)

		var body string
		switch {
		case f.IsAlgo:
			body = `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		case f.ValueName != "":
			body = `COMPREPLY=()`
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(patterns, "|"), body)
	}

	fn := "_" + strings.ReplaceAll(program, "-", "_") + "_completions"
	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

%[2]s() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[3]s"
    algorithms="%[4]s"

    case "${prev}" in
%[5]s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F %[2]s %[1]s
`, program, fn, strings.Join(opts, " "), algos, cases.String())
}

func zshCompletion(program, algos string) string {
	var args []string
	for _, f := range flagRegistry {
		suffix := ""
		switch {
		case f.IsFile:
			suffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case f.IsAlgo:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, algos)
		case len(f.Values) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			suffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		if f.Alias != "" {
			args = append(args, fmt.Sprintf("        '(-%s -%s)'{-%s,-%s}'[%s]%s'", f.Alias, f.Name, f.Alias, f.Name, f.Help, suffix))
		} else {
			args = append(args, fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, suffix))
		}
	}

	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Place this file in a directory of your $fpath

_%[1]s() {
    _arguments -s \
%[2]s
}

_%[1]s "$@"
`, program, strings.Join(args, " \\\n"))
}

func fishCompletion(program, algos string) string {
	lines := []string{
		"# Fish completion script for " + program,
		fmt.Sprintf("# Add this to ~/.config/fish/completions/%s.fish", program),
		"",
		"complete -c " + program + " -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c " + program, "-o " + f.Name}
		if f.Alias != "" {
			parts = append(parts, "-o "+f.Alias)
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case f.IsAlgo:
			parts = append(parts, fmt.Sprintf("-xa '%s'", algos))
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
