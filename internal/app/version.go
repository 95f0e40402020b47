package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args ask for the version.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "-version" || arg == "--version" || arg == "-V"
	})
}

// PrintVersion writes the build metadata.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "algodemo %s\n", Version)
	fmt.Fprintf(out, "  commit: %s\n", Commit)
	fmt.Fprintf(out, "  built:  %s\n", BuildDate)
	fmt.Fprintf(out, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
