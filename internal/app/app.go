// Package app wires configuration, logging and themes to the run modes of
// the algodemo binary.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/algodemo/internal/cli"
	"github.com/agbru/algodemo/internal/config"
	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/logging"
	"github.com/agbru/algodemo/internal/server"
	"github.com/agbru/algodemo/internal/tui"
	"github.com/agbru/algodemo/internal/ui"
)

// Application represents the algodemo application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used by the run modes.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "algodemo"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "algodemo")
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	logging.SetGlobalLevel(a.Config.LogLevel)
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.REPL:
		return a.runREPL(ctx, out)
	case a.Config.TUI:
		return tui.Run(ctx, a.Factory, a.Config, Version)
	case a.Config.Serve:
		return a.runServer(ctx)
	case a.Config.Abbr:
		return a.runAbbreviation(out)
	case a.Config.LastDigits > 0:
		return a.runLastDigits(out)
	}
	return a.runCalculate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, "algodemo", a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	algo := a.Config.Algo
	if a.Config.ShouldCompare() {
		algo = config.DefaultAlgo
	}
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: algo,
		Timeout:     a.Config.Timeout,
		Details:     a.Config.Details,
	})
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

func (a *Application) runServer(ctx context.Context) int {
	algo := a.Config.Algo
	if a.Config.ShouldCompare() {
		algo = config.DefaultAlgo
	}
	srv := server.NewServer(a.Factory, server.Config{
		Port:        a.Config.Port,
		DefaultAlgo: algo,
		Timeout:     a.Config.Timeout,
		Security:    server.DefaultSecurityConfig(),
	}, a.Logger)

	if err := srv.Start(ctx); err != nil {
		a.Logger.Error("server stopped", err, logging.String("port", a.Config.Port))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
