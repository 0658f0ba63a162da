package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/crucible/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is a fully validated command line.
type Invocation struct {
	Settings config.Settings
	Files    []string
}

// Parse processes command-line arguments. It returns a populated Invocation,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags given explicitly override values from the -config file.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("crucible", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
crucible - least heat-loss routes for run-constrained crucibles.

Usage:
  crucible [options] GRID_FILE...

Arguments:
  GRID_FILE
    A text file of equal-length rows of digits 0-9.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .yaml/.yml/.json settings file.")
	cFlag := flagSet.String("c", "", "Path to a settings file (shorthand).")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Deadline per grid file, e.g. 30s. 0 is disabled.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Maximum states settled per search. 0 is unlimited.")
	renderFlag := flagSet.Bool("render", false, "Draw each route over its grid.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No grid files provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	path := *configFlag
	if path == "" {
		path = *cFlag
	}

	settings := config.DefaultSettings()
	if path != "" {
		var err error
		if settings, err = config.LoadFile(path); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Settings file loaded.", "path", path)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			settings.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			settings.LogFormat = strings.ToLower(*logFormatFlag)
		case "timeout":
			settings.Timeout = *timeoutFlag
		case "max-steps":
			settings.MaxSteps = *maxStepsFlag
		case "render":
			settings.Render = *renderFlag
		}
	})

	if err := settings.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	inv := &Invocation{Settings: settings, Files: flagSet.Args()}
	slog.Debug("CLI parser finished successfully.", "files", len(inv.Files), "variants", len(settings.Variants))
	return inv, false, nil
}
