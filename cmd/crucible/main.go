package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/internal/cli"
	"github.com/katalvlaran/crucible/observability"
	"github.com/katalvlaran/crucible/render"
	"github.com/katalvlaran/crucible/solver"
)

// main is the entrypoint for the crucible command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Answers go to outW; logs go to stderr.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := cli.NewLogger(inv.Settings, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	opts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithMetrics(observability.NewMetricsRecorder()),
		solver.WithSpans(observability.NewSpanManager()),
		solver.WithMaxSteps(inv.Settings.MaxSteps),
	}
	if inv.Settings.Render {
		opts = append(opts, solver.WithPaths())
	}
	s := solver.New(opts...)

	for _, file := range inv.Files {
		if err := solveFile(context.Background(), outW, s, inv.Settings, file); err != nil {
			return err
		}
	}
	return nil
}

// solveFile prints "Reading <file>" followed by one line per variant.
func solveFile(ctx context.Context, outW io.Writer, s *solver.Solver, settings config.Settings, file string) error {
	fmt.Fprintf(outW, "Reading %s\n", file)

	g, err := loadGrid(file)
	if err != nil {
		return err
	}
	slog.Debug("Grid loaded.", "file", file, "width", g.Width(), "height", g.Height())

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	answers, err := s.Solve(ctx, g, settings.Variants)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	for _, a := range answers {
		if !a.Solved() {
			fmt.Fprintf(outW, "%s: no path (%v)\n", a.Variant, a.Err)
			continue
		}
		fmt.Fprintf(outW, "%s: %d\n", a.Variant, a.Cost)
		if settings.Render && a.Result != nil {
			fmt.Fprint(outW, render.Overlay(g, a.Result.Path))
			fmt.Fprintln(outW, render.Summary(a.Result))
		}
	}
	return nil
}

func loadGrid(file string) (*grid.Grid, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return g, nil
}
