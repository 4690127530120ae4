package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelterm/internal/compat"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/logging"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/stream"
	"github.com/san-kum/mandelterm/internal/view"
	"github.com/san-kum/mandelterm/internal/viz"
)

var gray bool

// main checks the runtime, then runs the viewer until the user exits.
// It exits with status 1 on an unsupported runtime or a startup error.
func main() {
	if err := compat.CheckRuntime(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:          "mandelterm",
		Short:        "explore the mandelbrot set in the terminal",
		Long:         "Arrow keys pan, Z/X zoom in and out, Ctrl+C exits.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runViewer,
	}
	rootCmd.Flags().BoolVar(&gray, "gray", false, "draw bare glyphs without colour")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}
	ramp, err := cfg.BuildRamp(gray)
	if err != nil {
		return fmt.Errorf("failed to build palette: %w", err)
	}

	session := logging.InitForSession(cfg.Level())
	logger := session.Logger

	renderer := render.New(ramp, render.Options{
		MaxIterations: cfg.MaxIterations,
		CharAspect:    cfg.CharAspect,
		Fallback:      render.Size{Width: cfg.Fallback.Columns, Height: cfg.Fallback.Rows},
		SlowFrame:     cfg.SlowFrame(),
	}, logger)
	ctrl := view.NewController(cfg.InitialView(), cfg.GetControls())
	defer finishSession(session, ctrl, os.Stderr)

	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		logger.Debug("starting interactive session", slog.Bool("gray", gray))
		return viz.Run(viz.NewModel(ctrl, renderer, gray, logger))
	}

	logger.Debug("starting stream session", slog.Bool("gray", gray))
	resize, stop := stream.WatchResize()
	defer stop()
	loop := stream.New(os.Stdin, os.Stdout, ctrl, renderer, stream.TerminalSize(int(os.Stdout.Fd())), logger)
	return loop.WithResize(resize).Run(cmd.Context())
}

// finishSession logs where the user left the view and writes out everything
// the session kept while the terminal was busy.
func finishSession(session *logging.Session, ctrl *view.Controller, w io.Writer) error {
	s := ctrl.State()
	session.Logger.Info("session ended",
		slog.Int("events", ctrl.Handled()),
		slog.Float64("zoom", s.Zoom),
		slog.Float64("center_x", s.CenterX),
		slog.Float64("center_y", s.CenterY))
	return session.Flush(w)
}
