package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/backtrack/config"
	"github.com/katalvlaran/backtrack/logging"
	"github.com/katalvlaran/backtrack/maze"
	"github.com/katalvlaran/backtrack/metrics"
	"github.com/katalvlaran/backtrack/search"
)

// errNoPath is returned when no 'E' tile is reachable from 'S'.
var errNoPath = errors.New("no path from start to end")

// solveFlags mirrors the config keys that may be overridden on the command line.
type solveFlags struct {
	configPath string
	maze       string
	facing     string
	stepCost   int
	turnCost   int
	logLevel   string
	logFormat  string
	textfile   string
	render     bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [maze-file]",
		Short: "Find the cheapest path from S to E",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}

			return runSolve(cmd, cfg, f.render)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.maze, "maze", "m", "", "maze file (overrides config; may also be given as an argument)")
	fl.StringVar(&f.facing, "facing", "east", "initial facing: north, east, south or west")
	fl.IntVar(&f.stepCost, "step-cost", 1, "cost of one step")
	fl.IntVar(&f.turnCost, "turn-cost", 1000, "cost of one quarter turn")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	fl.StringVar(&f.textfile, "metrics-textfile", "", "write Prometheus metrics to this file after solving")
	fl.BoolVar(&f.render, "render", false, "print the maze with the best path drawn")

	return cmd
}

// resolveConfig layers defaults, the config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, f solveFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if len(args) == 1 {
		cfg.Maze = args[0]
	}
	if fl.Changed("maze") {
		cfg.Maze = f.maze
	}
	if fl.Changed("facing") {
		cfg.Facing = f.facing
	}
	if fl.Changed("step-cost") {
		cfg.Costs.Step = f.stepCost
	}
	if fl.Changed("turn-cost") {
		cfg.Costs.Turn = f.turnCost
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = f.textfile
	}

	return cfg, cfg.Validate()
}

// runSolve loads the maze, searches it and reports the result on stdout.
func runSolve(cmd *cobra.Command, cfg config.Config, render bool) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	opts, err := cfg.MazeOptions()
	if err != nil {
		return err
	}
	m, err := maze.Load(cfg.Maze, opts)
	if err != nil {
		return err
	}
	logger.Info("maze loaded",
		"path", cfg.Maze,
		"width", m.Width,
		"height", m.Height,
		"start", m.Start().String(),
		"ends", len(m.Ends()),
	)

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	observe := func(ev search.Event) {
		collector.Observe(ev)
		if ev.Kind == search.EventImprove {
			logger.Debug("better path", "cost", -ev.Score, "depth", ev.Depth)
		}
	}

	start := time.Now()
	sol := maze.Solve(m, search.WithObserver(observe))
	collector.ObserveDuration(start)
	logger.Info("search finished",
		"elapsed", time.Since(start),
		slog.Group("stats",
			"steps", sol.Stats.Steps,
			"pushes", sol.Stats.Pushes,
			"dead_ends", sol.Stats.DeadEnds,
			"improvements", sol.Stats.Improvements,
			"max_depth", sol.Stats.MaxDepth,
		),
	)

	if cfg.Metrics.Textfile != "" {
		if err = metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			logger.Warn("metrics export failed", "error", err)
		}
	}

	if !sol.Found {
		return errNoPath
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cost: %d\n", sol.Cost)
	fmt.Fprintf(out, "steps: %d\n", len(sol.Path)-1)
	if render {
		fmt.Fprint(out, m.Render(sol.Path))
	}

	return nil
}
