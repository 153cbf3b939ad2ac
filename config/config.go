// Package config loads the YAML configuration of the maze solver.
//
// A minimal file:
//
//	maze: input_16.txt
//	facing: east
//	costs:
//	  step: 1
//	  turn: 1000
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  textfile: /var/lib/node_exporter/mazesolve.prom
//
// Missing keys keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/backtrack/maze"
)

var (
	// ErrNoMaze indicates no maze file was configured.
	ErrNoMaze = errors.New("config: maze path is required")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete solver configuration.
type Config struct {
	Maze    string  `yaml:"maze"`
	Facing  string  `yaml:"facing"`
	Costs   Costs   `yaml:"costs"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Costs is the maze cost model.
type Costs struct {
	Step int `yaml:"step"`
	Turn int `yaml:"turn"`
}

// Log selects logger level and output format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics configures Prometheus export. An empty Textfile disables it.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration: step 1, turn 1000, facing east,
// info-level text logs, no metrics export, no maze.
func Default() Config {
	d := maze.DefaultOptions()

	return Config{
		Facing: d.Facing.String(),
		Costs:  Costs{Step: d.StepCost, Turn: d.TurnCost},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over Default and validates the result
// except for the maze path, which callers may still supply from flags.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err = cfg.validateFields(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a solve.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Maze) == "" {
		return ErrNoMaze
	}

	return c.validateFields()
}

// validateFields checks everything except the maze path.
func (c Config) validateFields() error {
	if _, err := maze.ParseDirection(c.Facing); err != nil {
		return fmt.Errorf("%w: facing: %w", ErrInvalid, err)
	}
	if c.Costs.Step < 0 || c.Costs.Turn < 0 {
		return fmt.Errorf("%w: costs must be non-negative (step=%d, turn=%d)", ErrInvalid, c.Costs.Step, c.Costs.Turn)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// MazeOptions converts the cost model to maze.Options.
func (c Config) MazeOptions() (maze.Options, error) {
	facing, err := maze.ParseDirection(c.Facing)
	if err != nil {
		return maze.Options{}, err
	}

	return maze.Options{
		StepCost: c.Costs.Step,
		TurnCost: c.Costs.Turn,
		Facing:   facing,
	}, nil
}
