// Package config loads pathgrid settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/runner"
	"github.com/katalvlaran/pathgrid/traversal"
)

// ErrInvalidConfig is returned when a loaded or flag-built Config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the on-disk settings file. Zero fields in the file keep their defaults.
type Config struct {
	Width        int           `yaml:"width" validate:"min=2,max=512"`
	Height       int           `yaml:"height" validate:"min=1,max=512"`
	Mode         string        `yaml:"mode" validate:"oneof=bfs astar dijkstra"`
	Connectivity int           `yaml:"connectivity" validate:"oneof=4 8"`
	Tick         time.Duration `yaml:"tick" validate:"min=1ms"`
	// Layout rows in gridgraph.ParseLayout format; overrides Width and Height.
	Layout   []string `yaml:"layout" validate:"omitempty,max=512,dive,min=1,max=512"`
	LogLevel string   `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns a 30×20 BFS setup ticking every 30ms.
func Default() *Config {
	return &Config{
		Width:        30,
		Height:       20,
		Mode:         "bfs",
		Connectivity: 4,
		Tick:         30 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// SearchMode returns the parsed Mode.
func (c *Config) SearchMode() (traversal.Mode, error) {
	return traversal.ParseMode(c.Mode)
}

// Conn returns the parsed Connectivity.
func (c *Config) Conn() (gridgraph.Connectivity, error) {
	return gridgraph.ParseConnectivity(c.Connectivity)
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// BuildGrid returns the grid described by Layout, or an empty Width×Height
// grid with the default marker positions.
func (c *Config) BuildGrid() (*gridgraph.Grid, error) {
	if len(c.Layout) > 0 {
		return gridgraph.ParseLayout(c.Layout)
	}
	return gridgraph.NewGrid(c.Width, c.Height)
}

// ControllerOptions returns the runner options for Mode and Connectivity.
func (c *Config) ControllerOptions() ([]runner.Option, error) {
	mode, err := c.SearchMode()
	if err != nil {
		return nil, err
	}
	conn, err := c.Conn()
	if err != nil {
		return nil, err
	}
	return []runner.Option{runner.WithMode(mode), runner.WithConnectivity(conn)}, nil
}
