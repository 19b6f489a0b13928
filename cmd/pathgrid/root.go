package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/config"
)

// rootOptions are the persistent flags shared by every subcommand.
// Flags that were set explicitly override the config file.
type rootOptions struct {
	configPath string
	mode       string
	conn       int
	width      int
	height     int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pathgrid",
		Short: "pathgrid animates grid pathfinding one step at a time",
		Long: `pathgrid runs BFS, A* or Dijkstra over a grid of walls, expanding one cell
per tick so the search can be watched, paused and inspected.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&opts.mode, "mode", "m", "", "search mode: bfs, astar or dijkstra")
	pf.IntVar(&opts.conn, "conn", 0, "neighbor connectivity: 4 or 8")
	pf.IntVar(&opts.width, "width", 0, "grid width in cells")
	pf.IntVar(&opts.height, "height", 0, "grid height in cells")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	cmd.AddCommand(newRunCmd(opts), newTUICmd(opts), newVersionCmd())
	return cmd
}

// Execute builds the command tree and runs it until completion or SIGINT.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// load resolves the effective configuration for cmd.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("conn") {
		cfg.Connectivity = o.conn
	}
	if flags.Changed("width") {
		cfg.Width = o.width
		cfg.Layout = nil
	}
	if flags.Changed("height") {
		cfg.Height = o.height
		cfg.Layout = nil
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
