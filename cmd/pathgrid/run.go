package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/runner"
	"github.com/katalvlaran/pathgrid/traversal"
)

type runFlags struct {
	frames  bool
	hint    bool
	metrics bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search without the UI and print the final grid",
		Long: `Runs the configured search to completion and prints the grid using
'#' walls, 'x' visited, 'o' frontier and '*' path cells.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			log := logging.NewWriter(cmd.ErrOrStderr(), level)
			return runHeadless(cmd.Context(), cmd.OutOrStdout(), cfg, log, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.frames, "frames", false, "print the grid after every tick")
	cmd.Flags().BoolVar(&flags.hint, "hint", false, "when no path exists, show the fewest walls to remove")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "print collected metrics after the run")
	return cmd
}

func runHeadless(ctx context.Context, out io.Writer, cfg *config.Config, log *slog.Logger, flags runFlags) error {
	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}
	opts = append(opts, runner.WithLogger(log))

	var reg *prometheus.Registry
	if flags.metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, runner.WithMetrics(runner.NewMetrics(reg)))
	}

	c, err := runner.New(g, opts...)
	if err != nil {
		return err
	}
	if err := c.Arm(); err != nil {
		return err
	}
	for c.Status() != runner.Complete {
		if err := ctx.Err(); err != nil {
			_ = c.Cancel()
			return err
		}
		if _, err := c.Tick(); err != nil {
			return err
		}
		if flags.frames && c.Status() != runner.Complete {
			fmt.Fprintf(out, "tick %d\n%s\n", c.Ticks(), g.Render(nil))
		}
	}

	fmt.Fprint(out, g.Render(c.Path()))
	fmt.Fprintf(out, "mode=%s conn=%s outcome=%s ticks=%d path=%d elapsed=%s\n",
		c.Mode(), c.Connectivity(), c.Outcome(), c.Ticks(), len(c.Path()), c.Elapsed())

	if flags.hint && c.Outcome() == traversal.OutcomeExhausted {
		path, walls, err := g.BreachPath(g.Start(), g.End(), c.Connectivity())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "hint: remove %d wall(s) at %v\n", walls, g.WallsOn(path))
		fmt.Fprint(out, g.Render(path))
	}

	if reg != nil {
		return writeMetrics(out, reg)
	}
	return nil
}

// writeMetrics prints one "name{labels} value" line per series.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(out, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				fmt.Fprintf(out, "%s%s %g\n", mf.GetName(), labels, m.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(out, "%s_count%s %d\n", mf.GetName(), labels, h.GetSampleCount())
				fmt.Fprintf(out, "%s_sum%s %g\n", mf.GetName(), labels, h.GetSampleSum())
			}
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
