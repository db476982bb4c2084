// SPDX-License-Identifier: MIT

// Command haulsim runs one transport simulation and writes its history.
//
// Usage:
//
//	haulsim [-config run.yaml] [-demand path] [-out dir] [-transporters n]
//	        [-policy greedy|random] [-seed n] [-log-level info] [-metrics file]
//	        [-verify] [-quiet]
//
// Flags override the matching config keys. The history goes to
// <out>/result_num_trans_<n>_<policy>.txt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/haulsim/builder"
	"github.com/katalvlaran/haulsim/config"
	"github.com/katalvlaran/haulsim/history"
	"github.com/katalvlaran/haulsim/logging"
	"github.com/katalvlaran/haulsim/metrics"
	"github.com/katalvlaran/haulsim/sim"
)

var errHistoryMismatch = errors.New("haulsim: history file does not match the run")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "haulsim:", err)
		}
		os.Exit(1)
	}
}

// run is main without process exit, for tests.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("haulsim", flag.ContinueOnError)
	var (
		cfgPath      = fs.String("config", "", "YAML run configuration")
		demandPath   = fs.String("demand", "", "transport demand table (overrides config)")
		outDir       = fs.String("out", "", "result directory (overrides config)")
		transporters = fs.Int("transporters", 0, "number of transporters (overrides config)")
		policy       = fs.String("policy", "", "greedy or random (overrides config)")
		seed         = fs.Int64("seed", 0, "random policy seed (overrides config)")
		logLevel     = fs.String("log-level", "", "debug, info, warn or error (overrides config)")
		metricsPath  = fs.String("metrics", "", "write Prometheus text metrics to this file")
		verify       = fs.Bool("verify", false, "read the history back and compare it with the run")
		quiet        = fs.Bool("quiet", false, "do not print the summary")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demand":
			cfg.Demand = *demandPath
		case "out":
			cfg.Output = *outDir
		case "transporters":
			cfg.Transporters = *transporters
		case "policy":
			cfg.Policy = strings.ToLower(*policy)
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics":
			cfg.MetricsFile = *metricsPath
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := builder.FromFile(cfg.NodeSpecs(), cfg.Demand, builder.WithLogger(log))
	if err != nil {
		return err
	}

	collector := metrics.New()
	collector.SetDemand(g.Remaining())
	opts := append(cfg.SimOptions(), sim.WithLogger(log), sim.WithObserver(collector))

	res, err := sim.Run(g, opts...)
	if err != nil {
		return err
	}

	path, err := history.WriteFile(cfg.Output, cfg.RunName(), res.History)
	if err != nil {
		return err
	}
	log.Info("history written", zap.String("path", path), zap.Int("transitions", len(res.History)))

	if *verify {
		back, err := history.ReadFile(path)
		if err != nil {
			return err
		}
		if !slices.Equal(back, res.History) {
			return fmt.Errorf("%w: %s", errHistoryMismatch, path)
		}
	}

	if cfg.MetricsFile != "" {
		if err = collector.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	if !*quiet {
		fmt.Fprintln(stdout, summary(res, path))
	}

	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// summary renders the run outcome as a small bordered table.
func summary(res *sim.Result, path string) string {
	rows := [][2]string{
		{"run", res.RunID},
		{"policy", res.Policy.String()},
		{"transporters", strconv.Itoa(res.Transporters)},
		{"transitions", strconv.Itoa(len(res.History))},
		{"rounds", strconv.Itoa(res.Rounds)},
		{"total cost", strconv.FormatFloat(res.TotalCost, 'f', 2, 64)},
		{"history", path},
	}

	lines := []string{titleStyle.Render("haulsim")}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(r[0]), r[1]))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
