// SPDX-License-Identifier: MIT

// Command lvroute plans deliveries and explores weighted route networks.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/logistics"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("lvroute version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("lvroute version %s-dev", version)
}

// app is the state shared by all subcommands once the root pre-run has loaded it.
type app struct {
	flagConfig   string
	flagNetwork  string
	flagLogLevel string
	flagFmt      string

	cfg   *config.Config
	log   *logrus.Logger
	graph *core.Graph
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "lvroute",
		Short:   "lvroute: shortest paths, traversals and delivery planning over route networks",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "YAML config file (env overrides: LVROUTE_*)")
	pf.StringVar(&a.flagNetwork, "network", "", "YAML network document (default: built-in Malaysian network)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	pf.StringVar(&a.flagFmt, "format", "text", "Output format: text|json")

	rootCmd.AddCommand(newRouteCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newTraverseCmd(a))
	rootCmd.AddCommand(newGraphCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))

	return rootCmd
}

// setup resolves configuration (flag, then env, then file), builds the logger
// and loads the network.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flagFmt != "text" && a.flagFmt != "json" {
		return fmt.Errorf("--format must be text or json, got %q", a.flagFmt)
	}

	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if a.flagNetwork != "" {
		cfg.Network = a.flagNetwork
	}
	if a.flagLogLevel != "" {
		cfg.LogLevel = a.flagLogLevel
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	g, err := loadGraph(cfg.Network)
	if err != nil {
		return err
	}
	st := g.Stats()
	log.WithFields(logrus.Fields{
		"network":  networkName(cfg.Network),
		"vertices": st.VertexCount,
		"edges":    st.EdgeCount,
		"directed": st.Directed,
	}).Debug("network loaded")

	a.cfg, a.log, a.graph = cfg, log, g

	return nil
}

func loadGraph(path string) (*core.Graph, error) {
	if path == "" {
		return builder.MalaysiaNetwork().Build()
	}
	doc, err := builder.LoadNetwork(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("build network %s: %w", path, err)
	}

	return g, nil
}

func networkName(path string) string {
	if path == "" {
		return "malaysia (built-in)"
	}
	return path
}

// criterion resolves a --criterion flag, falling back to the configured one.
func (a *app) criterion(flag string) (logistics.Criterion, error) {
	if flag == "" {
		return a.cfg.ParsedCriterion()
	}
	return logistics.ParseCriterion(flag)
}

func (a *app) planner(opts ...logistics.PlannerOption) (*logistics.Planner, error) {
	base := []logistics.PlannerOption{
		logistics.WithOrigin(a.cfg.Origin),
		logistics.WithFallback(a.cfg.Fallback()),
		logistics.WithLogger(a.log),
	}

	return logistics.NewPlanner(a.graph, append(base, opts...)...)
}
