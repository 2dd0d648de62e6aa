// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/logistics"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		criterion  string
		noFallback bool
	)
	cmd := &cobra.Command{
		Use:   "route <destination>",
		Short: "Plan a delivery from the origin hub to a destination city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.criterion(criterion)
			if err != nil {
				return err
			}
			var opts []logistics.PlannerOption
			if noFallback {
				opts = append(opts, logistics.WithFallback(logistics.FallbackPolicy{}))
			}
			p, err := a.planner(opts...)
			if err != nil {
				return err
			}

			plan, err := p.PlanTo(args[0], c)
			if err != nil {
				return fmt.Errorf("route: %w", err)
			}
			return a.output(cmd.OutOrStdout(), plan, func(w io.Writer) {
				fmt.Fprintln(w, plan.Summary())
			})
		},
	}
	cmd.Flags().StringVar(&criterion, "criterion", "", "Optimize for cost or time (default from config)")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Fail instead of rerouting to the fallback hub")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var (
		attr        string
		maxDistance float64
	)
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest path between two vertices on one attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if attr == "" {
				c, err := a.cfg.ParsedCriterion()
				if err != nil {
					return err
				}
				attr = c.Attribute()
			}
			var opts []dijkstra.Option
			if maxDistance > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}

			path, err := dijkstra.ShortestPath(a.graph, args[0], args[1], attr, opts...)
			if err != nil {
				return fmt.Errorf("path: %w", err)
			}
			return a.output(cmd.OutOrStdout(), path, func(w io.Writer) {
				fmt.Fprintln(w, path.String())
			})
		},
	}
	cmd.Flags().StringVar(&attr, "attr", "", "Edge attribute to minimize (default: the configured criterion's)")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Do not expand vertices beyond this distance (0 = unbounded)")
	return cmd
}
