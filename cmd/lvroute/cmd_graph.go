// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/dfs"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect the loaded network",
	}
	cmd.AddCommand(graphStatsCmd(a))
	cmd.AddCommand(graphNeighborsCmd(a))
	cmd.AddCommand(graphExportCmd(a))
	cmd.AddCommand(graphCyclesCmd(a))
	cmd.AddCommand(graphTopoCmd(a))
	return cmd
}

func graphStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show vertex, edge and attribute counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.graph.Stats()
			return a.output(cmd.OutOrStdout(), st, func(w io.Writer) {
				formatTable(w, []string{"FIELD", "VALUE"}, [][]string{
					{"directed", strconv.FormatBool(st.Directed)},
					{"vertices", strconv.Itoa(st.VertexCount)},
					{"edges", strconv.Itoa(st.EdgeCount)},
					{"isolated", strconv.Itoa(st.IsolatedCount)},
					{"attributes", strings.Join(st.Attributes, ",")},
				})
			})
		},
	}
}

func graphNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <id>",
		Short: "List the neighbors of a vertex with their edge attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nbrs, err := a.graph.Neighbors(args[0])
			if err != nil {
				return fmt.Errorf("neighbors: %w", err)
			}
			attrs := a.graph.AttributeNames()
			rows := make([][]string, 0, len(nbrs))
			for _, n := range nbrs {
				row := []string{n}
				for _, name := range attrs {
					v, err := a.graph.Attribute(args[0], n, name)
					if err != nil {
						row = append(row, "-")
						continue
					}
					row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
				}
				rows = append(rows, row)
			}
			return a.output(cmd.OutOrStdout(), nbrs, func(w io.Writer) {
				headers := append([]string{"NEIGHBOR"}, upper(attrs)...)
				formatTable(w, headers, rows)
			})
		},
	}
}

func graphExportCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded network as a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := builder.Document(name, a.graph).Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "exported", "Network name written to the document")
	return cmd
}

func graphCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "List the simple cycles of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cycles, err := dfs.DetectCycles(a.graph)
			if err != nil {
				return fmt.Errorf("cycles: %w", err)
			}
			return a.output(cmd.OutOrStdout(), cycles, func(w io.Writer) {
				if len(cycles) == 0 {
					fmt.Fprintln(w, "no cycles")
					return
				}
				for _, c := range cycles {
					fmt.Fprintln(w, strings.Join(c, " → "))
				}
			})
		},
	}
}

func graphTopoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Print a topological order of a directed acyclic network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := dfs.TopologicalSort(a.graph, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("topo: %w", err)
			}
			return a.output(cmd.OutOrStdout(), order, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(order, ", "))
			})
		},
	}
}

func upper(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToUpper(s)
	}
	return out
}
