// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/traversal"
)

func newTraverseCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "traverse <start>",
		Short: "Visit every vertex with BFS or DFS, restarting on unreached components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := traversal.ParseKind(kind)
			if err != nil {
				return err
			}
			res, err := traversal.Run(a.graph, args[0], k)
			if err != nil {
				return fmt.Errorf("traverse: %w", err)
			}
			return a.output(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "order: %s\n", strings.Join(res.Order, ", "))
				fmt.Fprintf(w, "roots: %s\n", strings.Join(res.Roots, ", "))
				for depth, level := range res.Levels() {
					fmt.Fprintf(w, "depth %d: %s\n", depth, strings.Join(level, ", "))
				}
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(traversal.BFS), "Traversal kind: bfs|dfs")
	return cmd
}
