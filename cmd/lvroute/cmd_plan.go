// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/logistics"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		orders      string
		criterion   string
		workers     int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "plan [order-id...]",
		Short: "Plan deliveries for orders from the customer file (all orders when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orders == "" {
				orders = a.cfg.Orders
			}
			if orders == "" {
				return fmt.Errorf("plan: no order file (use --orders or set orders in config)")
			}
			if workers <= 0 {
				workers = a.cfg.Workers
			}
			c, err := a.criterion(criterion)
			if err != nil {
				return err
			}

			book, err := logistics.LoadOrderBookFile(orders)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			m, err := logistics.NewMetrics(reg)
			if err != nil {
				return err
			}
			p, err := a.planner(logistics.WithOrderBook(book), logistics.WithMetrics(m))
			if err != nil {
				return err
			}

			ids := args
			if len(ids) == 0 {
				ids = book.IDs()
			}
			results, err := p.PlanBatch(cmd.Context(), ids, c, workers)
			if err != nil {
				return err
			}
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if err := a.output(cmd.OutOrStdout(), batchView(results), func(w io.Writer) {
				writePlanTable(w, results)
			}); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("plan: %d of %d orders failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&orders, "orders", "", "Customer CSV (default from config)")
	cmd.Flags().StringVar(&criterion, "criterion", "", "Optimize for cost or time (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent planners (default from config)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")
	return cmd
}

// batchEntry is the JSON shape of one BatchResult.
type batchEntry struct {
	OrderID string               `json:"order_id"`
	Plan    *logistics.RoutePlan `json:"plan,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func batchView(results []logistics.BatchResult) []batchEntry {
	out := make([]batchEntry, len(results))
	for i, r := range results {
		out[i] = batchEntry{OrderID: r.OrderID, Plan: r.Plan}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

func writePlanTable(w io.Writer, results []logistics.BatchResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.OrderID, "", "", "", "error: " + r.Err.Error()})
			continue
		}
		dest := r.Plan.Destination
		if r.Plan.FellBack {
			dest += " (fallback)"
		}
		total := strconv.FormatFloat(r.Plan.Total, 'f', 2, 64) + " " + r.Plan.Unit
		rows = append(rows, []string{r.OrderID, r.Plan.Customer, dest, total, strings.Join(r.Plan.Stops, " → ")})
	}
	formatTable(w, []string{"ORDER", "CUSTOMER", "DESTINATION", "TOTAL", "ROUTE"}, rows)
}
