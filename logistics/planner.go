// SPDX-License-Identifier: MIT

package logistics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

var (
	// ErrNilGraph is returned by NewPlanner for a nil graph.
	ErrNilGraph = errors.New("logistics: graph is nil")

	// ErrUnknownOrigin is returned by NewPlanner when the origin is not a vertex.
	ErrUnknownOrigin = errors.New("logistics: origin is not on the network")

	// ErrEmptyDestination is returned for a blank destination.
	ErrEmptyDestination = errors.New("logistics: destination is empty")

	// ErrUnroutable is returned when a destination cannot be routed and the
	// fallback policy does not apply.
	ErrUnroutable = errors.New("logistics: destination cannot be routed")

	// ErrNoOrderBook is returned by PlanOrder when no OrderBook was configured.
	ErrNoOrderBook = errors.New("logistics: no order book configured")
)

// RoutePlan is the outcome of planning one delivery.
type RoutePlan struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id,omitempty"`
	Customer       string    `json:"customer,omitempty"`
	Origin         string    `json:"origin"`
	Requested      string    `json:"requested"`
	Destination    string    `json:"destination"`
	FellBack       bool      `json:"fell_back"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
	Criterion      Criterion `json:"criterion"`
	Stops          []string  `json:"stops"`
	Total          float64   `json:"total"`
	Unit           string    `json:"unit"`
}

// Summary renders the plan on one line, e.g.
// "Port Klang → Shah Alam → Petaling Jaya (10.00 RM)".
func (r *RoutePlan) Summary() string {
	s := fmt.Sprintf("%s (%.2f %s)", strings.Join(r.Stops, " → "), r.Total, r.Unit)
	if r.FellBack {
		s += fmt.Sprintf(" [rerouted from %q: %s]", r.Requested, r.FallbackReason)
	}

	return s
}

// BatchResult pairs an order ID with its plan or error.
type BatchResult struct {
	OrderID string
	Plan    *RoutePlan
	Err     error
}

// PlannerOption configures a Planner.
type PlannerOption func(p *Planner)

// WithOrigin sets the origin hub. Panics on an empty id.
func WithOrigin(id string) PlannerOption {
	id = strings.TrimSpace(id)
	if id == "" {
		panic("logistics: WithOrigin requires a non-empty id")
	}
	return func(p *Planner) { p.origin = id }
}

// WithFallback replaces the default fallback policy.
func WithFallback(policy FallbackPolicy) PlannerOption {
	return func(p *Planner) { p.policy = policy }
}

// WithOrderBook enables PlanOrder and PlanBatch.
func WithOrderBook(b *OrderBook) PlannerOption {
	return func(p *Planner) { p.book = b }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logrus.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics records plan outcomes into m.
func WithMetrics(m *Metrics) PlannerOption {
	return func(p *Planner) { p.metrics = m }
}

// WithSearchOptions forwards options to every dijkstra.ShortestPath call.
// A search bound that leaves the destination out of reach counts as no path.
func WithSearchOptions(opts ...dijkstra.Option) PlannerOption {
	return func(p *Planner) { p.search = append(p.search, opts...) }
}

// Planner routes deliveries from one origin over a read-only graph.
// It is safe for concurrent use.
type Planner struct {
	g       *core.Graph
	origin  string
	policy  FallbackPolicy
	book    *OrderBook
	log     *logrus.Logger
	metrics *Metrics
	search  []dijkstra.Option
}

// NewPlanner returns a Planner over g. The origin defaults to
// builder.MalaysiaHub and the policy to DefaultFallback.
func NewPlanner(g *core.Graph, opts ...PlannerOption) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	p := &Planner{
		g:      g,
		origin: builder.MalaysiaHub,
		policy: DefaultFallback(),
		log:    quiet,
	}
	for _, opt := range opts {
		opt(p)
	}
	if !g.HasVertex(p.origin) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrigin, p.origin)
	}

	return p, nil
}

// Origin returns the origin hub.
func (p *Planner) Origin() string { return p.origin }

// PlanTo routes from the origin to dest under criterion c.
//
// If dest is not a vertex, or dijkstra reports no path, the delivery is
// rerouted once to the fallback hub and the plan records the reason. A
// failure to reach the hub wraps ErrFallbackFailed. Other search errors
// (for example an edge missing the criterion's attribute) are returned as is.
func (p *Planner) PlanTo(dest string, c Criterion) (*RoutePlan, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return nil, ErrEmptyDestination
	}

	plan := &RoutePlan{
		ID:        uuid.NewString(),
		Origin:    p.origin,
		Requested: dest,
		Criterion: c,
		Unit:      c.Unit(),
	}
	entry := p.log.WithFields(logrus.Fields{
		"plan_id":   plan.ID,
		"criterion": string(c),
		"requested": dest,
	})

	path, err := p.route(plan, dest, c, entry)
	if err != nil {
		p.metrics.observePlan(c, OutcomeFailed, 0)
		entry.WithError(err).Error("route planning failed")
		return nil, err
	}

	plan.Stops = path.Nodes
	plan.Total = path.Weight
	outcome := OutcomeRouted
	if plan.FellBack {
		outcome = OutcomeFallback
	}
	p.metrics.observePlan(c, outcome, len(plan.Stops))
	entry.WithFields(logrus.Fields{
		"destination": plan.Destination,
		"stops":       len(plan.Stops),
		"total":       plan.Total,
	}).Info("route planned")

	return plan, nil
}

// route resolves the destination, applying the fallback policy at most once.
func (p *Planner) route(plan *RoutePlan, dest string, c Criterion, entry *logrus.Entry) (*dijkstra.Path, error) {
	target := dest
	if !p.g.HasVertex(dest) {
		if !p.policy.applies(dest) {
			return nil, fmt.Errorf("%w: %q is not on the network", ErrUnroutable, dest)
		}
		target = p.fallBack(plan, ReasonUnmapped, entry)
	}

	path, err := dijkstra.ShortestPath(p.g, p.origin, target, c.Attribute(), p.search...)
	if errors.Is(err, dijkstra.ErrNoPath) && !plan.FellBack {
		if !p.policy.applies(target) {
			return nil, fmt.Errorf("%w: %w", ErrUnroutable, err)
		}
		target = p.fallBack(plan, ReasonNoPath, entry)
		path, err = dijkstra.ShortestPath(p.g, p.origin, target, c.Attribute(), p.search...)
	}
	if err != nil {
		if plan.FellBack {
			return nil, fmt.Errorf("%w: %q: %w", ErrFallbackFailed, target, err)
		}
		return nil, err
	}
	plan.Destination = target

	return path, nil
}

func (p *Planner) fallBack(plan *RoutePlan, reason string, entry *logrus.Entry) string {
	plan.FellBack = true
	plan.FallbackReason = reason
	p.metrics.observeFallback(reason)
	entry.WithFields(logrus.Fields{
		"reason": reason,
		"hub":    p.policy.Hub,
	}).Warn("destination rerouted to fallback hub")

	return p.policy.Hub
}

// PlanOrder looks the order up in the configured OrderBook and routes to its city.
func (p *Planner) PlanOrder(orderID string, c Criterion) (*RoutePlan, error) {
	if p.book == nil {
		return nil, ErrNoOrderBook
	}
	o, err := p.book.Lookup(orderID)
	if err != nil {
		return nil, err
	}

	plan, err := p.PlanTo(o.City, c)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.OrderID, err)
	}
	plan.OrderID = o.OrderID
	plan.Customer = o.CustomerName

	return plan, nil
}

// PlanBatch plans every order in ids with up to workers goroutines (minimum 1).
// Results keep the order of ids; per-order failures are reported in
// BatchResult.Err. The returned error is non-nil only when ctx is done before
// every order was planned.
func (p *Planner) PlanBatch(ctx context.Context, ids []string, c Criterion, workers int) ([]BatchResult, error) {
	if p.book == nil {
		return nil, ErrNoOrderBook
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = BatchResult{OrderID: id, Err: err}
				return err
			}
			plan, err := p.PlanOrder(id, c)
			results[i] = BatchResult{OrderID: id, Plan: plan, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("logistics: batch interrupted: %w", err)
	}
	p.log.WithFields(logrus.Fields{
		"orders":  len(ids),
		"workers": workers,
	}).Debug("batch planned")

	return results, nil
}
