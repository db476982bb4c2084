// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/haulsim/network"
	"github.com/katalvlaran/haulsim/transport"
)

// Run plays the simulation on g until no demand is left.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Start nodes must resolve (ErrTooManyTransporters, ErrStartNode).
//
// The run is single-threaded; g is mutated in place and fully drained on
// success.
//
// Complexity: O(U·(log k + V)) for U demand units.
func Run(g *network.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	fleet, err := spawn(g, cfg)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = transport.RNGFromSeed(cfg.Seed)
	}
	policy := transport.NewPolicy(cfg.Policy, rng)

	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	log := cfg.Logger.With(
		zap.String("run", cfg.RunID),
		zap.Stringer("policy", policy.Kind()),
	)

	r := &runner{
		g:      g,
		policy: policy,
		fleet:  fleet,
		log:    log,
		obs:    cfg.Observers,
		res: &Result{
			RunID:        cfg.RunID,
			Policy:       policy.Kind(),
			Transporters: len(fleet),
		},
	}

	log.Info("simulation started",
		zap.Int("transporters", len(fleet)),
		zap.Int("nodes", g.Len()),
		zap.Int("demand", g.Remaining()),
	)
	r.loop()
	r.res.Remaining = g.Remaining()
	for _, t := range fleet {
		if t.Loaded() {
			r.res.Loaded++
		}
	}
	log.Info("simulation halted",
		zap.Int("rounds", r.res.Rounds),
		zap.Int("transitions", len(r.res.History)),
		zap.Int("loaded", r.res.Loaded),
		zap.Float64("total_cost", r.res.TotalCost),
	)
	for _, o := range r.obs {
		o.OnHalt(r.res)
	}

	return r.res, nil
}

// runner holds the mutable state of one run.
type runner struct {
	g      *network.Graph
	policy transport.Policy
	fleet  []*transport.Transporter
	log    *zap.Logger
	obs    []Observer
	res    *Result
}

// loop plays rounds until a Step reports no work anywhere.
func (r *runner) loop() {
	for {
		r.res.Rounds++
		for _, t := range r.fleet {
			m, ok := t.Step(r.g, r.policy)
			if !ok {
				r.log.Debug("no demand left", zap.Int("transporter", t.ID()))
				return
			}
			r.record(m)
		}
	}
}

func (r *runner) record(m transport.Move) {
	r.res.History = append(r.res.History, m.Transition)
	r.res.Moves = append(r.res.Moves, m)
	r.res.TotalCost += m.Cost

	r.log.Debug("move",
		zap.Stringer("transition", m.Transition),
		zap.Int("to", m.To),
		zap.Float64("cost", m.Cost),
	)
	for _, o := range r.obs {
		o.OnMove(m)
	}
}

// spawn places agents 1..n. Without explicit start nodes agent k starts on
// the k-th node in graph order.
func spawn(g *network.Graph, cfg Options) ([]*transport.Transporter, error) {
	n := cfg.Transporters
	ids := cfg.StartNodes
	if ids == nil {
		if n > g.Len() {
			return nil, fmt.Errorf("%w: %d transporters, %d nodes", ErrTooManyTransporters, n, g.Len())
		}
		ids = g.IDs()[:n]
	} else if len(ids) != n {
		return nil, fmt.Errorf("%w: %d start nodes for %d transporters", ErrStartNode, len(ids), n)
	}

	fleet := make([]*transport.Transporter, 0, n)
	for k, id := range ids {
		start, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("%w: transporter %d: %w", ErrStartNode, k+1, err)
		}
		fleet = append(fleet, transport.NewTransporter(k+1, start))
	}

	return fleet, nil
}
