// SPDX-License-Identifier: MIT

// Package metrics exposes run statistics as Prometheus collectors.
//
// A Collector owns a private registry, so several runs in one process do
// not share series. It implements sim.Observer; register it with
// sim.WithObserver and dump it with WriteFile after the run.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/haulsim/sim"
	"github.com/katalvlaran/haulsim/transport"
)

// Move kinds used as the "kind" label.
const (
	KindPickup   = "pickup"
	KindRelocate = "relocate"
)

// Collector holds all metrics of one run.
type Collector struct {
	registry *prometheus.Registry

	Moves        *prometheus.CounterVec
	Dropoffs     prometheus.Counter
	MoveCost     *prometheus.HistogramVec
	TotalCost    prometheus.Gauge
	Remaining    prometheus.Gauge
	Rounds       prometheus.Gauge
	Transporters prometheus.Gauge
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}
	f := promauto.With(c.registry)

	c.Moves = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "haulsim_moves_total",
			Help: "Transporter moves by transporter and kind",
		},
		[]string{"transporter", "kind"},
	)
	c.Dropoffs = f.NewCounter(
		prometheus.CounterOpts{
			Name: "haulsim_dropoffs_total",
			Help: "Packages delivered to their destination, including those on board at halt",
		},
	)
	c.MoveCost = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "haulsim_move_cost",
			Help:    "Euclidean cost of single moves",
			Buckets: []float64{5, 10, 20, 40, 80, 160, 320},
		},
		[]string{"kind"},
	)
	c.TotalCost = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "haulsim_total_cost",
			Help: "Sum of move costs so far",
		},
	)
	c.Remaining = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "haulsim_remaining_links",
			Help: "Demand units not yet picked up",
		},
	)
	c.Rounds = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "haulsim_rounds",
			Help: "Rounds played, including the halting one",
		},
	)
	c.Transporters = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "haulsim_transporters",
			Help: "Transporters in the run",
		},
	)

	return c
}

// Registry returns the private registry, e.g. for promhttp or testutil.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// SetDemand records the demand present before the run starts.
func (c *Collector) SetDemand(units int) {
	c.Remaining.Set(float64(units))
}

// OnMove implements sim.Observer.
func (c *Collector) OnMove(m transport.Move) {
	kind := KindRelocate
	if m.Loaded {
		kind = KindPickup
		c.Remaining.Dec()
	}
	if m.Unloaded {
		c.Dropoffs.Inc()
	}
	c.Moves.WithLabelValues(strconv.Itoa(m.TransporterID), kind).Inc()
	c.MoveCost.WithLabelValues(kind).Observe(m.Cost)
	c.TotalCost.Add(m.Cost)
}

// OnHalt implements sim.Observer. A transporter still loaded at halt has
// arrived at its destination; its drop-off has no Transition of its own.
func (c *Collector) OnHalt(r *sim.Result) {
	c.Dropoffs.Add(float64(r.Loaded))
	c.Rounds.Set(float64(r.Rounds))
	c.Transporters.Set(float64(r.Transporters))
	c.Remaining.Set(float64(r.Remaining))
	c.TotalCost.Set(r.TotalCost)
}

// WriteFile dumps the registry in the text exposition format.
func (c *Collector) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

var _ sim.Observer = (*Collector)(nil)
