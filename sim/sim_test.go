// SPDX-License-Identifier: MIT

package sim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/haulsim/builder"
	"github.com/katalvlaran/haulsim/demand"
	"github.com/katalvlaran/haulsim/network"
	"github.com/katalvlaran/haulsim/sim"
	"github.com/katalvlaran/haulsim/transport"
)

var (
	triangleNodes = []builder.NodeSpec{
		{X: 5, Y: 10, ID: 1},
		{X: 50, Y: 5, ID: 2},
		{X: 40, Y: 20, ID: 3},
	}
	sixNodes = []builder.NodeSpec{
		{X: 5, Y: 10, ID: 1}, {X: 50, Y: 5, ID: 2}, {X: 40, Y: 20, ID: 3},
		{X: 60, Y: 35, ID: 4}, {X: 30, Y: 35, ID: 5}, {X: 20, Y: 30, ID: 6},
	}
	sixDemand = []demand.Row{
		{From: 1, To: 2, Count: 2}, {From: 1, To: 5, Count: 1}, {From: 2, To: 3, Count: 3},
		{From: 3, To: 6, Count: 1}, {From: 4, To: 1, Count: 2}, {From: 5, To: 4, Count: 2},
		{From: 6, To: 2, Count: 1}, {From: 6, To: 5, Count: 2},
	}
)

func tr(id, node int, unloaded, loaded bool) transport.Transition {
	return transport.Transition{TransporterID: id, NodeID: node, Unloaded: unloaded, Loaded: loaded}
}

// recorder is an Observer that keeps everything it sees.
type recorder struct {
	moves  []transport.Move
	halted *sim.Result
}

func (r *recorder) OnMove(m transport.Move) { r.moves = append(r.moves, m) }
func (r *recorder) OnHalt(res *sim.Result) { r.halted = res }

// RunSuite exercises the driver loop end to end.
type RunSuite struct {
	suite.Suite
}

func (s *RunSuite) build(specs []builder.NodeSpec, rows []demand.Row) *network.Graph {
	g, err := builder.Build(specs, rows)
	s.Require().NoError(err)
	return g
}

func (s *RunSuite) TestGreedySingleTransporter() {
	g := s.build(triangleNodes, []demand.Row{{From: 1, To: 2, Count: 1}, {From: 1, To: 3, Count: 1}})

	res, err := sim.Run(g, sim.WithRunID("fixed"))
	s.Require().NoError(err)

	want := []transport.Transition{
		tr(1, 1, false, true),
		tr(1, 3, true, false),
		tr(1, 1, false, true),
	}
	if diff := cmp.Diff(want, res.History); diff != "" {
		s.T().Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	s.Require().InDelta(2*math.Sqrt(1325)+math.Sqrt(2050), res.TotalCost, 1e-9)
	s.Require().Equal(4, res.Rounds)
	s.Require().Equal("fixed", res.RunID)
	s.Require().Equal(transport.PolicyGreedy, res.Policy)
	s.Require().Zero(res.Remaining)
	s.Require().Equal(1, res.Loaded, "last package is still on board at halt")
	s.Require().Len(res.Moves, 3)
}

func (s *RunSuite) TestHaltStopsTheRoundAtOnce() {
	g := s.build(triangleNodes, []demand.Row{{From: 1, To: 2, Count: 1}})

	res, err := sim.Run(g, sim.WithTransporters(3))
	s.Require().NoError(err)
	// Agent 2 finds nothing anywhere; agent 3 never moves.
	s.Require().Equal([]transport.Transition{tr(1, 1, false, true)}, res.History)
	s.Require().Equal(1, res.Rounds)
}

func (s *RunSuite) TestSixNodesDrainCompletely() {
	for _, kind := range []transport.PolicyKind{transport.PolicyGreedy, transport.PolicyRandom} {
		for n := 1; n <= 6; n++ {
			g := s.build(sixNodes, sixDemand)
			res, err := sim.Run(g, sim.WithTransporters(n), sim.WithPolicy(kind), sim.WithSeed(11))
			s.Require().NoError(err)
			s.Require().True(g.Exhausted())

			pickups := 0
			for _, t := range res.History {
				if t.Loaded {
					pickups++
				}
			}
			s.Require().Equal(demand.Total(sixDemand), pickups, "%s/%d", kind, n)
		}
	}
}

func (s *RunSuite) TestRoundRobinOrder() {
	g := s.build(sixNodes, sixDemand)
	res, err := sim.Run(g, sim.WithTransporters(3))
	s.Require().NoError(err)

	for i, t := range res.History {
		s.Require().Equal(i%3+1, t.TransporterID)
	}
}

func (s *RunSuite) TestRandomSeedReproducible() {
	run := func(opt sim.Option) []transport.Transition {
		g := s.build(sixNodes, sixDemand)
		res, err := sim.Run(g, sim.WithTransporters(2), sim.WithPolicy(transport.PolicyRandom), opt)
		s.Require().NoError(err)
		return res.History
	}

	a := run(sim.WithSeed(2024))
	b := run(sim.WithRand(rand.New(rand.NewSource(2024))))
	s.Require().Empty(cmp.Diff(a, b))
}

func (s *RunSuite) TestObserverAndLogs() {
	g := s.build(triangleNodes, []demand.Row{{From: 1, To: 2, Count: 1}, {From: 1, To: 3, Count: 1}})
	rec := &recorder{}
	core, logs := observer.New(zap.DebugLevel)

	res, err := sim.Run(g, sim.WithObserver(rec), sim.WithLogger(zap.New(core)), sim.WithRunID("r1"))
	s.Require().NoError(err)
	s.Require().Len(rec.moves, 3)
	s.Require().Same(res, rec.halted)

	s.Require().Equal(1, logs.FilterMessage("simulation started").Len())
	halted := logs.FilterMessage("simulation halted").All()
	s.Require().Len(halted, 1)
	s.Require().Equal("r1", halted[0].ContextMap()["run"])
	s.Require().Equal(3, logs.FilterMessage("move").Len())
}

func (s *RunSuite) TestExplicitStartNodes() {
	g := s.build(triangleNodes, []demand.Row{{From: 1, To: 2, Count: 1}})
	res, err := sim.Run(g, sim.WithTransporters(2), sim.WithStartNodes(3, 1))
	s.Require().NoError(err)
	s.Require().Equal([]transport.Transition{
		tr(1, 3, false, false), // empty trip towards node 1
		tr(2, 1, false, true),  // agent 2 takes the only package
	}, res.History)
}

func (s *RunSuite) TestErrors() {
	_, err := sim.Run(nil)
	s.Require().ErrorIs(err, sim.ErrNilGraph)

	g := s.build(triangleNodes, nil)
	_, err = sim.Run(g, sim.WithTransporters(4))
	s.Require().ErrorIs(err, sim.ErrTooManyTransporters)

	_, err = sim.Run(g, sim.WithTransporters(2), sim.WithStartNodes(1))
	s.Require().ErrorIs(err, sim.ErrStartNode)

	_, err = sim.Run(g, sim.WithStartNodes(9))
	s.Require().ErrorIs(err, sim.ErrStartNode)
	s.Require().ErrorIs(err, network.ErrNodeNotFound)
}

func (s *RunSuite) TestEmptyDemand() {
	g := s.build(triangleNodes, nil)
	res, err := sim.Run(g, sim.WithTransporters(3))
	s.Require().NoError(err)
	s.Require().Empty(res.History)
	s.Require().Zero(res.TotalCost)
	s.Require().NotEmpty(res.RunID)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { sim.WithTransporters(0) })
	require.Panics(t, func() { sim.WithRand(nil) })
	require.Panics(t, func() { sim.WithLogger(nil) })
	require.Panics(t, func() { sim.WithObserver(nil) })
}

func TestRunName(t *testing.T) {
	require.Equal(t, "num_trans_2_random", sim.RunName(2, transport.PolicyRandom))
}
