// SPDX-License-Identifier: MIT

package transport_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulsim/network"
	"github.com/katalvlaran/haulsim/transport"
)

// triangle builds nodes (5,10,1), (50,5,2), (40,20,3) with demand 1→2, 1→3.
func triangle(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	n1 := network.NewNode(1, 5, 10)
	n2 := network.NewNode(2, 50, 5)
	n3 := network.NewNode(3, 40, 20)
	for _, n := range []*network.Node{n1, n2, n3} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, n1.AddLink(network.NewLink(n1, n2)))
	require.NoError(t, n1.AddLink(network.NewLink(n1, n3)))
	return g
}

func TestStep_GreedyScenario(t *testing.T) {
	g := triangle(t)
	start, _ := g.Node(1)
	tr := transport.NewTransporter(1, start)
	p := transport.NewPolicy(transport.PolicyGreedy, nil)

	var got []transport.Move
	for {
		m, ok := tr.Step(g, p)
		if !ok {
			break
		}
		got = append(got, m)
	}

	want := []transport.Move{
		{Transition: transport.Transition{TransporterID: 1, NodeID: 1, Unloaded: false, Loaded: true}, To: 3, Cost: math.Sqrt(1325)},
		{Transition: transport.Transition{TransporterID: 1, NodeID: 3, Unloaded: true, Loaded: false}, To: 1, Cost: math.Sqrt(1325)},
		{Transition: transport.Transition{TransporterID: 1, NodeID: 1, Unloaded: false, Loaded: true}, To: 2, Cost: math.Sqrt(2050)},
	}
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 2, tr.Current().ID())
	require.True(t, tr.Loaded())
	require.True(t, g.Exhausted())
}

func TestStep_ExhaustedLeavesStateUnchanged(t *testing.T) {
	g := network.NewGraph()
	n1 := network.NewNode(1, 0, 0)
	n2 := network.NewNode(2, 3, 4)
	require.NoError(t, g.AddNode(n1))
	require.NoError(t, g.AddNode(n2))
	require.NoError(t, n1.AddLink(network.NewLink(n1, n2)))

	tr := transport.NewTransporter(7, n1)
	p := transport.NewPolicy(transport.PolicyGreedy, nil)

	m, ok := tr.Step(g, p)
	require.True(t, ok)
	require.Equal(t, "7,1,0,1", m.String())

	for i := 0; i < 2; i++ {
		m, ok = tr.Step(g, p)
		require.False(t, ok)
		require.Zero(t, m)
		require.Same(t, n2, tr.Current())
		require.True(t, tr.Loaded(), "terminal step must not drop the load")
	}
}

func TestStep_EmptyTransporterOnEmptyGraph(t *testing.T) {
	g := network.NewGraph()
	n := network.NewNode(1, 0, 0)
	require.NoError(t, g.AddNode(n))

	tr := transport.NewTransporter(1, n)
	_, ok := tr.Step(g, transport.NewPolicy(transport.PolicyRandom, transport.RNGFromSeed(3)))
	require.False(t, ok)
	require.Same(t, n, tr.Current())
	require.False(t, tr.Loaded())
}

func TestStep_GreedyRelocatesToNearest(t *testing.T) {
	g := network.NewGraph()
	here := network.NewNode(1, 0, 0)
	far := network.NewNode(2, 100, 0)
	near := network.NewNode(3, 10, 0)
	tie := network.NewNode(4, -10, 0)
	for _, n := range []*network.Node{here, far, near, tie} {
		require.NoError(t, g.AddNode(n))
	}
	for _, n := range []*network.Node{far, tie, near} {
		require.NoError(t, n.AddLink(network.NewLink(n, here)))
	}

	tr := transport.NewTransporter(1, here)
	m, ok := tr.Step(g, transport.Greedy{})
	require.True(t, ok)
	require.Equal(t, 3, m.To, "first nearest candidate in graph order wins")
	require.False(t, m.Loaded)
	require.Equal(t, 10.0, m.Cost)
}

func TestStep_RandomIsSeedDeterministic(t *testing.T) {
	run := func(seed int64) []transport.Move {
		g := network.NewGraph()
		var nodes []*network.Node
		for i := 1; i <= 5; i++ {
			n := network.NewNode(i, float64(i*7%11), float64(i*5%13))
			nodes = append(nodes, n)
			require.NoError(t, g.AddNode(n))
		}
		for i, from := range nodes {
			for j, to := range nodes {
				if i != j {
					require.NoError(t, from.AddLink(network.NewLink(from, to)))
				}
			}
		}
		tr := transport.NewTransporter(1, nodes[0])
		p := transport.NewPolicy(transport.PolicyRandom, transport.RNGFromSeed(seed))
		var out []transport.Move
		for {
			m, ok := tr.Step(g, p)
			if !ok {
				return out
			}
			out = append(out, m)
		}
	}

	a, b := run(99), run(99)
	require.Empty(t, cmp.Diff(a, b))

	pickups := 0
	for _, m := range a {
		if m.Loaded {
			pickups++
		}
	}
	require.Equal(t, 20, pickups)
}
