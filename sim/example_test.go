// SPDX-License-Identifier: MIT

package sim_test

import (
	"fmt"

	"github.com/katalvlaran/haulsim/builder"
	"github.com/katalvlaran/haulsim/demand"
	"github.com/katalvlaran/haulsim/sim"
	"github.com/katalvlaran/haulsim/transport"
)

// ExampleRun services two packages from node 1 with one greedy transporter.
func ExampleRun() {
	nodes := []builder.NodeSpec{
		{X: 5, Y: 10, ID: 1},
		{X: 50, Y: 5, ID: 2},
		{X: 40, Y: 20, ID: 3},
	}
	rows := []demand.Row{
		{From: 1, To: 2, Count: 1},
		{From: 1, To: 3, Count: 1},
	}

	g, err := builder.Build(nodes, rows)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := sim.Run(g, sim.WithPolicy(transport.PolicyGreedy))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, t := range res.History {
		fmt.Println(t)
	}
	fmt.Printf("rounds=%d cost=%.2f\n", res.Rounds, res.TotalCost)

	// Output:
	// 1,1,0,1
	// 1,3,1,0
	// 1,1,0,1
	// rounds=4 cost=118.08
}
