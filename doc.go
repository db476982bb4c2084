// Package haulsim simulates a fleet of transporters working off a transport
// demand between fixed nodes on a plane.
//
// Each unit of demand is a Link from an origin Node to a destination Node,
// queued on the origin. A Transporter standing on a Node with demand picks
// one Link (nearest first, or uniformly at random), carries it to the
// destination and records a Transition. A Transporter on an empty Node drives
// empty to a Node that still has demand. The run halts once no Node has any.
//
// Packages:
//
//	network/   Node, Link and Graph; per-node demand queues
//	demand/    transport demand table reader
//	builder/   Graph construction from node specs and demand rows
//	transport/ Transition, Transporter and the greedy/random policies
//	sim/       the simulation driver, options and Result
//	history/   result file writer and reader
//	metrics/   Prometheus collector observing a run
//	config/    YAML run configuration with validation
//	logging/   zap logger construction
//	cmd/haulsim command-line entry point
//
// Quick start:
//
//	g, _ := builder.FromFile(specs, "data/transport_demand.txt")
//	res, _ := sim.Run(g, sim.WithTransporters(2), sim.WithPolicy(transport.PolicyGreedy))
//	_, _ = history.WriteFile("data", sim.RunName(2, transport.PolicyGreedy), res.History)
package haulsim
