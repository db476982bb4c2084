// SPDX-License-Identifier: MIT

package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/haulsim/transport"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *network.Graph was passed to Run.
	ErrNilGraph = errors.New("sim: graph is nil")

	// ErrTooManyTransporters indicates more agents than nodes to place them on.
	ErrTooManyTransporters = errors.New("sim: more transporters than nodes")

	// ErrStartNode indicates an unusable start node list.
	ErrStartNode = errors.New("sim: invalid start node")
)

// Observer receives run events. Implementations must not mutate the graph.
type Observer interface {
	OnMove(m transport.Move)
	OnHalt(r *Result)
}

// Options configures a run.
type Options struct {
	Transporters int
	Policy       transport.PolicyKind
	Seed         int64
	Rand         *rand.Rand
	StartNodes   []int
	Logger       *zap.Logger
	Observers    []Observer
	RunID        string
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns a single greedy Transporter with default seed and
// a no-op logger.
func DefaultOptions() Options {
	return Options{
		Transporters: 1,
		Policy:       transport.PolicyGreedy,
		Logger:       zap.NewNop(),
	}
}

// WithTransporters sets the number of agents. Panics if n < 1.
func WithTransporters(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sim: WithTransporters(%d)", n))
	}
	return func(o *Options) { o.Transporters = n }
}

// WithPolicy selects the link-selection policy.
func WithPolicy(kind transport.PolicyKind) Option {
	return func(o *Options) { o.Policy = kind }
}

// WithSeed seeds the random policy stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the random stream directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sim: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithStartNodes fixes the start node of each agent, in agent id order.
func WithStartNodes(ids ...int) Option {
	cp := append([]int(nil), ids...)
	return func(o *Options) { o.StartNodes = cp }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver adds an Observer; observers run in registration order.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("sim: WithObserver(nil)")
	}
	return func(o *Options) { o.Observers = append(o.Observers, obs) }
}

// WithRunID sets the run identity used in logs.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// Result is the outcome of a run.
type Result struct {
	RunID        string
	Policy       transport.PolicyKind
	Transporters int
	History      []transport.Transition
	Moves        []transport.Move
	TotalCost    float64
	Rounds       int // rounds started, including the halting one
	Remaining    int // demand left when the run halted; always 0
	Loaded       int // transporters still carrying a package at halt
}

// RunName derives the result-file name of a run, e.g. "num_trans_2_greedy".
func RunName(transporters int, policy transport.PolicyKind) string {
	return fmt.Sprintf("num_trans_%d_%s", transporters, policy)
}
