// SPDX-License-Identifier: MIT

// Package exchange implements the Dynamic Resource Exchange: a typed
// bipartite graph of request nodes and bid nodes joined by capacity-bearing
// arcs, the capacity algebra over those arcs, and the greedy,
// priority-ordered matcher that turns the graph into a timestep's trade
// schedule.
//
// The package is organized bottom-up:
//
//	node.go       — Node and Arc: graph topology, per-endpoint unit
//	                capacity coefficients.
//	nodeset.go    — NodeSet: a shared pool of constraint capacities.
//	requestset.go — RequestSet: a NodeSet bounded by a required quantity.
//	capacity.go   — the capacity engine: residual-capacity queries and
//	                updates across every constraint dimension of a node.
//	graph.go      — ExchangeGraph: request sets, supply sets, the
//	                node→arcs index, and the append-only match log.
//	matcher.go    — Match: the priority-ordered constrained assignment.
//
// Nothing in this package is safe for concurrent use. Exactly one matcher
// invocation is in flight per timestep (the caller's problem to enforce);
// the graph must not be shared across timesteps.
package exchange
