// Package cyclus implements a dynamic resource exchange: a bipartite
// matcher that pairs facility resource requests against bids from other
// facilities, subject to multidimensional capacity constraints.
//
// The core lives in three packages:
//
//	tolerance/ — signed-epsilon comparisons for capacity bookkeeping
//	exchange/  — Node, NodeSet, RequestSet, Arc, the capacity engine, and
//	             the greedy priority-ordered matcher
//	portfolio/ — translates caller-facing request/bid portfolios into an
//	             exchange graph and committed trades back out
//
// Everything needed to actually run a simulation sits on top of that
// core:
//
//	resource/  — the Material/Product types a trade moves
//	agent/     — the region/institution/facility hierarchy and the
//	             per-timestep request/bid/match driver
//	scenario/  — XML scenario input parsing
//	cyclog/    — structured logging
//	cmd/cyclus — the command-line driver
//
// See cmd/cyclus for a runnable entry point, or import package agent
// directly to embed the exchange in a larger simulator.
package cyclus
