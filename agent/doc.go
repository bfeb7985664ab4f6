// SPDX-License-Identifier: MIT

// Package agent builds the region/institution/facility containment
// hierarchy and drives the per-timestep request/bid/match cycle through
// package portfolio and package exchange.
//
// Registry stores the hierarchy as parent-to-child adjacency, walks it
// breadth-first to enumerate agents top-down, and walks it depth-first to
// enumerate a region's subtree for decommissioning. RunTimestep gathers
// portfolios from every Facility, hands them to portfolio.Build and
// exchange.Match, and returns the resulting trades.
package agent
