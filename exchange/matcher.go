package exchange

import (
	"math"

	"github.com/jdangerx/cyclus/tolerance"
)

// Match runs the greedy, priority-ordered matcher over g, appending every
// committed trade to g's match log.
//
// Ordering: request-sets are visited in the order they were added to g.
// Within a request-set, members are visited in the order they were added
// to it. For each request node, its incident arcs are visited in the
// order AddArc recorded them. Callers encode preference by the order they
// build the graph in — there is no separate priority field consulted
// here (spec §9: "the solution priority/order surfaced in the external
// schema" is realized entirely through construction order).
//
// Per arc: if the arc's residual capacity or the request-set's remaining
// quantity is at or below tolerance, the arc is skipped. Otherwise the
// matcher commits min(capacity, remaining), updates both endpoints'
// capacities, decrements the request-set's remaining quantity, and
// appends the match.
//
// A request-set finishes — its remaining loop body becomes a no-op — once
// its remaining quantity is exhausted within tolerance; under-fulfillment
// from exhausted arc capacity is legal and silent. Match returns an error
// only if the graph is malformed: a node queried without a containing set
// surfaces as a StateError from the capacity engine.
func Match(g *ExchangeGraph) error {
	for _, rs := range g.requestSets {
		if !tolerance.Pos(rs.remaining) {
			continue
		}
		for _, n := range rs.Members() {
			if !tolerance.Pos(rs.remaining) {
				break
			}
			for _, a := range g.ArcsOf(n) {
				if a.U != n {
					// n sits on the bid side of this arc; a request
					// node only drives matching through its own
					// request-side arcs.
					continue
				}
				if !tolerance.Pos(rs.remaining) {
					break
				}
				cap, err := ArcCapacity(a)
				if err != nil {
					return err
				}
				if !tolerance.Pos(cap) {
					continue
				}
				q := math.Min(cap, rs.remaining)
				if err := UpdateArcCapacity(a, q); err != nil {
					return err
				}
				rs.remaining -= q
				g.AddMatch(a, q)
			}
		}
	}
	return nil
}
