package exchange

// Match is a committed trade quantity: qty units of flow assigned to arc,
// recorded at the moment the matcher confirmed every capacity bound held.
type Match struct {
	Arc Arc
	Qty float64
}

// ExchangeGraph is the bipartite structure the matcher consumes: the
// request-side NodeSets (as RequestSets), the bid-side NodeSets, a
// node→incident-arcs index, and an append-only match log.
//
// Insertion order is part of the observable contract: AddRequestSet,
// AddSupplySet, and AddArc all preserve the order they were called in, and
// the matcher visits request-sets, their member nodes, and each node's
// incident arcs in exactly that order (spec §4.6, §9 "ordering as
// contract"). A map keyed by node identity would not preserve this, so the
// node→arcs index is a slice-valued map indexed by pointer, appended to in
// call order — never iterated by range over the map's own key order.
type ExchangeGraph struct {
	requestSets []*RequestSet
	supplySets  []*NodeSet
	arcsOf      map[*Node][]Arc
	matches     []Match
}

// NewExchangeGraph returns an empty graph ready for construction.
func NewExchangeGraph() *ExchangeGraph {
	return &ExchangeGraph{arcsOf: make(map[*Node][]Arc)}
}

// AddRequestSet appends rs to the graph's request-set list.
func (g *ExchangeGraph) AddRequestSet(rs *RequestSet) {
	g.requestSets = append(g.requestSets, rs)
}

// AddSupplySet appends ns to the graph's supply-set list.
func (g *ExchangeGraph) AddSupplySet(ns *NodeSet) {
	g.supplySets = append(g.supplySets, ns)
}

// AddArc indexes a under both of its endpoints, in insertion order. It does
// not validate the arc's endpoints belong to any set registered on this
// graph — that is the construction façade's job.
func (g *ExchangeGraph) AddArc(a Arc) {
	g.arcsOf[a.U] = append(g.arcsOf[a.U], a)
	g.arcsOf[a.V] = append(g.arcsOf[a.V], a)
}

// AddMatch appends (a, qty) to the match log. It does not itself update
// capacities — the matcher calls UpdateArcCapacity before logging a match.
func (g *ExchangeGraph) AddMatch(a Arc, qty float64) {
	g.matches = append(g.matches, Match{Arc: a, Qty: qty})
}

// ArcsOf returns the arcs incident to n, in the order they were added to
// the graph.
func (g *ExchangeGraph) ArcsOf(n *Node) []Arc {
	arcs := g.arcsOf[n]
	cp := make([]Arc, len(arcs))
	copy(cp, arcs)
	return cp
}

// RequestSets returns the graph's request sets in insertion order.
func (g *ExchangeGraph) RequestSets() []*RequestSet {
	cp := make([]*RequestSet, len(g.requestSets))
	copy(cp, g.requestSets)
	return cp
}

// SupplySets returns the graph's supply NodeSets in insertion order.
func (g *ExchangeGraph) SupplySets() []*NodeSet {
	cp := make([]*NodeSet, len(g.supplySets))
	copy(cp, g.supplySets)
	return cp
}

// Matches returns the match log accumulated so far, in the order matches
// were appended.
func (g *ExchangeGraph) Matches() []Match {
	cp := make([]Match, len(g.matches))
	copy(cp, g.matches)
	return cp
}
