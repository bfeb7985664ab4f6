package portfolio

import "github.com/jdangerx/cyclus/exchange"

// nodeInfo is the opaque payload Build attaches to every exchange.Node so
// ExtractTrades can recover which requester/bidder/commodity a match
// belongs to without re-walking the portfolios.
type nodeInfo struct {
	requester string
	bidder    string
	commodity string
}

// Build constructs an *exchange.ExchangeGraph from a caller's
// RequestPortfolios and BidPortfolios (spec §4.7, the graph construction
// façade):
//
//   - Each RequestPortfolio becomes one exchange.RequestSet; its Qty is the
//     portfolio's TargetQty; each Request becomes one Node in that set.
//   - Each BidPortfolio becomes one supply exchange.NodeSet, one capacity
//     dimension per CapacityConstraint; each Bid becomes one Node.
//   - Each Bid is paired with the Request named by its RequestRef into one
//     exchange.Arc. A RequestRef with no matching Request anywhere in
//     requestPortfolios is a construction error (UnknownRequestError).
//   - The request-side arc coefficients are the owning RequestPortfolio's
//     Constraints rate vector, applied unchanged to every arc leaving that
//     portfolio. The bid-side coefficients are each CapacityConstraint's
//     Converter applied to the bid's offered resource.
//
// Insertion order is preserved throughout: request-sets, their member
// nodes, and arcs are all added to the graph in the order the caller
// supplied them, which is the order exchange.Match will visit them in.
func Build(requestPortfolios []*RequestPortfolio, bidPortfolios []*BidPortfolio) (*exchange.ExchangeGraph, error) {
	g := exchange.NewExchangeGraph()

	type requestEntry struct {
		node        *exchange.Node
		constraints []float64
	}
	requests := make(map[string]requestEntry)

	for _, rp := range requestPortfolios {
		capacities := make([]float64, len(rp.Constraints))
		for i, c := range rp.Constraints {
			capacities[i] = rp.TargetQty * c
		}
		rs := exchange.NewRequestSet(rp.Requester, capacities, rp.TargetQty)
		g.AddRequestSet(rs)

		for _, req := range rp.Requests {
			if _, dup := requests[req.ID]; dup {
				return nil, &DuplicateRequestIDError{ID: req.ID}
			}
			n := exchange.NewNode(req.ID)
			n.SetTag(&nodeInfo{requester: rp.Requester, commodity: req.Commodity})
			if err := rs.Add(n); err != nil {
				return nil, err
			}
			requests[req.ID] = requestEntry{node: n, constraints: rp.Constraints}
		}
	}

	for _, bp := range bidPortfolios {
		capacities := make([]float64, len(bp.Constraints))
		for i, c := range bp.Constraints {
			capacities[i] = c.Capacity
		}
		ns := exchange.NewNodeSet(bp.Bidder, capacities)
		g.AddSupplySet(ns)

		for _, bid := range bp.Bids() {
			entry, ok := requests[bid.RequestRef]
			if !ok {
				return nil, &UnknownRequestError{RequestRef: bid.RequestRef}
			}

			bidNode := exchange.NewNode(bp.Bidder + ":" + bid.RequestRef)
			bidNode.SetTag(&nodeInfo{bidder: bp.Bidder})
			if err := ns.Add(bidNode); err != nil {
				return nil, err
			}

			arc := exchange.NewArc(entry.node, bidNode)
			if err := entry.node.SetUnitCapacity(arc, entry.constraints); err != nil {
				return nil, err
			}
			bidCoefs := make([]float64, len(bp.Constraints))
			for i, c := range bp.Constraints {
				bidCoefs[i] = c.Converter(bid.Offered)
			}
			if err := bidNode.SetUnitCapacity(arc, bidCoefs); err != nil {
				return nil, err
			}
			g.AddArc(arc)
		}
	}

	return g, nil
}
