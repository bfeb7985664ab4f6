package portfolio

import "github.com/jdangerx/cyclus/exchange"

// ExtractTrades walks g's match log (populated by exchange.Match) and
// emits the Trade each committed match represents, in match order. Nodes
// not tagged by Build (nil or wrong-typed Tag) are skipped rather than
// panicking, so ExtractTrades stays safe to call against graphs built by
// hand, e.g. in tests.
func ExtractTrades(g *exchange.ExchangeGraph) []Trade {
	matches := g.Matches()
	trades := make([]Trade, 0, len(matches))
	for _, m := range matches {
		reqInfo, ok := m.Arc.U.Tag().(*nodeInfo)
		if !ok {
			continue
		}
		bidInfo, ok := m.Arc.V.Tag().(*nodeInfo)
		if !ok {
			continue
		}
		trades = append(trades, Trade{
			Requester: reqInfo.requester,
			Bidder:    bidInfo.bidder,
			Commodity: reqInfo.commodity,
			Qty:       m.Qty,
		})
	}
	return trades
}
