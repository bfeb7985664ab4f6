// SPDX-License-Identifier: MIT

// Package portfolio translates between the domain-facing bid/request
// schema facilities submit each timestep and the exchange package's graph
// primitives.
//
// Build (the graph construction façade) turns a set of RequestPortfolios
// and BidPortfolios into an *exchange.ExchangeGraph: one exchange.RequestSet
// per RequestPortfolio, one exchange.NodeSet per BidPortfolio, one
// exchange.Node per request/bid, and one exchange.Arc per admissible
// (request, bid) pairing. ExtractTrades is the inverse: it walks an
// exchange.ExchangeGraph's match log after exchange.Match has run and
// emits the Trade records the caller actually wanted.
package portfolio
