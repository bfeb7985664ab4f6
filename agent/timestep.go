package agent

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/jdangerx/cyclus/exchange"
	"github.com/jdangerx/cyclus/portfolio"
)

// RunTimestep drives one Build -> Match -> ExtractTrades cycle across
// facilities for timestep t: every facility is asked for its
// RequestPortfolio, then (once every request is known) its BidPortfolio,
// the resulting portfolios are assembled into an exchange graph, matched,
// and translated back into Trades.
//
// A facility that errors does not stop the others from being asked; every
// error encountered is collected into the returned multierror.Error so a
// caller can see the full picture of what went wrong this step. If any
// facility errored, RunTimestep does not attempt to match or extract
// trades — a timestep with an incomplete view of demand or supply is not
// trustworthy enough to clear.
func RunTimestep(facilities []Facility, t Timestep) ([]portfolio.Trade, error) {
	var errs *multierror.Error

	requests := make([]*portfolio.RequestPortfolio, 0, len(facilities))
	for _, f := range facilities {
		rp, err := f.RequestPortfolio(t)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("agent: %s: request portfolio: %w", f.ID(), err))
			continue
		}
		if rp != nil {
			requests = append(requests, rp)
		}
	}

	bids := make([]*portfolio.BidPortfolio, 0, len(facilities))
	for _, f := range facilities {
		bp, err := f.BidPortfolio(t, requests)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("agent: %s: bid portfolio: %w", f.ID(), err))
			continue
		}
		if bp != nil {
			bids = append(bids, bp)
		}
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs.ErrorOrNil()
	}

	g, err := portfolio.Build(requests, bids)
	if err != nil {
		return nil, fmt.Errorf("agent: build exchange graph for timestep %d: %w", t, err)
	}
	if err := exchange.Match(g); err != nil {
		return nil, fmt.Errorf("agent: match timestep %d: %w", t, err)
	}
	return portfolio.ExtractTrades(g), nil
}
