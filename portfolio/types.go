package portfolio

import "github.com/jdangerx/cyclus/resource"

// Request is one line item in a RequestPortfolio: demand for qty units of
// Commodity, described by an exemplar resource the matcher's consumers can
// use for commodity/type compatibility checks.
type Request struct {
	ID        string
	Commodity string
	Exemplar  resource.Resource
	// Preference orders requests within a portfolio and portfolios against
	// one another when the caller builds multiple RequestPortfolios for a
	// commodity; Build itself does not sort by it — callers append requests
	// and portfolios in the order they want the matcher to visit them
	// (spec's "solution priority" is realized through construction order,
	// see package exchange's matcher doc).
	Preference float64
}

// RequestPortfolio groups requests sharing a requester and a single target
// quantity. Constraints is the rate vector applied uniformly to every arc
// leaving this portfolio's requests: it is both the per-arc unit-capacity
// coefficient on the request side and, scaled by TargetQty, the request
// NodeSet's own capacity vector (see DESIGN.md for why request-side
// capacity mirrors qty rather than being supplied independently).
type RequestPortfolio struct {
	Requester       string
	TargetQty       float64
	Requests        []Request
	Constraints     []float64
	MutualExclusion bool

	seen map[string]bool
}

// NewRequestPortfolio creates an empty portfolio for requester, bounded by
// targetQty and constrained by the given rate vector.
func NewRequestPortfolio(requester string, targetQty float64, constraints []float64) *RequestPortfolio {
	return &RequestPortfolio{
		Requester:   requester,
		TargetQty:   targetQty,
		Constraints: append([]float64(nil), constraints...),
		seen:        make(map[string]bool),
	}
}

// AddRequest appends a request with the given id (must be unique within
// this portfolio), commodity, exemplar resource, and preference.
func (rp *RequestPortfolio) AddRequest(id, commodity string, exemplar resource.Resource, preference float64) error {
	if rp.seen == nil {
		rp.seen = make(map[string]bool)
	}
	if rp.seen[id] {
		return &DuplicateRequestIDError{ID: id}
	}
	rp.seen[id] = true
	rp.Requests = append(rp.Requests, Request{ID: id, Commodity: commodity, Exemplar: exemplar, Preference: preference})
	return nil
}

// Bid is one line item in a BidPortfolio: an offer of Offered against the
// request named by RequestRef.
type Bid struct {
	RequestRef string
	Offered    resource.Resource
}

// Converter maps a resource to the quantity of one constraint dimension it
// consumes per unit traded. It must be pure and return a non-negative
// value.
type Converter func(resource.Resource) float64

// CapacityConstraint pairs a bid-side capacity budget with the converter
// that measures how much of it a candidate resource consumes.
type CapacityConstraint struct {
	Capacity  float64
	Converter Converter
}

// BidPortfolio groups bids from one bidder under a shared set of capacity
// constraints. Bids are added incrementally via AddBid, which enforces the
// portfolio's two invariants: every bid comes from the same bidder, and no
// request is referenced twice within the portfolio.
type BidPortfolio struct {
	Bidder      string
	Constraints []CapacityConstraint

	bidsByRequest map[string]Bid
	order         []string
}

// NewBidPortfolio creates an empty portfolio constrained by the given
// capacity constraints. The bidder identity is established by the first
// AddBid call.
func NewBidPortfolio(constraints []CapacityConstraint) *BidPortfolio {
	return &BidPortfolio{
		Constraints:   append([]CapacityConstraint(nil), constraints...),
		bidsByRequest: make(map[string]Bid),
	}
}

// AddBid records a bid from bidder against requestRef, offering offered.
// It returns a CrossBidderError if bidder differs from the bidder already
// established on this portfolio, or a DuplicateRequestError if requestRef
// was already bid on within this portfolio.
func (bp *BidPortfolio) AddBid(bidder, requestRef string, offered resource.Resource) error {
	if bp.Bidder == "" {
		bp.Bidder = bidder
	} else if bp.Bidder != bidder {
		return &CrossBidderError{Established: bp.Bidder, Got: bidder}
	}
	if _, exists := bp.bidsByRequest[requestRef]; exists {
		return &DuplicateRequestError{RequestRef: requestRef}
	}
	bp.bidsByRequest[requestRef] = Bid{RequestRef: requestRef, Offered: offered}
	bp.order = append(bp.order, requestRef)
	return nil
}

// Bids returns the portfolio's bids in the order they were added.
func (bp *BidPortfolio) Bids() []Bid {
	out := make([]Bid, 0, len(bp.order))
	for _, ref := range bp.order {
		out = append(out, bp.bidsByRequest[ref])
	}
	return out
}

// Trade is the record package portfolio emits for each committed match:
// who requested, who bid, what commodity, and how much.
type Trade struct {
	Requester string
	Bidder    string
	Commodity string
	Qty       float64
}
