package portfolio

import "fmt"

// DuplicateRequestError indicates a BidPortfolio received two bids for the
// same request reference.
type DuplicateRequestError struct {
	RequestRef string
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("portfolio: duplicate bid for request %q in the same BidPortfolio", e.RequestRef)
}

// CrossBidderError indicates a BidPortfolio received a bid from a bidder
// other than the one established by its first AddBid call.
type CrossBidderError struct {
	Established, Got string
}

func (e *CrossBidderError) Error() string {
	return fmt.Sprintf("portfolio: bid from bidder %q does not match portfolio's bidder %q", e.Got, e.Established)
}

// UnknownRequestError indicates a bid's RequestRef does not match any
// request across the RequestPortfolios handed to Build.
type UnknownRequestError struct {
	RequestRef string
}

func (e *UnknownRequestError) Error() string {
	return fmt.Sprintf("portfolio: bid references unknown request %q", e.RequestRef)
}

// DuplicateRequestIDError indicates two requests share the same ID: either
// within one RequestPortfolio (AddRequest) or across the RequestPortfolios
// passed to Build.
type DuplicateRequestIDError struct {
	ID string
}

func (e *DuplicateRequestIDError) Error() string {
	return fmt.Sprintf("portfolio: duplicate request id %q", e.ID)
}
