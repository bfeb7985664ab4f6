package agent

import "github.com/jdangerx/cyclus/portfolio"

// Timestep identifies one discrete simulation step. Facilities see it as
// an opaque ordinal; only package agent's driver and the cmd/cyclus run
// loop (which counts up to the scenario's duration) interpret it further.
type Timestep int

// Facility is the behavioral contract every agent registered in a
// Registry's facility tier must implement to participate in exchanges.
// A facility that has nothing to request or bid this timestep returns a
// nil portfolio rather than an error.
type Facility interface {
	// ID returns the facility's registry identity.
	ID() string

	// RequestPortfolio returns the facility's demand for timestep t, or
	// nil if it has none this step.
	RequestPortfolio(t Timestep) (*portfolio.RequestPortfolio, error)

	// BidPortfolio returns the facility's supply offers for timestep t
	// against the requests every facility submitted this step, or nil if
	// it has nothing to offer.
	BidPortfolio(t Timestep, requests []*portfolio.RequestPortfolio) (*portfolio.BidPortfolio, error)
}
