package scenario

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Load reads and validates the scenario document at path. It rejects the
// legacy solution_order commodity schema outright rather than translating
// it (spec.md §9's Open Question), and aggregates every validation
// failure it finds — a scenario with three agents naming unknown
// prototypes reports all three, not just the first. Prototype and recipe
// declarations themselves are not checked.
func Load(path string) (*Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var sim Simulation
	if err := xml.Unmarshal(data, &sim); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	if err := validate(&sim); err != nil {
		return nil, fmt.Errorf("scenario: validate %s: %w", path, err)
	}
	return &sim, nil
}

func validate(sim *Simulation) error {
	var errs *multierror.Error

	if sim.Control.Duration <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("control.duration must be positive, got %d", sim.Control.Duration))
	}

	for _, c := range sim.Commodities {
		if c.SolutionOrder != nil {
			errs = multierror.Append(errs, fmt.Errorf(
				"commodity %q uses the legacy solution_order field; this schema requires solution_priority", c.Name))
		}
	}

	known := make(map[string]bool, len(sim.Prototypes))
	for _, p := range sim.Prototypes {
		known[p.Name] = true
	}
	seenAgent := make(map[string]bool, len(sim.Agents))
	for _, a := range sim.Agents {
		if a.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("agent entry missing name"))
			continue
		}
		if seenAgent[a.Name] {
			errs = multierror.Append(errs, fmt.Errorf("agent %q declared more than once", a.Name))
		}
		seenAgent[a.Name] = true
		if !known[a.Prototype] {
			errs = multierror.Append(errs, fmt.Errorf("agent %q references unknown prototype %q", a.Name, a.Prototype))
		}
	}
	for _, a := range sim.Agents {
		if a.Parent != "" && !seenAgent[a.Parent] {
			errs = multierror.Append(errs, fmt.Errorf("agent %q references unknown parent %q", a.Name, a.Parent))
		}
	}

	return errs.ErrorOrNil()
}

// Priorities returns each commodity's solution priority keyed by name. No
// caller in this module passes it on to the matcher.
func (s *Simulation) Priorities() map[string]float64 {
	out := make(map[string]float64, len(s.Commodities))
	for _, c := range s.Commodities {
		out[c.Name] = c.SolutionPriority
	}
	return out
}
