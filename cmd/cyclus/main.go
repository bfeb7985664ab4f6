// SPDX-License-Identifier: MIT

// Command cyclus is a thin driver around the exchange core: it loads a
// scenario, builds the agent hierarchy it describes, and steps the
// simulation forward, logging what happened at each timestep. It does
// not interpret archetype config or persist anything — those are left to
// whatever embeds this module as a library.
package main

import (
	"os"

	"github.com/jdangerx/cyclus/cmd/cyclus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
