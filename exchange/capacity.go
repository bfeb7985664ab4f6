package exchange

import (
	"math"

	"github.com/jdangerx/cyclus/tolerance"
)

// Capacity returns the flow node n can still accept on arc a given its
// owning set's current capacity vector and n's unit-capacity coefficients
// for a.
//
//   - If n has no set, Capacity returns a StateError.
//   - If n's set has an empty capacity vector, there is no constraint on
//     this side and Capacity returns +Inf.
//   - Otherwise Capacity is min_i(C_i / u_i) over n's coefficients u, where
//     a zero coefficient contributes +Inf to the minimum (that dimension
//     places no bound on this arc).
//
// Each dimension is an independent physical budget; unit coefficients are
// rates (budget consumed per unit flow), so the bound on this arc is
// whichever budget-over-rate ratio is tightest.
func Capacity(n *Node, a Arc) (float64, error) {
	if n.set == nil {
		return 0, newStateError("Capacity", n, "node has no containing set")
	}
	caps := n.set.capacities
	if len(caps) == 0 {
		return math.Inf(1), nil
	}
	min := math.Inf(1)
	for i, c := range caps {
		u := n.coefAt(a, i)
		var ratio float64
		if u == 0 {
			ratio = math.Inf(1)
		} else {
			ratio = c / u
		}
		if ratio < min {
			min = ratio
		}
	}
	return min, nil
}

// ArcCapacity returns the flow arc a can still carry given both endpoints:
// min(Capacity(a.U, a), Capacity(a.V, a)).
func ArcCapacity(a Arc) (float64, error) {
	cu, err := Capacity(a.U, a)
	if err != nil {
		return 0, err
	}
	cv, err := Capacity(a.V, a)
	if err != nil {
		return 0, err
	}
	if cu < cv {
		return cu, nil
	}
	return cv, nil
}

// UpdateCapacity consumes qty units of flow on arc a from node n's side,
// subtracting u_i*qty from each dimension i of n's owning set's capacity
// vector. qty must be non-negative (a ValueError otherwise). If any
// resulting dimension would fall strictly below zero (beyond tolerance),
// the whole update is rejected with a ValueError and nothing is written —
// callers size qty to fit within Capacity(n, a) before calling this, so a
// ValueError here indicates the caller's sizing was wrong, not a
// recoverable runtime condition.
func UpdateCapacity(n *Node, a Arc, qty float64) error {
	if qty < 0 {
		return newValueError("UpdateCapacity", "negative quantity")
	}
	if n.set == nil {
		return newStateError("UpdateCapacity", n, "node has no containing set")
	}
	caps := n.set.capacities
	if len(caps) == 0 {
		return nil // unconstrained side: nothing to update
	}

	next := make([]float64, len(caps))
	for i, c := range caps {
		u := n.coefAt(a, i)
		nc := c - u*qty
		if tolerance.Neg(nc) {
			return newValueError("UpdateCapacity", "insufficient capacity")
		}
		next[i] = tolerance.Clamp(nc)
		if next[i] < 0 {
			next[i] = 0
		}
	}
	copy(caps, next)
	return nil
}

// UpdateArcCapacity applies UpdateCapacity to both endpoints of a, in order
// U then V. Either failure leaves whatever the first call already
// committed in place — the matcher only calls this with quantities already
// sized to fit ArcCapacity(a), so a failure here is a bug upstream, not a
// condition this function tries to roll back.
func UpdateArcCapacity(a Arc, qty float64) error {
	if err := UpdateCapacity(a.U, a, qty); err != nil {
		return err
	}
	return UpdateCapacity(a.V, a, qty)
}
