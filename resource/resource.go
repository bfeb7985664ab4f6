// Package resource defines the Material and Product types that flow
// through a trade. The Dynamic Resource Exchange core (package exchange)
// never inspects a resource beyond its Quantity — everything else here
// exists for the agents and converters built on top of it.
package resource

import "fmt"

// Quantity is a non-negative amount of a resource, in whatever unit the
// owning commodity uses (kg, SWU, opaque units). It refuses to go
// negative: Sub and Split return an error instead of silently clamping or
// panicking, since a negative resource quantity is always a caller bug.
type Quantity float64

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return q + other
}

// Sub returns q - other. It errors if the result would be negative.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	r := q - other
	if r < 0 {
		return 0, fmt.Errorf("resource: cannot subtract %v from %v: negative result", other, q)
	}
	return r, nil
}

// Split divides q into a head of size want and a tail of the remainder.
// It errors if want exceeds q.
func (q Quantity) Split(want Quantity) (head, tail Quantity, err error) {
	tail, err = q.Sub(want)
	if err != nil {
		return 0, 0, fmt.Errorf("resource: cannot split %v off of %v: %w", want, q, err)
	}
	return want, tail, nil
}

// Resource is the minimal interface the exchange core and its translation
// layer consume: something that carries a quantity. Material and Product
// both implement it.
type Resource interface {
	Qty() Quantity
}

// Material is a resource with isotopic composition: a map from nuclide ID
// (e.g. 922350 for U-235, ZZZAAA0 form) to mass fraction, plus a total
// quantity. Composition fractions are expected to sum to ~1 but this
// package does not enforce that, and package scenario parses recipe
// declarations without checking their fractions either.
type Material struct {
	Quantity    Quantity
	Composition map[int]float64 // nuclide id -> mass fraction
}

// NewMaterial constructs a Material with the given quantity and a copy of
// composition.
func NewMaterial(qty Quantity, composition map[int]float64) *Material {
	comp := make(map[int]float64, len(composition))
	for id, frac := range composition {
		comp[id] = frac
	}
	return &Material{Quantity: qty, Composition: comp}
}

// Qty implements Resource.
func (m *Material) Qty() Quantity { return m.Quantity }

// Product is an opaque resource: a fuel assembly, a cask, anything whose
// only quantity-bearing property the exchange cares about is how much of
// it there is.
type Product struct {
	Quantity Quantity
}

// NewProduct constructs a Product with the given quantity.
func NewProduct(qty Quantity) *Product {
	return &Product{Quantity: qty}
}

// Qty implements Resource.
func (p *Product) Qty() Quantity { return p.Quantity }
