// Package quantity - generic strongly-typed physical quantities.
// A Quantity wraps a single float64 magnitude stored in the base unit of
// its dimension (meters for length, kilograms for mass, ...); every other
// unit is a view computed on demand. Values are immutable and safe to share.
package quantity

import (
	"math"

	"quantify/core/unit"
)

// Quantity is an immutable scalar in the base unit of U's dimension.
// The zero value is the additive identity.
type Quantity[U unit.Unit] struct {
	base float64
}

// FromBase constructs a quantity directly from a base-unit magnitude
func FromBase[U unit.Unit](v float64) Quantity[U] {
	return Quantity[U]{base: v}
}

// Zero returns the zero quantity
func Zero[U unit.Unit]() Quantity[U] {
	return Quantity[U]{}
}

// From constructs a quantity from a magnitude expressed in u, projecting it
// into the base unit via u's affine factor. The Undefined sentinel is
// rejected.
func From[U unit.Unit](v float64, u U) (Quantity[U], error) {
	f, err := unit.FactorFor(u)
	if err != nil {
		return Quantity[U]{}, err
	}
	return Quantity[U]{base: v*f.Scale + f.Offset}, nil
}

// MustFrom is From for units known valid at the call site; it panics on an
// undefined or out-of-range unit, which is a programming error there.
func MustFrom[U unit.Unit](v float64, u U) Quantity[U] {
	q, err := From(v, u)
	if err != nil {
		panic(err)
	}
	return q
}

// In returns the magnitude expressed in u, the inverse of From
func (q Quantity[U]) In(u U) (float64, error) {
	f, err := unit.FactorFor(u)
	if err != nil {
		return 0, err
	}
	return (q.base - f.Offset) / f.Scale, nil
}

// MustIn is In for units known valid at the call site
func (q Quantity[U]) MustIn(u U) float64 {
	v, err := q.In(u)
	if err != nil {
		panic(err)
	}
	return v
}

// Base returns the magnitude in the dimension's base unit
func (q Quantity[U]) Base() float64 {
	return q.base
}

// Add returns q + o
func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] {
	return Quantity[U]{base: q.base + o.base}
}

// Sub returns q - o
func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] {
	return Quantity[U]{base: q.base - o.base}
}

// Neg returns -q
func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{base: -q.base}
}

// Abs returns the magnitude-wise absolute value
func (q Quantity[U]) Abs() Quantity[U] {
	return Quantity[U]{base: math.Abs(q.base)}
}

// MulScalar returns q scaled by s
func (q Quantity[U]) MulScalar(s float64) Quantity[U] {
	return Quantity[U]{base: q.base * s}
}

// DivScalar returns q divided by s. A zero divisor follows IEEE float
// semantics and yields an infinite or NaN magnitude; no error is raised.
func (q Quantity[U]) DivScalar(s float64) Quantity[U] {
	return Quantity[U]{base: q.base / s}
}

// Ratio divides two quantities of the same dimension, yielding a
// dimensionless float64. Dividing by a zero-magnitude quantity yields
// IEEE infinity or NaN per float semantics; this is intentional.
func (q Quantity[U]) Ratio(o Quantity[U]) float64 {
	return q.base / o.base
}

// Cmp compares base-unit magnitudes: -1 if q < o, 0 if equal, 1 if q > o
func (q Quantity[U]) Cmp(o Quantity[U]) int {
	switch {
	case q.base < o.base:
		return -1
	case q.base > o.base:
		return 1
	default:
		return 0
	}
}

// Equal reports exact base-unit magnitude equality. Floats are compared
// without an epsilon, so quantities built through different conversion
// paths may differ in the last bits; use ApproxEqual where that matters.
func (q Quantity[U]) Equal(o Quantity[U]) bool {
	return q.base == o.base
}

// Less reports whether q's base-unit magnitude is less than o's
func (q Quantity[U]) Less(o Quantity[U]) bool {
	return q.base < o.base
}

// ApproxEqual reports equality within a tolerance quantity
func (q Quantity[U]) ApproxEqual(o, tolerance Quantity[U]) bool {
	return math.Abs(q.base-o.base) <= math.Abs(tolerance.base)
}

// Min returns the smaller of a and b
func Min[U unit.Unit](a, b Quantity[U]) Quantity[U] {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b
func Max[U unit.Unit](a, b Quantity[U]) Quantity[U] {
	if a.Less(b) {
		return b
	}
	return a
}

// Sum folds quantities by addition; the empty sum is the zero quantity
func Sum[U unit.Unit](qs ...Quantity[U]) Quantity[U] {
	var total Quantity[U]
	for _, q := range qs {
		total = total.Add(q)
	}
	return total
}
