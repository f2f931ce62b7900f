package quantity

import "quantify/core/unit"

// Mass is a quantity stored in kilograms
type Mass = Quantity[unit.MassUnit]

// FromKilograms constructs a Mass from kilograms
func FromKilograms(v float64) Mass { return FromBase[unit.MassUnit](v) }

// FromGrams constructs a Mass from grams
func FromGrams(v float64) Mass { return MustFrom(v, unit.Gram) }

// FromMilligrams constructs a Mass from milligrams
func FromMilligrams(v float64) Mass { return MustFrom(v, unit.Milligram) }

// FromTonnes constructs a Mass from metric tonnes
func FromTonnes(v float64) Mass { return MustFrom(v, unit.Tonne) }

// FromPounds constructs a Mass from avoirdupois pounds
func FromPounds(v float64) Mass { return MustFrom(v, unit.Pound) }

// FromOunces constructs a Mass from ounces
func FromOunces(v float64) Mass { return MustFrom(v, unit.Ounce) }

// FromStones constructs a Mass from stones
func FromStones(v float64) Mass { return MustFrom(v, unit.Stone) }

// FromGrains constructs a Mass from grains
func FromGrains(v float64) Mass { return MustFrom(v, unit.Grain) }

// Kilograms returns the magnitude in kilograms
func Kilograms(q Mass) float64 { return q.Base() }

// Grams returns the magnitude in grams
func Grams(q Mass) float64 { return q.MustIn(unit.Gram) }

// Milligrams returns the magnitude in milligrams
func Milligrams(q Mass) float64 { return q.MustIn(unit.Milligram) }

// Tonnes returns the magnitude in metric tonnes
func Tonnes(q Mass) float64 { return q.MustIn(unit.Tonne) }

// Pounds returns the magnitude in avoirdupois pounds
func Pounds(q Mass) float64 { return q.MustIn(unit.Pound) }

// Ounces returns the magnitude in ounces
func Ounces(q Mass) float64 { return q.MustIn(unit.Ounce) }

// Stones returns the magnitude in stones
func Stones(q Mass) float64 { return q.MustIn(unit.Stone) }

// Grains returns the magnitude in grains
func Grains(q Mass) float64 { return q.MustIn(unit.Grain) }
