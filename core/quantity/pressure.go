package quantity

import "quantify/core/unit"

// Pressure is a quantity stored in pascals
type Pressure = Quantity[unit.PressureUnit]

// FromPascals constructs a Pressure from pascals
func FromPascals(v float64) Pressure { return FromBase[unit.PressureUnit](v) }

// FromKilopascals constructs a Pressure from kilopascals
func FromKilopascals(v float64) Pressure { return MustFrom(v, unit.Kilopascal) }

// FromMegapascals constructs a Pressure from megapascals
func FromMegapascals(v float64) Pressure { return MustFrom(v, unit.Megapascal) }

// FromBars constructs a Pressure from bars
func FromBars(v float64) Pressure { return MustFrom(v, unit.Bar) }

// FromMillibars constructs a Pressure from millibars
func FromMillibars(v float64) Pressure { return MustFrom(v, unit.Millibar) }

// FromAtmospheres constructs a Pressure from standard atmospheres
func FromAtmospheres(v float64) Pressure { return MustFrom(v, unit.Atmosphere) }

// FromPoundsPerSquareInch constructs a Pressure from psi
func FromPoundsPerSquareInch(v float64) Pressure { return MustFrom(v, unit.PoundPerSquareInch) }

// FromMillimetersOfMercury constructs a Pressure from mmHg
func FromMillimetersOfMercury(v float64) Pressure { return MustFrom(v, unit.MillimeterOfMercury) }

// Pascals returns the magnitude in pascals
func Pascals(q Pressure) float64 { return q.Base() }

// Kilopascals returns the magnitude in kilopascals
func Kilopascals(q Pressure) float64 { return q.MustIn(unit.Kilopascal) }

// Megapascals returns the magnitude in megapascals
func Megapascals(q Pressure) float64 { return q.MustIn(unit.Megapascal) }

// Bars returns the magnitude in bars
func Bars(q Pressure) float64 { return q.MustIn(unit.Bar) }

// Millibars returns the magnitude in millibars
func Millibars(q Pressure) float64 { return q.MustIn(unit.Millibar) }

// Atmospheres returns the magnitude in standard atmospheres
func Atmospheres(q Pressure) float64 { return q.MustIn(unit.Atmosphere) }

// PoundsPerSquareInch returns the magnitude in psi
func PoundsPerSquareInch(q Pressure) float64 { return q.MustIn(unit.PoundPerSquareInch) }

// MillimetersOfMercury returns the magnitude in mmHg
func MillimetersOfMercury(q Pressure) float64 { return q.MustIn(unit.MillimeterOfMercury) }
