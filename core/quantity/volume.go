package quantity

import "quantify/core/unit"

// Volume is a quantity stored in cubic meters
type Volume = Quantity[unit.VolumeUnit]

// FromCubicMeters constructs a Volume from cubic meters
func FromCubicMeters(v float64) Volume { return FromBase[unit.VolumeUnit](v) }

// FromLiters constructs a Volume from liters
func FromLiters(v float64) Volume { return MustFrom(v, unit.Liter) }

// FromMilliliters constructs a Volume from milliliters
func FromMilliliters(v float64) Volume { return MustFrom(v, unit.Milliliter) }

// FromCubicFeet constructs a Volume from cubic feet
func FromCubicFeet(v float64) Volume { return MustFrom(v, unit.CubicFoot) }

// FromUSGallons constructs a Volume from US liquid gallons
func FromUSGallons(v float64) Volume { return MustFrom(v, unit.USGallon) }

// FromUSQuarts constructs a Volume from US liquid quarts
func FromUSQuarts(v float64) Volume { return MustFrom(v, unit.USQuart) }

// FromUSPints constructs a Volume from US liquid pints
func FromUSPints(v float64) Volume { return MustFrom(v, unit.USPint) }

// FromUSFluidOunces constructs a Volume from US fluid ounces
func FromUSFluidOunces(v float64) Volume { return MustFrom(v, unit.USFluidOunce) }

// CubicMeters returns the magnitude in cubic meters
func CubicMeters(q Volume) float64 { return q.Base() }

// Liters returns the magnitude in liters
func Liters(q Volume) float64 { return q.MustIn(unit.Liter) }

// Milliliters returns the magnitude in milliliters
func Milliliters(q Volume) float64 { return q.MustIn(unit.Milliliter) }

// CubicFeet returns the magnitude in cubic feet
func CubicFeet(q Volume) float64 { return q.MustIn(unit.CubicFoot) }

// USGallons returns the magnitude in US liquid gallons
func USGallons(q Volume) float64 { return q.MustIn(unit.USGallon) }

// USQuarts returns the magnitude in US liquid quarts
func USQuarts(q Volume) float64 { return q.MustIn(unit.USQuart) }

// USPints returns the magnitude in US liquid pints
func USPints(q Volume) float64 { return q.MustIn(unit.USPint) }

// USFluidOunces returns the magnitude in US fluid ounces
func USFluidOunces(q Volume) float64 { return q.MustIn(unit.USFluidOunce) }
