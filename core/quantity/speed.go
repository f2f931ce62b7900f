package quantity

import "quantify/core/unit"

// Speed is a quantity stored in meters per second
type Speed = Quantity[unit.SpeedUnit]

// FromMetersPerSecond constructs a Speed from meters per second
func FromMetersPerSecond(v float64) Speed { return FromBase[unit.SpeedUnit](v) }

// FromKilometersPerHour constructs a Speed from kilometers per hour
func FromKilometersPerHour(v float64) Speed { return MustFrom(v, unit.KilometerPerHour) }

// FromMilesPerHour constructs a Speed from miles per hour
func FromMilesPerHour(v float64) Speed { return MustFrom(v, unit.MilePerHour) }

// FromKnots constructs a Speed from knots
func FromKnots(v float64) Speed { return MustFrom(v, unit.Knot) }

// FromFeetPerSecond constructs a Speed from feet per second
func FromFeetPerSecond(v float64) Speed { return MustFrom(v, unit.FootPerSecond) }

// MetersPerSecond returns the magnitude in meters per second
func MetersPerSecond(q Speed) float64 { return q.Base() }

// KilometersPerHour returns the magnitude in kilometers per hour
func KilometersPerHour(q Speed) float64 { return q.MustIn(unit.KilometerPerHour) }

// MilesPerHour returns the magnitude in miles per hour
func MilesPerHour(q Speed) float64 { return q.MustIn(unit.MilePerHour) }

// Knots returns the magnitude in knots
func Knots(q Speed) float64 { return q.MustIn(unit.Knot) }

// FeetPerSecond returns the magnitude in feet per second
func FeetPerSecond(q Speed) float64 { return q.MustIn(unit.FootPerSecond) }
