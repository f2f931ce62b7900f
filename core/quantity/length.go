package quantity

import "quantify/core/unit"

// Length is a quantity stored in meters.
// Each dimension gets an alias like this plus FromX/X helpers over the
// generic engine; the engine itself stays dimension-agnostic.
type Length = Quantity[unit.LengthUnit]

// FromMeters constructs a Length from meters
func FromMeters(v float64) Length { return FromBase[unit.LengthUnit](v) }

// FromKilometers constructs a Length from kilometers
func FromKilometers(v float64) Length { return MustFrom(v, unit.Kilometer) }

// FromCentimeters constructs a Length from centimeters
func FromCentimeters(v float64) Length { return MustFrom(v, unit.Centimeter) }

// FromMillimeters constructs a Length from millimeters
func FromMillimeters(v float64) Length { return MustFrom(v, unit.Millimeter) }

// FromMicrometers constructs a Length from micrometers
func FromMicrometers(v float64) Length { return MustFrom(v, unit.Micrometer) }

// FromMiles constructs a Length from miles
func FromMiles(v float64) Length { return MustFrom(v, unit.Mile) }

// FromYards constructs a Length from yards
func FromYards(v float64) Length { return MustFrom(v, unit.Yard) }

// FromFeet constructs a Length from feet
func FromFeet(v float64) Length { return MustFrom(v, unit.Foot) }

// FromInches constructs a Length from inches
func FromInches(v float64) Length { return MustFrom(v, unit.Inch) }

// FromNauticalMiles constructs a Length from nautical miles
func FromNauticalMiles(v float64) Length { return MustFrom(v, unit.NauticalMile) }

// Meters returns the magnitude in meters
func Meters(q Length) float64 { return q.Base() }

// Kilometers returns the magnitude in kilometers
func Kilometers(q Length) float64 { return q.MustIn(unit.Kilometer) }

// Centimeters returns the magnitude in centimeters
func Centimeters(q Length) float64 { return q.MustIn(unit.Centimeter) }

// Millimeters returns the magnitude in millimeters
func Millimeters(q Length) float64 { return q.MustIn(unit.Millimeter) }

// Micrometers returns the magnitude in micrometers
func Micrometers(q Length) float64 { return q.MustIn(unit.Micrometer) }

// Miles returns the magnitude in miles
func Miles(q Length) float64 { return q.MustIn(unit.Mile) }

// Yards returns the magnitude in yards
func Yards(q Length) float64 { return q.MustIn(unit.Yard) }

// Feet returns the magnitude in feet
func Feet(q Length) float64 { return q.MustIn(unit.Foot) }

// Inches returns the magnitude in inches
func Inches(q Length) float64 { return q.MustIn(unit.Inch) }

// NauticalMiles returns the magnitude in nautical miles
func NauticalMiles(q Length) float64 { return q.MustIn(unit.NauticalMile) }
