package quantity

import "quantify/core/unit"

// Area is a quantity stored in square meters
type Area = Quantity[unit.AreaUnit]

// FromSquareMeters constructs an Area from square meters
func FromSquareMeters(v float64) Area { return FromBase[unit.AreaUnit](v) }

// FromSquareKilometers constructs an Area from square kilometers
func FromSquareKilometers(v float64) Area { return MustFrom(v, unit.SquareKilometer) }

// FromSquareCentimeters constructs an Area from square centimeters
func FromSquareCentimeters(v float64) Area { return MustFrom(v, unit.SquareCentimeter) }

// FromHectares constructs an Area from hectares
func FromHectares(v float64) Area { return MustFrom(v, unit.Hectare) }

// FromAcres constructs an Area from acres
func FromAcres(v float64) Area { return MustFrom(v, unit.Acre) }

// FromSquareMiles constructs an Area from square miles
func FromSquareMiles(v float64) Area { return MustFrom(v, unit.SquareMile) }

// FromSquareFeet constructs an Area from square feet
func FromSquareFeet(v float64) Area { return MustFrom(v, unit.SquareFoot) }

// FromSquareInches constructs an Area from square inches
func FromSquareInches(v float64) Area { return MustFrom(v, unit.SquareInch) }

// SquareMeters returns the magnitude in square meters
func SquareMeters(q Area) float64 { return q.Base() }

// SquareKilometers returns the magnitude in square kilometers
func SquareKilometers(q Area) float64 { return q.MustIn(unit.SquareKilometer) }

// SquareCentimeters returns the magnitude in square centimeters
func SquareCentimeters(q Area) float64 { return q.MustIn(unit.SquareCentimeter) }

// Hectares returns the magnitude in hectares
func Hectares(q Area) float64 { return q.MustIn(unit.Hectare) }

// Acres returns the magnitude in acres
func Acres(q Area) float64 { return q.MustIn(unit.Acre) }

// SquareMiles returns the magnitude in square miles
func SquareMiles(q Area) float64 { return q.MustIn(unit.SquareMile) }

// SquareFeet returns the magnitude in square feet
func SquareFeet(q Area) float64 { return q.MustIn(unit.SquareFoot) }

// SquareInches returns the magnitude in square inches
func SquareInches(q Area) float64 { return q.MustIn(unit.SquareInch) }
