package locale

import (
	"golang.org/x/text/language"

	"quantify/core/unit"
)

var russian = language.MustParse("ru")

// registerDefaults loads the builtin abbreviation data. Invariant-culture
// entries cover every unit of every dimension; culture-specific entries
// shadow them where a culture writes different symbols. The first
// abbreviation of each entry is the preferred output form.
func registerDefaults(r *Registry) {
	und := language.Und

	// length
	RegisterUnit(r, und, unit.Meter, "m")
	RegisterUnit(r, und, unit.Kilometer, "km")
	RegisterUnit(r, und, unit.Centimeter, "cm")
	RegisterUnit(r, und, unit.Millimeter, "mm")
	RegisterUnit(r, und, unit.Micrometer, "µm", "um")
	RegisterUnit(r, und, unit.Mile, "mi")
	RegisterUnit(r, und, unit.Yard, "yd")
	RegisterUnit(r, und, unit.Foot, "ft", "'")
	RegisterUnit(r, und, unit.Inch, "in", "\"")
	RegisterUnit(r, und, unit.NauticalMile, "nmi", "NM")

	// mass
	RegisterUnit(r, und, unit.Kilogram, "kg")
	RegisterUnit(r, und, unit.Gram, "g")
	RegisterUnit(r, und, unit.Milligram, "mg")
	RegisterUnit(r, und, unit.Tonne, "t")
	RegisterUnit(r, und, unit.Pound, "lb", "lbs")
	RegisterUnit(r, und, unit.Ounce, "oz")
	RegisterUnit(r, und, unit.Stone, "st")
	RegisterUnit(r, und, unit.Grain, "gr")

	// area
	RegisterUnit(r, und, unit.SquareMeter, "m²", "m^2", "sqm")
	RegisterUnit(r, und, unit.SquareKilometer, "km²", "km^2")
	RegisterUnit(r, und, unit.SquareCentimeter, "cm²", "cm^2")
	RegisterUnit(r, und, unit.Hectare, "ha")
	RegisterUnit(r, und, unit.Acre, "ac")
	RegisterUnit(r, und, unit.SquareMile, "mi²", "mi^2", "sqmi")
	RegisterUnit(r, und, unit.SquareFoot, "ft²", "ft^2", "sqft")
	RegisterUnit(r, und, unit.SquareInch, "in²", "in^2", "sqin")

	// volume
	RegisterUnit(r, und, unit.CubicMeter, "m³", "m^3")
	RegisterUnit(r, und, unit.Liter, "l", "L")
	RegisterUnit(r, und, unit.Milliliter, "ml", "mL")
	RegisterUnit(r, und, unit.CubicFoot, "ft³", "ft^3", "cuft")
	RegisterUnit(r, und, unit.USGallon, "gal")
	RegisterUnit(r, und, unit.USQuart, "qt")
	RegisterUnit(r, und, unit.USPint, "pt")
	RegisterUnit(r, und, unit.USFluidOunce, "floz")

	// pressure
	RegisterUnit(r, und, unit.Pascal, "Pa")
	RegisterUnit(r, und, unit.Kilopascal, "kPa")
	RegisterUnit(r, und, unit.Megapascal, "MPa")
	RegisterUnit(r, und, unit.Bar, "bar")
	RegisterUnit(r, und, unit.Millibar, "mbar")
	RegisterUnit(r, und, unit.Atmosphere, "atm")
	RegisterUnit(r, und, unit.PoundPerSquareInch, "psi")
	RegisterUnit(r, und, unit.MillimeterOfMercury, "mmHg")

	// speed
	RegisterUnit(r, und, unit.MeterPerSecond, "m/s")
	RegisterUnit(r, und, unit.KilometerPerHour, "km/h", "kph")
	RegisterUnit(r, und, unit.MilePerHour, "mph")
	RegisterUnit(r, und, unit.Knot, "kn", "kt")
	RegisterUnit(r, und, unit.FootPerSecond, "ft/s")

	// temperature
	RegisterUnit(r, und, unit.Kelvin, "K")
	RegisterUnit(r, und, unit.Celsius, "°C", "C")
	RegisterUnit(r, und, unit.Fahrenheit, "°F", "F")

	// ru writes SI symbols in Cyrillic
	RegisterUnit(r, russian, unit.Meter, "м")
	RegisterUnit(r, russian, unit.Kilometer, "км")
	RegisterUnit(r, russian, unit.Centimeter, "см")
	RegisterUnit(r, russian, unit.Millimeter, "мм")
	RegisterUnit(r, russian, unit.Kilogram, "кг")
	RegisterUnit(r, russian, unit.Gram, "г")
	RegisterUnit(r, russian, unit.Tonne, "т")
	RegisterUnit(r, russian, unit.KilometerPerHour, "км/ч")
	RegisterUnit(r, russian, unit.MeterPerSecond, "м/с")
}
