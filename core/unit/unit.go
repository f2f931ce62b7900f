// Package unit - canonical dimensions, unit enumerations, and conversion tables.
// This is the source of truth for which units exist and how each projects into
// its dimension's base unit.
package unit

// Dimension identifies a physical quantity kind
type Dimension int

const (
	// Length uses meters as its base unit
	Length Dimension = iota
	// Mass uses kilograms as its base unit
	Mass
	// Area uses square meters as its base unit
	Area
	// Volume uses cubic meters as its base unit
	Volume
	// Pressure uses pascals as its base unit
	Pressure
	// Speed uses meters per second as its base unit
	Speed
	// Temperature uses kelvins as its base unit
	Temperature

	numDimensions
)

// String returns the string representation
func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Area:
		return "area"
	case Volume:
		return "volume"
	case Pressure:
		return "pressure"
	case Speed:
		return "speed"
	case Temperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// Dimensions returns all defined dimensions
func Dimensions() []Dimension {
	all := make([]Dimension, 0, numDimensions)
	for d := Dimension(0); d < numDimensions; d++ {
		all = append(all, d)
	}
	return all
}

// DimensionByName resolves a dimension from its lowercase name
func DimensionByName(name string) (Dimension, bool) {
	for d := Dimension(0); d < numDimensions; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Unit is the constraint satisfied by every per-dimension unit enumeration.
// The zero value of each enumeration is its Undefined sentinel and is never
// a valid conversion target.
type Unit interface {
	~uint8
	Dimension() Dimension
	String() string
}

// LengthUnit enumerates recognized length units
type LengthUnit uint8

const (
	// LengthUndefined signals that no length unit was resolved
	LengthUndefined LengthUnit = iota
	Meter
	Kilometer
	Centimeter
	Millimeter
	Micrometer
	Mile
	Yard
	Foot
	Inch
	NauticalMile

	lengthSentinel
)

// Dimension returns Length
func (LengthUnit) Dimension() Dimension { return Length }

// String returns the symbolic unit name
func (u LengthUnit) String() string { return Name(u) }

// MassUnit enumerates recognized mass units
type MassUnit uint8

const (
	// MassUndefined signals that no mass unit was resolved
	MassUndefined MassUnit = iota
	Kilogram
	Gram
	Milligram
	Tonne
	Pound
	Ounce
	Stone
	Grain

	massSentinel
)

// Dimension returns Mass
func (MassUnit) Dimension() Dimension { return Mass }

// String returns the symbolic unit name
func (u MassUnit) String() string { return Name(u) }

// AreaUnit enumerates recognized area units
type AreaUnit uint8

const (
	// AreaUndefined signals that no area unit was resolved
	AreaUndefined AreaUnit = iota
	SquareMeter
	SquareKilometer
	SquareCentimeter
	Hectare
	Acre
	SquareMile
	SquareFoot
	SquareInch

	areaSentinel
)

// Dimension returns Area
func (AreaUnit) Dimension() Dimension { return Area }

// String returns the symbolic unit name
func (u AreaUnit) String() string { return Name(u) }

// VolumeUnit enumerates recognized volume units
type VolumeUnit uint8

const (
	// VolumeUndefined signals that no volume unit was resolved
	VolumeUndefined VolumeUnit = iota
	CubicMeter
	Liter
	Milliliter
	CubicFoot
	USGallon
	USQuart
	USPint
	USFluidOunce

	volumeSentinel
)

// Dimension returns Volume
func (VolumeUnit) Dimension() Dimension { return Volume }

// String returns the symbolic unit name
func (u VolumeUnit) String() string { return Name(u) }

// PressureUnit enumerates recognized pressure units
type PressureUnit uint8

const (
	// PressureUndefined signals that no pressure unit was resolved
	PressureUndefined PressureUnit = iota
	Pascal
	Kilopascal
	Megapascal
	Bar
	Millibar
	Atmosphere
	PoundPerSquareInch
	MillimeterOfMercury

	pressureSentinel
)

// Dimension returns Pressure
func (PressureUnit) Dimension() Dimension { return Pressure }

// String returns the symbolic unit name
func (u PressureUnit) String() string { return Name(u) }

// SpeedUnit enumerates recognized speed units
type SpeedUnit uint8

const (
	// SpeedUndefined signals that no speed unit was resolved
	SpeedUndefined SpeedUnit = iota
	MeterPerSecond
	KilometerPerHour
	MilePerHour
	Knot
	FootPerSecond

	speedSentinel
)

// Dimension returns Speed
func (SpeedUnit) Dimension() Dimension { return Speed }

// String returns the symbolic unit name
func (u SpeedUnit) String() string { return Name(u) }

// TemperatureUnit enumerates recognized temperature units.
// Temperature conversions are affine: Celsius and Fahrenheit carry
// nonzero offsets relative to the kelvin base.
type TemperatureUnit uint8

const (
	// TemperatureUndefined signals that no temperature unit was resolved
	TemperatureUndefined TemperatureUnit = iota
	Kelvin
	Celsius
	Fahrenheit

	temperatureSentinel
)

// Dimension returns Temperature
func (TemperatureUnit) Dimension() Dimension { return Temperature }

// String returns the symbolic unit name
func (u TemperatureUnit) String() string { return Name(u) }
