package unit

import (
	"fmt"
	"strings"

	"quantify/internal/errors"
)

// Factor projects a raw value expressed in some unit into the dimension's
// base unit: base = raw*Scale + Offset. Scale is never zero.
type Factor struct {
	Scale  float64
	Offset float64
}

type unitInfo struct {
	name   string
	factor Factor
}

type dimensionTable struct {
	base     uint8
	units    []unitInfo
	sentinel int
}

// tables is indexed by Dimension; each units slice is indexed by the raw enum
// value, slot 0 being the Undefined sentinel. Every defined unit needs an
// entry here; verifyTables enforces that at startup.
var tables = [numDimensions]dimensionTable{
	Length: {
		base:     uint8(Meter),
		sentinel: int(lengthSentinel),
		units: []unitInfo{
			LengthUndefined: {name: "Undefined"},
			Meter:           {name: "Meter", factor: Factor{Scale: 1}},
			Kilometer:       {name: "Kilometer", factor: Factor{Scale: 1000}},
			Centimeter:      {name: "Centimeter", factor: Factor{Scale: 0.01}},
			Millimeter:      {name: "Millimeter", factor: Factor{Scale: 0.001}},
			Micrometer:      {name: "Micrometer", factor: Factor{Scale: 1e-6}},
			Mile:            {name: "Mile", factor: Factor{Scale: 1609.344}},
			Yard:            {name: "Yard", factor: Factor{Scale: 0.9144}},
			Foot:            {name: "Foot", factor: Factor{Scale: 0.3048}},
			Inch:            {name: "Inch", factor: Factor{Scale: 0.0254}},
			NauticalMile:    {name: "NauticalMile", factor: Factor{Scale: 1852}},
		},
	},
	Mass: {
		base:     uint8(Kilogram),
		sentinel: int(massSentinel),
		units: []unitInfo{
			MassUndefined: {name: "Undefined"},
			Kilogram:      {name: "Kilogram", factor: Factor{Scale: 1}},
			Gram:          {name: "Gram", factor: Factor{Scale: 0.001}},
			Milligram:     {name: "Milligram", factor: Factor{Scale: 1e-6}},
			Tonne:         {name: "Tonne", factor: Factor{Scale: 1000}},
			Pound:         {name: "Pound", factor: Factor{Scale: 0.45359237}},
			Ounce:         {name: "Ounce", factor: Factor{Scale: 0.028349523125}},
			Stone:         {name: "Stone", factor: Factor{Scale: 6.35029318}},
			Grain:         {name: "Grain", factor: Factor{Scale: 0.00006479891}},
		},
	},
	Area: {
		base:     uint8(SquareMeter),
		sentinel: int(areaSentinel),
		units: []unitInfo{
			AreaUndefined:    {name: "Undefined"},
			SquareMeter:      {name: "SquareMeter", factor: Factor{Scale: 1}},
			SquareKilometer:  {name: "SquareKilometer", factor: Factor{Scale: 1e6}},
			SquareCentimeter: {name: "SquareCentimeter", factor: Factor{Scale: 1e-4}},
			Hectare:          {name: "Hectare", factor: Factor{Scale: 1e4}},
			Acre:             {name: "Acre", factor: Factor{Scale: 4046.8564224}},
			SquareMile:       {name: "SquareMile", factor: Factor{Scale: 2589988.110336}},
			SquareFoot:       {name: "SquareFoot", factor: Factor{Scale: 0.09290304}},
			SquareInch:       {name: "SquareInch", factor: Factor{Scale: 0.00064516}},
		},
	},
	Volume: {
		base:     uint8(CubicMeter),
		sentinel: int(volumeSentinel),
		units: []unitInfo{
			VolumeUndefined: {name: "Undefined"},
			CubicMeter:      {name: "CubicMeter", factor: Factor{Scale: 1}},
			Liter:           {name: "Liter", factor: Factor{Scale: 0.001}},
			Milliliter:      {name: "Milliliter", factor: Factor{Scale: 1e-6}},
			CubicFoot:       {name: "CubicFoot", factor: Factor{Scale: 0.028316846592}},
			USGallon:        {name: "USGallon", factor: Factor{Scale: 0.003785411784}},
			USQuart:         {name: "USQuart", factor: Factor{Scale: 0.000946352946}},
			USPint:          {name: "USPint", factor: Factor{Scale: 0.000473176473}},
			USFluidOunce:    {name: "USFluidOunce", factor: Factor{Scale: 2.95735295625e-5}},
		},
	},
	Pressure: {
		base:     uint8(Pascal),
		sentinel: int(pressureSentinel),
		units: []unitInfo{
			PressureUndefined:   {name: "Undefined"},
			Pascal:              {name: "Pascal", factor: Factor{Scale: 1}},
			Kilopascal:          {name: "Kilopascal", factor: Factor{Scale: 1000}},
			Megapascal:          {name: "Megapascal", factor: Factor{Scale: 1e6}},
			Bar:                 {name: "Bar", factor: Factor{Scale: 1e5}},
			Millibar:            {name: "Millibar", factor: Factor{Scale: 100}},
			Atmosphere:          {name: "Atmosphere", factor: Factor{Scale: 101325}},
			PoundPerSquareInch:  {name: "PoundPerSquareInch", factor: Factor{Scale: 6894.757293168}},
			MillimeterOfMercury: {name: "MillimeterOfMercury", factor: Factor{Scale: 133.322387415}},
		},
	},
	Speed: {
		base:     uint8(MeterPerSecond),
		sentinel: int(speedSentinel),
		units: []unitInfo{
			SpeedUndefined:   {name: "Undefined"},
			MeterPerSecond:   {name: "MeterPerSecond", factor: Factor{Scale: 1}},
			KilometerPerHour: {name: "KilometerPerHour", factor: Factor{Scale: 1000.0 / 3600.0}},
			MilePerHour:      {name: "MilePerHour", factor: Factor{Scale: 0.44704}},
			Knot:             {name: "Knot", factor: Factor{Scale: 1852.0 / 3600.0}},
			FootPerSecond:    {name: "FootPerSecond", factor: Factor{Scale: 0.3048}},
		},
	},
	Temperature: {
		base:     uint8(Kelvin),
		sentinel: int(temperatureSentinel),
		units: []unitInfo{
			TemperatureUndefined: {name: "Undefined"},
			Kelvin:               {name: "Kelvin", factor: Factor{Scale: 1}},
			Celsius:              {name: "Celsius", factor: Factor{Scale: 1, Offset: 273.15}},
			Fahrenheit:           {name: "Fahrenheit", factor: Factor{Scale: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0}},
		},
	},
}

// FactorFor returns the affine conversion factor for u. The Undefined
// sentinel and out-of-range values are rejected rather than defaulted.
func FactorFor[U Unit](u U) (Factor, error) {
	return FactorOf(u.Dimension(), uint8(u))
}

// FactorOf is the untyped variant of FactorFor, used where units travel as
// raw enum values.
func FactorOf(d Dimension, raw uint8) (Factor, error) {
	t := &tables[d]
	if raw == 0 || int(raw) >= len(t.units) {
		return Factor{}, errors.UnsupportedUnit(d.String(), int(raw))
	}
	return t.units[raw].factor, nil
}

// Name returns the symbolic name of u ("Meter", "Undefined", ...).
func Name[U Unit](u U) string {
	return NameOf(u.Dimension(), uint8(u))
}

// NameOf is the untyped variant of Name, used where units travel as raw
// enum values (the abbreviation registry, the CLI dispatch tables).
func NameOf(d Dimension, raw uint8) string {
	t := &tables[d]
	if int(raw) >= len(t.units) {
		return fmt.Sprintf("Unit(%d)", raw)
	}
	return t.units[raw].name
}

// ByName resolves a unit from its symbolic name, case-insensitively.
// Returns false for unknown names and for "Undefined".
func ByName(d Dimension, name string) (uint8, bool) {
	t := &tables[d]
	for i := 1; i < len(t.units); i++ {
		if strings.EqualFold(t.units[i].name, name) {
			return uint8(i), true
		}
	}
	return 0, false
}

// BaseOf returns the base unit of U's dimension.
func BaseOf[U Unit]() U {
	var z U
	return U(tables[z.Dimension()].base)
}

// BaseUnitOf returns the raw base unit value of a dimension.
func BaseUnitOf(d Dimension) uint8 {
	return tables[d].base
}

// Count returns how many defined units dimension d has, excluding the
// Undefined sentinel.
func Count(d Dimension) int {
	return len(tables[d].units) - 1
}

// All returns every defined unit of U's dimension, excluding Undefined.
func All[U Unit]() []U {
	var z U
	t := &tables[z.Dimension()]
	out := make([]U, 0, len(t.units)-1)
	for i := 1; i < len(t.units); i++ {
		out = append(out, U(i))
	}
	return out
}

// verifyTables enforces the table contract: one entry per enum member,
// nonzero scale, a valid base unit. A violation is a programming error in
// this package, so it panics at startup rather than surfacing at call sites.
func verifyTables() {
	for d := Dimension(0); d < numDimensions; d++ {
		t := &tables[d]
		if len(t.units) != t.sentinel {
			panic(fmt.Sprintf("unit: %s table has %d entries, enum declares %d", d, len(t.units), t.sentinel))
		}
		if t.base == 0 || int(t.base) >= len(t.units) {
			panic(fmt.Sprintf("unit: %s table has invalid base unit %d", d, t.base))
		}
		if t.units[t.base].factor != (Factor{Scale: 1}) {
			panic(fmt.Sprintf("unit: %s base unit %s must have scale 1, offset 0", d, t.units[t.base].name))
		}
		for i := 1; i < len(t.units); i++ {
			if t.units[i].name == "" {
				panic(fmt.Sprintf("unit: %s unit %d has no name", d, i))
			}
			if t.units[i].factor.Scale == 0 {
				panic(fmt.Sprintf("unit: %s unit %s has zero scale", d, t.units[i].name))
			}
		}
	}
}

func init() {
	verifyTables()
}
