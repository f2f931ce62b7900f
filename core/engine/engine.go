// Package engine provides runtime dispatch over the generic quantity API.
// Quantity types are resolved at compile time, but the CLI and the HTTP API
// pick a dimension from user input, so each dimension registers an Engine
// that closes over its unit type argument.
package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"quantify/core/parse"
	"quantify/core/quantity"
	"quantify/core/unit"
	"quantify/internal/errors"
)

// Engine exposes one dimension's parse, convert, and format operations
// with units carried as raw enum values.
type Engine struct {
	dim       unit.Dimension
	parseText func(text string, tag language.Tag) (float64, error)
	resolve   func(token string, tag language.Tag) uint8
	convert   func(base float64, raw uint8) (float64, error)
	format    func(base float64, raw uint8, tag language.Tag, digits int) (string, error)
}

func newEngine[U unit.Unit]() *Engine {
	var z U
	return &Engine{
		dim: z.Dimension(),
		parseText: func(text string, tag language.Tag) (float64, error) {
			q, err := parse.Quantity[U](text, tag)
			return q.Base(), err
		},
		resolve: func(token string, tag language.Tag) uint8 {
			if raw := uint8(parse.Unit[U](token, tag)); raw != 0 {
				return raw
			}
			raw, _ := unit.ByName(z.Dimension(), token)
			return raw
		},
		convert: func(base float64, raw uint8) (float64, error) {
			return quantity.FromBase[U](base).In(U(raw))
		},
		format: func(base float64, raw uint8, tag language.Tag, digits int) (string, error) {
			return quantity.FromBase[U](base).Format(U(raw), tag, digits)
		},
	}
}

// Dimension returns the dimension this engine serves.
func (e *Engine) Dimension() unit.Dimension { return e.dim }

// Parse parses a free-form quantity string into a base-unit magnitude.
func (e *Engine) Parse(text string, tag language.Tag) (float64, error) {
	return e.parseText(text, tag)
}

// ResolveUnit resolves a unit abbreviation or symbolic name.
// Returns 0 (the undefined sentinel) when the token is not recognized.
func (e *Engine) ResolveUnit(token string, tag language.Tag) uint8 {
	return e.resolve(token, tag)
}

// Convert expresses a base-unit magnitude in the given unit.
func (e *Engine) Convert(base float64, raw uint8) (float64, error) {
	return e.convert(base, raw)
}

// Format renders a base-unit magnitude in the given unit under a culture.
func (e *Engine) Format(base float64, raw uint8, tag language.Tag, digits int) (string, error) {
	return e.format(base, raw, tag, digits)
}

var engines = map[string]*Engine{
	unit.Length.String():      newEngine[unit.LengthUnit](),
	unit.Mass.String():        newEngine[unit.MassUnit](),
	unit.Area.String():        newEngine[unit.AreaUnit](),
	unit.Volume.String():      newEngine[unit.VolumeUnit](),
	unit.Pressure.String():    newEngine[unit.PressureUnit](),
	unit.Speed.String():       newEngine[unit.SpeedUnit](),
	unit.Temperature.String(): newEngine[unit.TemperatureUnit](),
}

// For returns the engine for a dimension name (case-insensitive).
func For(name string) (*Engine, error) {
	e, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown dimension %q (one of: %s)",
			name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names returns the dimension names with a registered engine, sorted.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
