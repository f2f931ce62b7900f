package quantity

import "quantify/core/unit"

// Temperature is a quantity stored in kelvins. Celsius and Fahrenheit are
// affine units: conversion applies an offset on top of the scale, so the
// zero-is-a-fixed-point property of linear units does not hold here.
type Temperature = Quantity[unit.TemperatureUnit]

// FromKelvins constructs a Temperature from kelvins
func FromKelvins(v float64) Temperature { return FromBase[unit.TemperatureUnit](v) }

// FromCelsius constructs a Temperature from degrees Celsius
func FromCelsius(v float64) Temperature { return MustFrom(v, unit.Celsius) }

// FromFahrenheit constructs a Temperature from degrees Fahrenheit
func FromFahrenheit(v float64) Temperature { return MustFrom(v, unit.Fahrenheit) }

// Kelvins returns the magnitude in kelvins
func Kelvins(q Temperature) float64 { return q.Base() }

// DegreesCelsius returns the magnitude in degrees Celsius
func DegreesCelsius(q Temperature) float64 { return q.MustIn(unit.Celsius) }

// DegreesFahrenheit returns the magnitude in degrees Fahrenheit
func DegreesFahrenheit(q Temperature) float64 { return q.MustIn(unit.Fahrenheit) }
