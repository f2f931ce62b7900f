// Package quantity - arithmetic, conversion, and comparison tests
package quantity

import (
	"math"
	"testing"

	"quantify/core/unit"
)

const epsilon = 1e-9

// TestRoundTripEveryUnit proves From followed by In recovers the input for
// every unit of every dimension, affine temperature units included.
func TestRoundTripEveryUnit(t *testing.T) {
	roundTrip[unit.LengthUnit](t)
	roundTrip[unit.MassUnit](t)
	roundTrip[unit.AreaUnit](t)
	roundTrip[unit.VolumeUnit](t)
	roundTrip[unit.PressureUnit](t)
	roundTrip[unit.SpeedUnit](t)
	roundTrip[unit.TemperatureUnit](t)
}

func roundTrip[U unit.Unit](t *testing.T, values ...float64) {
	t.Helper()
	if len(values) == 0 {
		values = []float64{-273.15, -1, 0.25, 1, 42, 98.6, 1e6}
	}
	for _, u := range unit.All[U]() {
		for _, v := range values {
			q, err := From(v, u)
			if err != nil {
				t.Fatalf("From(%v, %s): %v", v, u, err)
			}
			got, err := q.In(u)
			if err != nil {
				t.Fatalf("In(%s): %v", u, err)
			}
			if math.Abs(got-v) > epsilon*math.Max(1, math.Abs(v)) {
				t.Errorf("%s: round trip of %v gave %v", u, v, got)
			}
		}
	}
}

// TestZeroIsFixedPoint proves a zero base magnitude reads as zero in every
// zero-offset unit
func TestZeroIsFixedPoint(t *testing.T) {
	for _, u := range unit.All[unit.LengthUnit]() {
		if got := Zero[unit.LengthUnit]().MustIn(u); got != 0 {
			t.Errorf("zero length in %s = %v, want 0", u, got)
		}
	}
	for _, u := range unit.All[unit.PressureUnit]() {
		if got := Zero[unit.PressureUnit]().MustIn(u); got != 0 {
			t.Errorf("zero pressure in %s = %v, want 0", u, got)
		}
	}
}

// TestAdditionConsistentWithBaseArithmetic checks
// From(a,U) + From(b,U) == From(a+b,U) for zero-offset units
func TestAdditionConsistentWithBaseArithmetic(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {0.5, 0.25}, {-3, 7}, {1e6, 1e-6}}
	for _, u := range unit.All[unit.LengthUnit]() {
		for _, p := range pairs {
			sum := MustFrom(p[0], u).Add(MustFrom(p[1], u))
			want := MustFrom(p[0]+p[1], u)
			if math.Abs(sum.Base()-want.Base()) > epsilon*math.Max(1, math.Abs(want.Base())) {
				t.Errorf("%s: From(%v)+From(%v) = %v, want %v", u, p[0], p[1], sum.Base(), want.Base())
			}
		}
	}
}

// TestFromRejectsUndefined proves the sentinel is not a constructible unit
func TestFromRejectsUndefined(t *testing.T) {
	if _, err := From(1.0, unit.LengthUndefined); err == nil {
		t.Error("From(1, LengthUndefined): expected error, got nil")
	}
}

// TestMustFromPanicsOnUndefined proves MustFrom treats the sentinel as a
// programming error
func TestMustFromPanicsOnUndefined(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic from MustFrom with Undefined, but no panic occurred")
		}
	}()
	MustFrom(1.0, unit.MassUndefined)
}

// TestKnownConversions checks hand-computed conversions
func TestKnownConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"1 km in m", MustFrom(1.0, unit.Kilometer).MustIn(unit.Meter), 1000},
		{"1 mi in km", MustFrom(1.0, unit.Mile).MustIn(unit.Kilometer), 1.609344},
		{"12 in in ft", MustFrom(12.0, unit.Inch).MustIn(unit.Foot), 1},
		{"1 lb in g", MustFrom(1.0, unit.Pound).MustIn(unit.Gram), 453.59237},
		{"1 ha in m²", MustFrom(1.0, unit.Hectare).MustIn(unit.SquareMeter), 1e4},
		{"1 gal in l", MustFrom(1.0, unit.USGallon).MustIn(unit.Liter), 3.785411784},
		{"1 atm in kPa", MustFrom(1.0, unit.Atmosphere).MustIn(unit.Kilopascal), 101.325},
		{"36 km/h in m/s", MustFrom(36.0, unit.KilometerPerHour).MustIn(unit.MeterPerSecond), 10},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > epsilon*math.Max(1, math.Abs(tt.want)) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// TestTemperatureAffine checks the offset units against fixed points
func TestTemperatureAffine(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"0 °C in K", MustFrom(0.0, unit.Celsius).Base(), 273.15},
		{"100 °C in °F", MustFrom(100.0, unit.Celsius).MustIn(unit.Fahrenheit), 212},
		{"32 °F in °C", MustFrom(32.0, unit.Fahrenheit).MustIn(unit.Celsius), 0},
		{"-40 °F in °C", MustFrom(-40.0, unit.Fahrenheit).MustIn(unit.Celsius), -40},
		{"0 K in °C", Zero[unit.TemperatureUnit]().MustIn(unit.Celsius), -273.15},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > epsilon {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// TestArithmetic checks the vector-space operations in base units
func TestArithmetic(t *testing.T) {
	a := FromMeters(3)
	b := FromMeters(4)

	if got := a.Add(b).Base(); got != 7 {
		t.Errorf("3m + 4m = %vm, want 7", got)
	}
	if got := a.Sub(b).Base(); got != -1 {
		t.Errorf("3m - 4m = %vm, want -1", got)
	}
	if got := a.Neg().Base(); got != -3 {
		t.Errorf("-(3m) = %vm, want -3", got)
	}
	if got := a.Sub(b).Abs().Base(); got != 1 {
		t.Errorf("|3m - 4m| = %vm, want 1", got)
	}
	if got := a.MulScalar(2).Base(); got != 6 {
		t.Errorf("3m * 2 = %vm, want 6", got)
	}
	if got := b.DivScalar(2).Base(); got != 2 {
		t.Errorf("4m / 2 = %vm, want 2", got)
	}
}

// TestRatio checks dimensionless division, including the IEEE zero case
func TestRatio(t *testing.T) {
	if got := FromMeters(10).Ratio(FromMeters(2)); got != 5 {
		t.Errorf("10m / 2m = %v, want 5", got)
	}
	if got := FromMeters(1).Ratio(Zero[unit.LengthUnit]()); !math.IsInf(got, 1) {
		t.Errorf("1m / 0m = %v, want +Inf", got)
	}
	if got := Zero[unit.LengthUnit]().Ratio(Zero[unit.LengthUnit]()); !math.IsNaN(got) {
		t.Errorf("0m / 0m = %v, want NaN", got)
	}
}

// TestComparisons checks the exact ordering operations
func TestComparisons(t *testing.T) {
	small := FromCentimeters(50)
	large := FromMeters(1)

	if !small.Less(large) {
		t.Error("50cm < 1m expected")
	}
	if got := small.Cmp(large); got != -1 {
		t.Errorf("Cmp(50cm, 1m) = %d, want -1", got)
	}
	if got := large.Cmp(small); got != 1 {
		t.Errorf("Cmp(1m, 50cm) = %d, want 1", got)
	}
	if got := large.Cmp(FromCentimeters(100)); got != 0 {
		t.Errorf("Cmp(1m, 100cm) = %d, want 0", got)
	}
	if !large.Equal(FromMillimeters(1000)) {
		t.Error("1m == 1000mm expected")
	}
}

// TestApproxEqual checks tolerance-based equality
func TestApproxEqual(t *testing.T) {
	a := FromMeters(1)
	b := FromMeters(1.0001)
	tol := FromMillimeters(1)

	if !a.ApproxEqual(b, tol) {
		t.Error("1m ≈ 1.0001m within 1mm expected")
	}
	if a.ApproxEqual(FromMeters(1.01), tol) {
		t.Error("1m ≈ 1.01m within 1mm not expected")
	}
}

// TestMinMaxSum checks the package-level aggregations
func TestMinMaxSum(t *testing.T) {
	a, b := FromFeet(1), FromInches(2)

	if got := Min(a, b); !got.Equal(b) {
		t.Errorf("Min(1ft, 2in) = %v, want 2in", got)
	}
	if got := Max(a, b); !got.Equal(a) {
		t.Errorf("Max(1ft, 2in) = %v, want 1ft", got)
	}
	want := a.Add(b)
	if got := Sum(a, b); !got.Equal(want) {
		t.Errorf("Sum(1ft, 2in) = %v, want %v", got, want)
	}
	if got := Sum[unit.LengthUnit](); !got.Equal(Zero[unit.LengthUnit]()) {
		t.Errorf("empty Sum = %v, want zero", got)
	}
}

// TestZeroIsAdditiveIdentity checks the zero value contract
func TestZeroIsAdditiveIdentity(t *testing.T) {
	var z Length
	q := FromMeters(5)
	if !q.Add(z).Equal(q) {
		t.Error("q + zero != q")
	}
	if z.Base() != 0 {
		t.Errorf("zero value base = %v, want 0", z.Base())
	}
}

// TestDimensionHelpers spot-checks the per-dimension factory/accessor pairs
func TestDimensionHelpers(t *testing.T) {
	if got := Meters(FromKilometers(2)); got != 2000 {
		t.Errorf("Meters(FromKilometers(2)) = %v, want 2000", got)
	}
	if got := Kilograms(FromTonnes(1)); got != 1000 {
		t.Errorf("Kilograms(FromTonnes(1)) = %v, want 1000", got)
	}
	if got := DegreesCelsius(FromKelvins(273.15)); math.Abs(got) > epsilon {
		t.Errorf("DegreesCelsius(273.15K) = %v, want 0", got)
	}
	if got := Liters(FromCubicMeters(1)); got != 1000 {
		t.Errorf("Liters(FromCubicMeters(1)) = %v, want 1000", got)
	}
}
