// Package quantity - culture-aware rendering tests
package quantity

import (
	"testing"

	"golang.org/x/text/language"

	"quantify/core/unit"
)

// TestStringUsesBaseUnit checks the invariant default rendering
func TestStringUsesBaseUnit(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"length", FromMeters(5.5).String(), "5.5 m"},
		{"length from feet", FromFeet(1).String(), "0.3 m"},
		{"mass", FromKilograms(2).String(), "2 kg"},
		{"speed", FromMetersPerSecond(10).String(), "10 m/s"},
		{"temperature", FromKelvins(300).String(), "300 K"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

// TestFormatCultureNumbers checks decimal and group separators per culture
func TestFormatCultureNumbers(t *testing.T) {
	q := FromMeters(5.5)

	got, err := q.Format(unit.Meter, language.Und, 2)
	if err != nil {
		t.Fatalf("Format und: %v", err)
	}
	if got != "5.5 m" {
		t.Errorf("und: %q, want %q", got, "5.5 m")
	}

	got, err = q.Format(unit.Meter, language.German, 2)
	if err != nil {
		t.Fatalf("Format de: %v", err)
	}
	if got != "5,5 m" {
		t.Errorf("de: %q, want %q", got, "5,5 m")
	}

	big := FromMeters(1234.5)
	got, err = big.Format(unit.Meter, language.English, 1)
	if err != nil {
		t.Fatalf("Format en: %v", err)
	}
	if got != "1,234.5 m" {
		t.Errorf("en: %q, want %q", got, "1,234.5 m")
	}
}

// TestFormatRussianAbbreviation checks that culture-specific abbreviations
// shadow the invariant ones
func TestFormatRussianAbbreviation(t *testing.T) {
	q := FromMeters(5.5)
	got, err := q.Format(unit.Meter, language.Russian, 2)
	if err != nil {
		t.Fatalf("Format ru: %v", err)
	}
	if got != "5,5 м" {
		t.Errorf("ru: %q, want %q", got, "5,5 м")
	}
}

// TestFormatTargetUnit checks rendering in a non-base unit
func TestFormatTargetUnit(t *testing.T) {
	q := FromMeters(1609.344)
	got, err := q.Format(unit.Mile, language.Und, 2)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "1 mi" {
		t.Errorf("Format(mile) = %q, want %q", got, "1 mi")
	}
}

// TestFormatRejectsUndefined proves the sentinel is not renderable
func TestFormatRejectsUndefined(t *testing.T) {
	if _, err := FromMeters(1).Format(unit.LengthUndefined, language.Und, 2); err == nil {
		t.Error("Format(Undefined): expected error, got nil")
	}
}

// TestFormatf checks the template rendering with implicit arguments
func TestFormatf(t *testing.T) {
	q := FromFeet(6)
	got, err := q.Formatf(unit.Foot, language.Und, "%.0f %s tall")
	if err != nil {
		t.Fatalf("Formatf: %v", err)
	}
	if got != "6 ft tall" {
		t.Errorf("Formatf = %q, want %q", got, "6 ft tall")
	}
}
