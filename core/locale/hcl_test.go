// Package locale - abbreviation override file tests
package locale

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"quantify/core/unit"
	"quantify/internal/errors"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "abbreviations.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}
	return path
}

// TestLoadHCLFile loads a well-formed override file
func TestLoadHCLFile(t *testing.T) {
	path := writeOverrides(t, `
culture "de-DE" {
  dimension "length" {
    meter     = ["m", "Meter"]
    kilometer = ["km", "Kilometer"]
  }
  dimension "mass" {
    kilogram = ["kg", "Kilogramm"]
  }
}

culture "und" {
  dimension "length" {
    nauticalmile = ["sm"]
  }
}
`)

	r := NewRegistry()
	if err := r.LoadHCLFile(path); err != nil {
		t.Fatalf("LoadHCLFile: %v", err)
	}

	deDE := language.MustParse("de-DE")
	v := r.View(deDE)
	if got := v.Resolve(unit.Length, "Kilometer"); unit.LengthUnit(got) != unit.Kilometer {
		t.Errorf("Resolve(Kilometer) = %d, want Kilometer", got)
	}
	if got := v.Resolve(unit.Mass, "Kilogramm"); unit.MassUnit(got) != unit.Kilogram {
		t.Errorf("Resolve(Kilogramm) = %d, want Kilogram", got)
	}
	// invariant entries are visible through the fallback chain
	if got := v.Resolve(unit.Length, "sm"); unit.LengthUnit(got) != unit.NauticalMile {
		t.Errorf("Resolve(sm) = %d, want NauticalMile", got)
	}
}

// TestLoadHCLFileErrors checks the rejection cases
func TestLoadHCLFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `culture "de" {`},
		{"bad culture tag", `culture "not a tag!" {}`},
		{"unknown dimension", `culture "de" { dimension "charm" { meter = ["m"] } }`},
		{"unknown unit", `culture "de" { dimension "length" { parsec = ["pc"] } }`},
		{"not a list", `culture "de" { dimension "length" { meter = "m" } }`},
		{"empty list", `culture "de" { dimension "length" { meter = [] } }`},
	}
	for _, tt := range tests {
		path := writeOverrides(t, tt.content)
		err := NewRegistry().LoadHCLFile(path)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !errors.IsType(err, errors.TypeConfig) {
			t.Errorf("%s: error type = %v, want CONFIG_ERROR", tt.name, err)
		}
	}
}

// TestLoadHCLFileMissing checks the nonexistent-path case
func TestLoadHCLFileMissing(t *testing.T) {
	err := NewRegistry().LoadHCLFile(filepath.Join(t.TempDir(), "nope.hcl"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
