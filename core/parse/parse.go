// Package parse - culture-aware parsing of free-form quantity strings.
// An input holds one or more "<number> <unit>" pairs separated by
// whitespace, commas, or the word "and"; every pair is converted to the
// dimension's base unit and the results are summed, so "1ft 2in" and
// "2in and 1ft" parse to the same length.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"quantify/core/locale"
	"quantify/core/quantity"
	"quantify/core/unit"
	"quantify/internal/errors"
)

// Quantity parses text against the default registry. An unspecified
// culture is language.Und: invariant number format and abbreviations.
func Quantity[U unit.Unit](text string, tag language.Tag) (quantity.Quantity[U], error) {
	return QuantityWith[U](locale.Default(), text, tag)
}

// QuantityWith parses text into a single summed quantity using reg's
// abbreviations for the given culture.
func QuantityWith[U unit.Unit](reg *locale.Registry, text string, tag language.Tag) (quantity.Quantity[U], error) {
	if strings.TrimSpace(text) == "" {
		return quantity.Zero[U](), errors.Input("quantity string is empty")
	}

	view := reg.View(tag)
	sc := scannerFor(view.Number())
	var z U
	dim := z.Dimension()

	var (
		total     quantity.Quantity[U]
		pairs     int
		pos       int
		lastValue string
		lastUnit  string
	)
	for _, m := range sc.pair.FindAllStringSubmatchIndex(text, -1) {
		gap := text[pos:m[0]]
		if !sc.sep.MatchString(gap) {
			return quantity.Zero[U](), fragmentError(gap, text, tag, lastValue, lastUnit)
		}
		pos = m[1]

		literal := text[m[2]:m[3]]
		token := ""
		if m[4] >= 0 {
			token = text[m[4]:m[5]]
		}
		if token == "" {
			// a number without a unit token is not a pair and
			// contributes nothing
			lastValue, lastUnit = literal, ""
			continue
		}
		if token == "and" {
			// a separator word captured after a bare number; give it
			// back so the gap check sees it
			lastValue, lastUnit = literal, ""
			pos = m[3]
			continue
		}

		v, err := strconv.ParseFloat(view.Number().Normalize(literal), 64)
		if err != nil {
			return quantity.Zero[U](), errors.MalformedNumber(literal, err).
				WithContext("input", text).
				WithContext("culture", tag.String())
		}
		raw := view.Resolve(dim, token)
		if raw == 0 {
			return quantity.Zero[U](), errors.UnknownUnit(token).
				WithContext("input", text).
				WithContext("culture", tag.String())
		}
		q, err := quantity.From(v, U(raw))
		if err != nil {
			return quantity.Zero[U](), err
		}
		total = total.Add(q)
		pairs++
		lastValue, lastUnit = literal, token
	}

	if pairs == 0 {
		return quantity.Zero[U](), errors.NoMatch(text).WithContext("culture", tag.String())
	}
	if tail := text[pos:]; !sc.sep.MatchString(tail) {
		return quantity.Zero[U](), fragmentError(tail, text, tag, lastValue, lastUnit)
	}
	return total, nil
}

// Unit resolves a unit abbreviation against the default registry by exact,
// case-sensitive match. It returns the dimension's Undefined sentinel on a
// miss; callers check the sentinel rather than an error.
func Unit[U unit.Unit](text string, tag language.Tag) U {
	return UnitWith[U](locale.Default(), text, tag)
}

// UnitWith is Unit against an explicit registry.
func UnitWith[U unit.Unit](reg *locale.Registry, text string, tag language.Tag) U {
	return locale.ResolveUnit[U](reg, tag, strings.TrimSpace(text))
}

func fragmentError(fragment, input string, tag language.Tag, lastValue, lastUnit string) error {
	return errors.InvalidFragment(strings.TrimSpace(fragment)).
		WithContext("input", input).
		WithContext("culture", tag.String()).
		WithContext("matched_value", lastValue).
		WithContext("matched_unit", lastUnit)
}

// scanner holds the compiled token patterns for one number format.
type scanner struct {
	// pair matches one "[sign][number][exponent] [unit]" occurrence; the
	// unit group is optional so a dangling number is consumed silently.
	pair *regexp.Regexp
	// sep matches the text allowed between pairs
	sep *regexp.Regexp
}

var (
	scannersMu sync.Mutex
	scanners   = make(map[string]*scanner)
)

// scannerFor compiles (or reuses) the scanner for a number format. Only a
// handful of distinct formats exist across cultures, so the cache stays tiny.
func scannerFor(f locale.NumberFormat) *scanner {
	key := string(f.Decimal) + "|" + string(f.Groups)

	scannersMu.Lock()
	defer scannersMu.Unlock()
	if sc, ok := scanners[key]; ok {
		return sc
	}

	grp := regexp.QuoteMeta(string(f.Groups))
	dec := regexp.QuoteMeta(string(f.Decimal))

	// grouped digits require exact 3-digit groups so a stray separator is
	// not silently folded into the number
	num := `[-+]?(?:\d{1,3}(?:[` + grp + `]\d{3})+|\d+)(?:` + dec + `\d+)?(?:[eE][-+]?\d+)?`
	// unit tokens stop at whitespace, digits, signs, and punctuation that
	// separates pairs; non-breaking spaces count as whitespace here
	unitToken := `[^\s\d.,;+\-` + "  " + `]+`

	sc := &scanner{
		pair: regexp.MustCompile(`(` + num + `)[ \t]*(` + unitToken + `)?`),
		sep:  regexp.MustCompile(`^(?:[\s,;` + "  " + `]+|and)*$`),
	}
	scanners[key] = sc
	return sc
}
