package quantity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"quantify/core/locale"
	"quantify/core/unit"
)

// DefaultFractionDigits is the fraction precision used by String
const DefaultFractionDigits = 2

// String renders the quantity in its base unit with the invariant culture's
// preferred abbreviation and default precision, e.g. "5.5 m".
func (q Quantity[U]) String() string {
	s, _ := q.Format(unit.BaseOf[U](), language.Und, DefaultFractionDigits)
	return s
}

// Format renders the quantity in u under a culture's number format, with at
// most digits fraction digits (negative means the default). The unit
// abbreviation comes from the default registry with culture fallback.
func (q Quantity[U]) Format(u U, tag language.Tag, digits int) (string, error) {
	v, err := q.In(u)
	if err != nil {
		return "", err
	}
	if digits < 0 {
		digits = DefaultFractionDigits
	}
	abbr := locale.Abbreviation(locale.Default(), tag, u)
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %s", number.Decimal(v, number.MaxFractionDigits(digits)), abbr), nil
}

// Formatf renders the quantity through a caller-supplied template. The
// magnitude in u and the unit's abbreviation are implicitly the first two
// format arguments, so Formatf(unit.Foot, tag, "%.0f %s and a bit") works.
func (q Quantity[U]) Formatf(u U, tag language.Tag, format string, args ...any) (string, error) {
	v, err := q.In(u)
	if err != nil {
		return "", err
	}
	abbr := locale.Abbreviation(locale.Default(), tag, u)
	p := message.NewPrinter(tag)
	return p.Sprintf(format, append([]any{v, abbr}, args...)...), nil
}
