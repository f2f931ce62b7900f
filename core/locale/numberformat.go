package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// NumberFormat describes how a culture writes numeric literals: the decimal
// separator and the accepted digit-group separators. Plain spaces are not
// used as group separators here even where a culture prints them, because
// the parser treats spaces as pair separators; the non-breaking variants
// cover formatted input.
type NumberFormat struct {
	Decimal rune
	Groups  []rune
}

// invariantNumber is the fallback format: "1,234.5"
var invariantNumber = NumberFormat{Decimal: '.', Groups: []rune{','}}

var (
	commaDot   = NumberFormat{Decimal: ',', Groups: []rune{'.'}}
	commaSpace = NumberFormat{Decimal: ',', Groups: []rune{' ', ' '}}
)

// numberFormats is keyed by canonical tag string. Lookup falls back from
// the full tag to its parents, so "de-AT" finds "de".
var numberFormats = map[string]NumberFormat{
	"en": invariantNumber,
	"ja": invariantNumber,
	"zh": invariantNumber,
	"ko": invariantNumber,
	"th": invariantNumber,

	"de": commaDot,
	"es": commaDot,
	"it": commaDot,
	"pt": commaDot,
	"nl": commaDot,
	"da": commaDot,
	"id": commaDot,
	"tr": commaDot,

	"fr": commaSpace,
	"ru": commaSpace,
	"sv": commaSpace,
	"fi": commaSpace,
	"nb": commaSpace,
	"pl": commaSpace,
	"cs": commaSpace,
	"uk": commaSpace,

	// en-ZA writes decimal commas unlike the rest of en
	"en-ZA": commaSpace,
}

// numberFormatFor resolves the numeric format for a tag by walking its
// parent chain, ending at the invariant format.
func numberFormatFor(tag language.Tag) NumberFormat {
	for _, key := range cultureChain(tag) {
		if f, ok := numberFormats[key]; ok {
			return f
		}
	}
	return invariantNumber
}

// Normalize rewrites a literal from this format into Go float syntax:
// group separators are stripped and the decimal separator becomes '.'.
func (f NumberFormat) Normalize(literal string) string {
	var b strings.Builder
	b.Grow(len(literal))
	for _, r := range literal {
		if f.isGroup(r) {
			continue
		}
		if r == f.Decimal {
			b.WriteRune('.')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (f NumberFormat) isGroup(r rune) bool {
	for _, g := range f.Groups {
		if r == g {
			return true
		}
	}
	return false
}
