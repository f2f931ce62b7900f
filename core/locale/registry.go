// Package locale - culture-keyed unit abbreviation registry.
// Maps (dimension, unit) to accepted display strings per culture, resolves
// abbreviation tokens back to units, and memoizes merged per-culture views.
package locale

import (
	"sort"
	"sync"

	"golang.org/x/text/language"

	"quantify/core/unit"
)

// entry is one registration: a unit and the abbreviations accepted for it.
// The first abbreviation of the first entry found for a unit is preferred
// for output formatting.
type entry struct {
	dim   unit.Dimension
	raw   uint8
	abbrs []string
}

// Registry stores unit abbreviations keyed by culture. Reads vastly
// outnumber writes; per-culture views are built once and cached until the
// next registration.
type Registry struct {
	mu       sync.RWMutex
	cultures map[string][]entry // key: canonical tag string, "und" for invariant
	views    map[string]*View
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		cultures: make(map[string][]entry),
		views:    make(map[string]*View),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built from the builtin
// abbreviation data on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerDefaults(defaultRegistry)
	})
	return defaultRegistry
}

// Register appends abbreviations for a unit under a culture. Registering an
// abbreviation already claimed by another unit in the same dimension and
// culture is allowed; lookups resolve to the first match, so the duplicate
// is simply unreachable. That ambiguity is tolerated, not defended against.
func (r *Registry) Register(tag language.Tag, d unit.Dimension, raw uint8, abbrs ...string) {
	if len(abbrs) == 0 {
		return
	}
	key := tag.String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cultures[key] = append(r.cultures[key], entry{dim: d, raw: raw, abbrs: abbrs})
	r.views = make(map[string]*View)
}

// RegisterDefault prepends an abbreviation for a unit, making it the
// preferred output form for that culture.
func (r *Registry) RegisterDefault(tag language.Tag, d unit.Dimension, raw uint8, abbr string) {
	key := tag.String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cultures[key] = append([]entry{{dim: d, raw: raw, abbrs: []string{abbr}}}, r.cultures[key]...)
	r.views = make(map[string]*View)
}

// RegisterUnit is the typed variant of Register.
func RegisterUnit[U unit.Unit](r *Registry, tag language.Tag, u U, abbrs ...string) {
	r.Register(tag, u.Dimension(), uint8(u), abbrs...)
}

// Cultures returns the canonical tags with registered entries, sorted.
func (r *Registry) Cultures() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.cultures))
	for key := range r.cultures {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// View returns the memoized merged view for a culture. Building walks the
// tag's parent chain down to the invariant culture, so en-US sees en and
// und entries unless shadowed. Views are immutable once built and safe for
// concurrent use.
func (r *Registry) View(tag language.Tag) *View {
	key := tag.String()

	r.mu.RLock()
	v, ok := r.views[key]
	r.mu.RUnlock()
	if ok {
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.views[key]; ok {
		return v
	}
	v = r.buildView(tag)
	r.views[key] = v
	return v
}

// buildView merges the culture chain, most specific first. Caller holds the
// write lock.
func (r *Registry) buildView(tag language.Tag) *View {
	v := &View{
		tag:       tag,
		preferred: make(map[unit.Dimension]map[uint8]string),
		reverse:   make(map[unit.Dimension]map[string]uint8),
		number:    numberFormatFor(tag),
	}
	for _, key := range cultureChain(tag) {
		for _, e := range r.cultures[key] {
			pref := v.preferred[e.dim]
			if pref == nil {
				pref = make(map[uint8]string)
				v.preferred[e.dim] = pref
			}
			if _, ok := pref[e.raw]; !ok {
				pref[e.raw] = e.abbrs[0]
			}
			rev := v.reverse[e.dim]
			if rev == nil {
				rev = make(map[string]uint8)
				v.reverse[e.dim] = rev
			}
			for _, a := range e.abbrs {
				if _, ok := rev[a]; !ok {
					rev[a] = e.raw
				}
			}
		}
	}
	return v
}

// cultureChain returns the canonical keys to merge for a tag, most specific
// first, always ending with the invariant culture.
func cultureChain(tag language.Tag) []string {
	chain := []string{}
	for t := tag; ; t = t.Parent() {
		key := t.String()
		if key == "und" {
			break
		}
		chain = append(chain, key)
	}
	return append(chain, "und")
}

// Abbreviation returns the preferred abbreviation for a unit under a
// culture, falling back through parent cultures to the invariant entries
// and finally to the unit's symbolic name. It never fails.
func (r *Registry) Abbreviation(tag language.Tag, d unit.Dimension, raw uint8) string {
	if a, ok := r.View(tag).Abbreviation(d, raw); ok {
		return a
	}
	return unit.NameOf(d, raw)
}

// Abbreviation is the typed variant of Registry.Abbreviation.
func Abbreviation[U unit.Unit](r *Registry, tag language.Tag, u U) string {
	return r.Abbreviation(tag, u.Dimension(), uint8(u))
}

// ResolveUnit resolves an abbreviation token to a unit by case-sensitive
// exact match. It returns the dimension's Undefined sentinel when nothing
// matches; callers distinguish hit from miss by checking the sentinel.
func ResolveUnit[U unit.Unit](r *Registry, tag language.Tag, token string) U {
	var z U
	return U(r.View(tag).Resolve(z.Dimension(), token))
}

// View is a culture-scoped snapshot of the registry. Immutable after build.
type View struct {
	tag       language.Tag
	preferred map[unit.Dimension]map[uint8]string
	reverse   map[unit.Dimension]map[string]uint8
	number    NumberFormat
}

// Tag returns the culture this view was built for
func (v *View) Tag() language.Tag { return v.tag }

// Number returns the culture's numeric literal format
func (v *View) Number() NumberFormat { return v.number }

// Abbreviation returns the preferred abbreviation for a unit, if registered
func (v *View) Abbreviation(d unit.Dimension, raw uint8) (string, bool) {
	a, ok := v.preferred[d][raw]
	return a, ok
}

// Resolve maps an abbreviation token to a raw unit value, 0 on miss
func (v *View) Resolve(d unit.Dimension, token string) uint8 {
	return v.reverse[d][token]
}

// Abbreviations lists every (unit, abbreviation) pair visible to this view
// for a dimension, sorted by unit then abbreviation. Used by exports and
// round-trip tests.
func (v *View) Abbreviations(d unit.Dimension) map[uint8][]string {
	out := make(map[uint8][]string)
	for a, raw := range v.reverse[d] {
		out[raw] = append(out[raw], a)
	}
	for raw := range out {
		sort.Strings(out[raw])
	}
	return out
}
