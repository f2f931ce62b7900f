// Package api - request and response shapes for the HTTP surface.
package api

// ConvertRequest asks for a quantity string to be expressed in another unit.
type ConvertRequest struct {
	// Input is a free-form quantity string, possibly several value/unit
	// pairs which are summed ("1ft 2in").
	Input string `json:"input"`

	// Dimension names the physical dimension of the input.
	Dimension string `json:"dimension"`

	// To is the target unit, as an abbreviation or symbolic name.
	To string `json:"to"`

	// Culture is a BCP 47 tag governing number format and abbreviations.
	// Empty means the invariant culture.
	Culture string `json:"culture,omitempty"`

	// Digits bounds the fraction digits of the formatted result.
	// Absent means the server default.
	Digits *int `json:"digits,omitempty"`
}

// ConvertResponse is the result of a conversion.
type ConvertResponse struct {
	Input     string  `json:"input"`
	Dimension string  `json:"dimension"`
	Culture   string  `json:"culture"`
	Base      float64 `json:"base"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// ParseRequest asks for a quantity string to be parsed into its base unit.
type ParseRequest struct {
	Input     string `json:"input"`
	Dimension string `json:"dimension"`
	Culture   string `json:"culture,omitempty"`
}

// ParseResponse is the parsed quantity in the dimension's base unit.
type ParseResponse struct {
	Input     string  `json:"input"`
	Dimension string  `json:"dimension"`
	Culture   string  `json:"culture"`
	Base      float64 `json:"base"`
	BaseUnit  string  `json:"base_unit"`
}

// UnitInfo describes one unit under the effective culture.
type UnitInfo struct {
	Name      string   `json:"name"`
	Preferred string   `json:"preferred"`
	Accepted  []string `json:"accepted"`
}

// UnitsResponse lists the units of one dimension.
type UnitsResponse struct {
	Dimension string     `json:"dimension"`
	Culture   string     `json:"culture"`
	Units     []UnitInfo `json:"units"`
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
