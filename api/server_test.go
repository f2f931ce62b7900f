// Package api - HTTP surface tests
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	return NewServer("test")
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var resp struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v (%s)", err, w.Body.String())
	}
	return resp.Error
}

// TestConvert checks the happy path of POST /convert
func TestConvert(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/convert",
		`{"input": "1ft 2in", "dimension": "length", "to": "cm"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ConvertResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if math.Abs(resp.Value-35.56) > 1e-9 {
		t.Errorf("value = %v, want 35.56", resp.Value)
	}
	if resp.Unit != "cm" {
		t.Errorf("unit = %q, want cm", resp.Unit)
	}
	if resp.Formatted != "35.56 cm" {
		t.Errorf("formatted = %q, want %q", resp.Formatted, "35.56 cm")
	}
}

// TestConvertWithCulture checks culture-specific parsing and digits
func TestConvertWithCulture(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/convert",
		`{"input": "5,5 km", "dimension": "length", "to": "m", "culture": "de", "digits": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ConvertResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Value != 5500 {
		t.Errorf("value = %v, want 5500", resp.Value)
	}
	if resp.Formatted != "5.500 m" {
		t.Errorf("formatted = %q, want %q (German grouping)", resp.Formatted, "5.500 m")
	}
}

// TestConvertErrors checks the error envelope and status mapping
func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing to", `{"input": "5 m", "dimension": "length"}`, "INPUT_ERROR"},
		{"bad json", `{`, "INPUT_ERROR"},
		{"unknown dimension", `{"input": "5 m", "dimension": "charm", "to": "m"}`, "INPUT_ERROR"},
		{"unknown target unit", `{"input": "5 m", "dimension": "length", "to": "bogus"}`, "UNKNOWN_UNIT"},
		{"unknown input unit", `{"input": "5 xyz", "dimension": "length", "to": "m"}`, "UNKNOWN_UNIT"},
		{"empty input", `{"input": "", "dimension": "length", "to": "m"}`, "INPUT_ERROR"},
		{"no match", `{"input": "hello", "dimension": "length", "to": "m"}`, "NO_MATCH"},
		{"bad culture", `{"input": "5 m", "dimension": "length", "to": "m", "culture": "no-such-tag!"}`, "INPUT_ERROR"},
	}
	for _, tt := range tests {
		w := do(t, newTestServer(), http.MethodPost, "/convert", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, w.Code)
			continue
		}
		if got := decodeError(t, w); got.Code != tt.wantCode {
			t.Errorf("%s: code = %q, want %q", tt.name, got.Code, tt.wantCode)
		}
	}
}

// TestParse checks POST /parse
func TestParse(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/parse",
		`{"input": "1 ft and 2 in", "dimension": "length"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ParseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if math.Abs(resp.Base-0.3556) > 1e-9 {
		t.Errorf("base = %v, want 0.3556", resp.Base)
	}
	if resp.BaseUnit != "m" {
		t.Errorf("base unit = %q, want m", resp.BaseUnit)
	}
	if resp.Dimension != "length" {
		t.Errorf("dimension = %q, want length", resp.Dimension)
	}
}

// TestParseFragmentContext checks that parse errors surface their context
func TestParseFragmentContext(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/parse",
		`{"input": "1 ft bogus", "dimension": "length"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	got := decodeError(t, w)
	if got.Code != "INVALID_FRAGMENT" {
		t.Fatalf("code = %q, want INVALID_FRAGMENT", got.Code)
	}
	if got.Context["matched_unit"] != "ft" {
		t.Errorf("context matched_unit = %v, want ft", got.Context["matched_unit"])
	}
}

// TestUnits checks GET /units
func TestUnits(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/units?dimension=temperature&culture=de", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp UnitsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Dimension != "temperature" {
		t.Errorf("dimension = %q", resp.Dimension)
	}
	if len(resp.Units) != 3 {
		t.Fatalf("got %d units, want 3", len(resp.Units))
	}
	found := false
	for _, u := range resp.Units {
		if u.Name == "Celsius" && u.Preferred == "°C" {
			found = true
		}
	}
	if !found {
		t.Errorf("Celsius with °C not found in %+v", resp.Units)
	}
}

// TestCultures checks GET /cultures
func TestCultures(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/cultures", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Cultures []string `json:"cultures"`
		Count    int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Count == 0 || len(resp.Cultures) != resp.Count {
		t.Errorf("cultures = %v, count = %d", resp.Cultures, resp.Count)
	}
}

// TestHealthAndVersion checks the liveness endpoints
func TestHealthAndVersion(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/version", "")
	if w.Code != http.StatusOK {
		t.Fatalf("version status = %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp["version"] != "test" {
		t.Errorf("version = %q, want test", resp["version"])
	}
}
