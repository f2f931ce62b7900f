// Package api - thin HTTP layer over the quantity engine.
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs unit arithmetic itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"quantify/core/engine"
	"quantify/core/locale"
	"quantify/core/unit"
	"quantify/internal/config"
	"quantify/internal/errors"
	"quantify/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	registry *locale.Registry
}

// NewServer creates a new API server backed by the shared default registry
func NewServer(version string) *Server {
	return NewServerWithRegistry(version, locale.Default())
}

// NewServerWithRegistry creates a new API server with an explicit
// abbreviation registry
func NewServerWithRegistry(version string, registry *locale.Registry) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		registry: registry,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /convert", s.handleConvert)
	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /units", s.handleUnits)
	s.mux.HandleFunc("GET /cultures", s.handleCultures)
}

// handleConvert handles POST /convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.TypeInput, "invalid JSON body", err), http.StatusBadRequest)
		return
	}
	if req.To == "" {
		s.writeError(w, errors.Input("to is required"), http.StatusBadRequest)
		return
	}

	eng, tag, err := s.resolveTarget(req.Dimension, req.Culture)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	base, err := eng.Parse(req.Input, tag)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	raw := eng.ResolveUnit(req.To, tag)
	if raw == 0 {
		s.writeDomainError(w, errors.UnknownUnit(req.To))
		return
	}
	value, err := eng.Convert(base, raw)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	digits := config.Get().Output.FractionDigits
	if req.Digits != nil && *req.Digits >= 0 {
		digits = *req.Digits
	}
	formatted, err := eng.Format(base, raw, tag, digits)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	logging.Debug("convert",
		zap.String("input", req.Input),
		zap.String("dimension", eng.Dimension().String()),
		zap.String("target", req.To),
		zap.Float64("value", value))

	s.writeJSON(w, ConvertResponse{
		Input:     req.Input,
		Dimension: eng.Dimension().String(),
		Culture:   tag.String(),
		Base:      base,
		Value:     value,
		Unit:      s.registry.Abbreviation(tag, eng.Dimension(), raw),
		Formatted: formatted,
	}, http.StatusOK)
}

// handleParse handles POST /parse
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.TypeInput, "invalid JSON body", err), http.StatusBadRequest)
		return
	}

	eng, tag, err := s.resolveTarget(req.Dimension, req.Culture)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	base, err := eng.Parse(req.Input, tag)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	d := eng.Dimension()
	s.writeJSON(w, ParseResponse{
		Input:     req.Input,
		Dimension: d.String(),
		Culture:   tag.String(),
		Base:      base,
		BaseUnit:  s.registry.Abbreviation(tag, d, unit.BaseUnitOf(d)),
	}, http.StatusOK)
}

// handleUnits handles GET /units
func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	eng, tag, err := s.resolveTarget(r.URL.Query().Get("dimension"), r.URL.Query().Get("culture"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	d := eng.Dimension()
	accepted := s.registry.View(tag).Abbreviations(d)
	units := make([]UnitInfo, 0, unit.Count(d))
	for raw := uint8(1); int(raw) <= unit.Count(d); raw++ {
		units = append(units, UnitInfo{
			Name:      unit.NameOf(d, raw),
			Preferred: s.registry.Abbreviation(tag, d, raw),
			Accepted:  accepted[raw],
		})
	}

	s.writeJSON(w, UnitsResponse{
		Dimension: d.String(),
		Culture:   tag.String(),
		Units:     units,
	}, http.StatusOK)
}

// handleCultures handles GET /cultures
func (s *Server) handleCultures(w http.ResponseWriter, r *http.Request) {
	cultures := s.registry.Cultures()
	s.writeJSON(w, map[string]interface{}{
		"cultures": cultures,
		"count":    len(cultures),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "quantify",
		"api_version": "v1",
	}, http.StatusOK)
}

// resolveTarget picks the engine and culture tag for a request.
// An empty dimension defaults to length, an empty culture to the
// invariant culture.
func (s *Server) resolveTarget(dimension, culture string) (*engine.Engine, language.Tag, error) {
	if dimension == "" {
		dimension = unit.Length.String()
	}
	eng, err := engine.For(dimension)
	if err != nil {
		return nil, language.Und, err
	}

	tag := language.Und
	if culture != "" {
		tag, err = language.Parse(culture)
		if err != nil {
			return nil, language.Und, errors.Wrap(errors.TypeInput, "invalid culture tag", err).
				WithContext("culture", culture)
		}
	}
	return eng, tag, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError maps a domain error onto the error envelope, defaulting
// to a bad request: every parse taxonomy type describes faulty input.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.IsType(err, errors.TypeInternal) || errors.IsType(err, errors.TypeUnsupportedUnit) {
		status = http.StatusInternalServerError
	}
	s.writeError(w, err, status)
}

func (s *Server) writeError(w http.ResponseWriter, err error, status int) {
	body := ErrorBody{Code: string(errors.TypeInternal), Message: err.Error()}
	if derr, ok := err.(*errors.Error); ok {
		body.Code = string(derr.Type)
		body.Message = derr.Message
		body.Context = derr.Context
	}
	s.writeJSON(w, map[string]interface{}{"error": body}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
