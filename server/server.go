// Package server exposes the image generator over HTTP for the quiz
// frontend.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/clumzy/freqgen/analytics"
	"github.com/clumzy/freqgen/assets"
	"github.com/clumzy/freqgen/compositor"
	"github.com/clumzy/freqgen/theme"
)

// allowedOrigins lists the frontends permitted to call the API.
var allowedOrigins = []string{
	"http://localhost",
	"http://localhost:1234",
	"https://just-maiyak.github.io",
	"https://station-r.club",
	"https://freqscan.yefimch.uk",
}

// Generator produces a base64 PNG for a request. The compositor implements
// it; tests substitute a stub.
type Generator interface {
	Generate(req compositor.Request) (string, error)
}

// Server routes API requests to the generator and the analytics store.
type Server struct {
	gen   Generator
	store *analytics.Store // optional; nil disables logging
}

// New wires a server. store may be nil.
func New(gen Generator, store *analytics.Store) *Server {
	return &Server{gen: gen, store: store}
}

// GenerateRequest is the JSON body of POST /api/generate.
type GenerateRequest struct {
	Station   string   `json:"station"`
	Name      string   `json:"name"`
	Verbatims []string `json:"verbatims"`
	Tags      []string `json:"tags"`
	Artists   []string `json:"artists"`
}

// GenerateResponse carries the rendered visual as a base64 PNG.
type GenerateResponse struct {
	Station string `json:"station"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

// Handler returns the full API handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/stats", s.handleStats)
	return withCORS(mux)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	image, err := s.gen.Generate(compositor.Request{
		Station:   req.Station,
		Name:      req.Name,
		Verbatims: req.Verbatims,
		Tags:      req.Tags,
		Artists:   req.Artists,
	})
	if err != nil {
		var stationErr *theme.InvalidStationError
		var assetErr *assets.AssetError
		switch {
		case errors.As(err, &stationErr):
			writeError(w, http.StatusUnprocessableEntity, stationErr.Error())
		case errors.As(err, &assetErr):
			log.Printf("asset failure: %v", err)
			writeError(w, http.StatusInternalServerError, "asset unavailable")
		default:
			log.Printf("generate failed: %v", err)
			writeError(w, http.StatusInternalServerError, "generation failed")
		}
		return
	}

	if s.store != nil {
		rec := analytics.Record{
			UserAgent: r.Header.Get("User-Agent"),
			Method:    r.Method,
			Path:      r.URL.Path,
			Station:   req.Station,
			Name:      req.Name,
			Verbatims: req.Verbatims,
			Tags:      req.Tags,
			Artists:   req.Artists,
		}
		// Logging must never fail the image response.
		if err := s.store.Log(rec); err != nil {
			log.Printf("analytics log failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Station: req.Station,
		Name:    req.Name,
		Image:   image,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusOK, map[string]int{"count": 0})
		return
	}
	count, err := s.store.Count()
	if err != nil {
		log.Printf("stats failed: %v", err)
		writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				break
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
