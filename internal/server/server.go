// Package server exposes numerize as a JSON HTTP API.
//
// Endpoints:
//
//	POST /api/numerize    body: {"text":"..."}
//	GET  /api/numerize?text=<text>
//	GET  /api/systems
//	GET  /healthz
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/az-ai-labs/numerizer/numerize"
)

// ---- JSON types ----------------------------------------------------------

type numerizeRequest struct {
	Text string `json:"text"`
}

type numerizeResponse struct {
	Input   string            `json:"input"`
	Output  string            `json:"output"`
	Numbers []numerize.Number `json:"numbers"`
}

type systemsResponse struct {
	Locales []numerize.Support `json:"locales"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- server --------------------------------------------------------------

// Options configures the handler.
type Options struct {
	MaxBodyBytes int64    // Request bodies above this size are rejected with 413
	CORSOrigins  []string // Allowed origins; "*" or an empty list allows any origin
}

type server struct {
	num  *numerize.Numerizer
	log  *zap.Logger
	opts Options
}

// New returns the API handler wrapped in CORS and request logging.
func New(num *numerize.Numerizer, log *zap.Logger, opts Options) http.Handler {
	s := &server{num: num, log: log, opts: opts}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/numerize", s.handleNumerize)
	mux.HandleFunc("/api/systems", s.handleSystems)
	mux.HandleFunc("/healthz", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	})

	return s.logRequests(c.Handler(mux))
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, s.log, status, errorResponse{Error: msg})
}

// ---- handlers ------------------------------------------------------------

func (s *server) handleNumerize(w http.ResponseWriter, r *http.Request) {
	var text string

	switch r.Method {
	case http.MethodGet:
		text = r.URL.Query().Get("text")
		if text == "" {
			s.writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
		var body numerizeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		if body.Text == "" {
			s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		text = body.Text
	default:
		w.Header().Set("Allow", "GET, POST")
		s.writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
		return
	}

	out, nums := s.num.Extract(text)
	if nums == nil {
		nums = []numerize.Number{}
	}
	writeJSON(w, s.log, http.StatusOK, numerizeResponse{Input: text, Output: out, Numbers: nums})
}

func (s *server) handleSystems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, s.log, http.StatusOK, systemsResponse{Locales: numerize.Supported()})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.log, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- middleware ----------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
