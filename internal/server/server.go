
// Package server is the HTTP front of the report converter.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"brightedge-report-api/internal/parser"
	"brightedge-report-api/pkg/logger"
)

// defaultMaxUpload matches the multipart limit the crawler upload used.
const defaultMaxUpload = 32 << 20

type Server struct {
	router    chi.Router
	parser    *parser.Parser
	log       *logger.Logger
	maxUpload int64
}

// New wires the routes. Every route is served at the root and again under
// /api, the prefix the report frontend calls.
func New(p *parser.Parser, l *logger.Logger, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUpload
	}
	s := &Server{
		router:    chi.NewRouter(),
		parser:    p,
		log:       l,
		maxUpload: maxUploadBytes,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(logRequest(l))
	s.router.Use(middleware.Recoverer)

	s.routes("")(s.router)
	s.router.Route("/api", s.routes("/api"))
	return s
}

func (s *Server) routes(prefix string) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", s.handleIndex(prefix+"/process-csv"))
		r.Get("/health", s.handleHealth)
		r.Get("/python", s.handleHello)
		r.Post("/process-csv", s.handleProcessCSV)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequest(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			l.Infof("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}
