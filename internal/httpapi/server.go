// Package httpapi exposes the evolutionary engine over HTTP: JSON in,
// JSON out, every non-2xx response an {"error": string} body. Routing is
// plain net/http.ServeMux pattern matching; no third-party router appears
// anywhere in the retrieval pack this repository was built from.
package httpapi

import (
	"log"
	"net/http"

	"evoserve/internal/evo"
)

// Server holds the dependencies every handler needs: the run registry,
// the scorer used to evaluate populations, and a logger for the
// key=value lines the list, create, step and advance handlers write.
type Server struct {
	reg    *evo.Registry
	scorer evo.Scorer
	logger *log.Logger
	mux    *http.ServeMux
}

// New builds a Server and mounts every route on its internal mux.
func New(reg *evo.Registry, scorer evo.Scorer, logger *log.Logger) *Server {
	s := &Server{reg: reg, scorer: scorer, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler so *Server can be passed straight to
// http.Server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /runs", s.handleListRuns)
	s.mux.HandleFunc("POST /runs", s.handleCreateRun)
	s.mux.HandleFunc("GET /runs/{id}", s.handleGetRun)
	s.mux.HandleFunc("POST /runs/{id}/step", s.handleStep)
	s.mux.HandleFunc("GET /runs/{id}/history", s.handleHistory)
	s.mux.HandleFunc("POST /runs/{id}/advance", s.handleAdvance)
}
