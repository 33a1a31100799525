// Package server exposes the assessment pipeline over HTTP. This is the
// boundary a dashboard would render; the API carries the same reports the
// CLI prints.
package server

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/abdulmannaan502/thermal-copilot/internal/pipeline"
)

// #region server

// Server routes assessment and trend requests to the pipeline.
type Server struct {
	pipe    *pipeline.Pipeline
	history pipeline.ObservationLog
	router  *mux.Router
}

// New wires the HTTP surface. The history log must be the same one the
// pipeline records into, or trend queries will not see past assessments.
func New(pipe *pipeline.Pipeline, history pipeline.ObservationLog) *Server {
	s := &Server{
		pipe:    pipe,
		history: history,
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/assess", s.handleAssess).Methods("POST")
	s.router.HandleFunc("/sessions/{id}/trend", s.handleTrend).Methods("GET")
}

// Handler returns the full middleware stack.
func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(os.Stdout, s.router)
}

// #endregion server
