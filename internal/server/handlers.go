package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region request-types

// AssessRequest is the POST /assess body. Incidents are optional: when
// absent, the pipeline retrieves evidence from the corpus itself.
type AssessRequest struct {
	SessionID    string                  `json:"sessionId"`
	Features     thermal.AnomalyFeatures `json:"features"`
	RawModelText string                  `json:"rawModelText"`
	Incidents    []incident.Incident     `json:"incidents,omitempty"`
}

// TrendResponse is the GET /sessions/{id}/trend body.
type TrendResponse struct {
	SessionID        string            `json:"sessionId"`
	ObservationCount int               `json:"observationCount"`
	Report           trend.TrendReport `json:"report"`
}

// #endregion request-types

// #region handlers

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAssess runs the guard layer over a recorded model response.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	report, err := s.pipe.AssessRecorded(req.SessionID, req.Features, req.Incidents, req.RawModelText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleTrend analyzes the stored history of one session.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	observations, err := s.history.Session(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TrendResponse{
		SessionID:        sessionID,
		ObservationCount: len(observations),
		Report:           trend.AnalyzeTimed(observations),
	})
}

// #endregion handlers

// #region helpers

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// #endregion helpers
