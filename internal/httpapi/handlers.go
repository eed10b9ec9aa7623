package httpapi

import (
	"encoding/json"
	"net/http"

	"evoserve/internal/evo"
	"evoserve/internal/svcerr"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	ids := s.reg.IDs()
	s.logger.Printf("event=list_runs count=%d", len(ids))
	writeJSON(w, http.StatusOK, listRunsResponse{RunIDs: ids})
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, svcerr.BadRequest("malformed request body"))
		return
	}

	runID, err := evo.Create(r.Context(), s.reg, req.toConfig(), s.scorer)
	if err != nil {
		s.logger.Printf("event=create_run result=error error=%q", err)
		s.writeError(w, err)
		return
	}
	s.logger.Printf("event=create_run result=ok run_id=%s", runID)
	writeJSON(w, http.StatusOK, createRunResponse{RunID: runID})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	snap, err := s.reg.Snapshot(runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runStateFromSnapshot(snap))
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	snap, err := evo.Step(r.Context(), s.reg, runID, s.scorer)
	if err != nil {
		s.logger.Printf("event=step run_id=%s result=error error=%q", runID, err)
		s.writeError(w, err)
		return
	}
	s.logger.Printf("event=step run_id=%s result=ok generation=%d best_fitness=%v", runID, snap.Generation, snap.BestFitness)
	writeJSON(w, http.StatusOK, runStateFromSnapshot(snap))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	hist, err := s.reg.History(runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyFromHistory(hist))
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, svcerr.BadRequest("malformed request body"))
		return
	}

	snap, err := evo.Advance(r.Context(), s.reg, runID, req.Steps, s.scorer)
	if err != nil {
		s.logger.Printf("event=advance run_id=%s steps=%d result=error error=%q", runID, req.Steps, err)
		s.writeError(w, err)
		return
	}
	s.logger.Printf("event=advance run_id=%s steps=%d result=ok generation=%d", runID, req.Steps, snap.Generation)
	writeJSON(w, http.StatusOK, runStateFromSnapshot(snap))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch svcerr.KindOf(err) {
	case svcerr.KindBadRequest:
		status = http.StatusBadRequest
	case svcerr.KindNotFound:
		status = http.StatusNotFound
	case svcerr.KindInternal:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
