package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todoboard/internal/output"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version uint64 `json:"version"`
	Tasks   int    `json:"tasks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeBoard answers with the board as it is after the request's change.
// Ignored intents also land here, with the board unchanged.
func (s *Server) writeBoard(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, output.NewBoard(s.board.Snapshot()))
}

// health handles GET /health
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	snap := s.board.Snapshot()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: snap.Version,
		Tasks:   len(snap.Tasks),
	})
}

// getBoard handles GET /api/board
func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	s.writeBoard(w)
}

// addTask handles POST /api/tasks
func (s *Server) addTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := decodeBody(w, r, s.schemas.addTask, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	snap := s.board.Snapshot()
	category := snap.SelectedCategory
	if req.Category != nil {
		category = *req.Category
	}
	status := snap.SelectedStatus
	if req.Status != nil {
		status = *req.Status
	}

	s.board.AddTask(req.Text, category, status)
	s.writeBoard(w)
}

// deleteTask handles DELETE /api/tasks/{id}
func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	s.board.DeleteTask(chi.URLParam(r, "id"))
	s.writeBoard(w)
}

// toggleTask handles POST /api/tasks/{id}/toggle
func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	s.board.ToggleCompletion(chi.URLParam(r, "id"))
	s.writeBoard(w)
}

// reorder handles POST /api/reorder, the drop end of a drag.
func (s *Server) reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeBody(w, r, s.schemas.reorder, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.board.Reorder(req.ActiveID, req.OverID)
	s.writeBoard(w)
}

// setFilter handles PUT /api/filter
func (s *Server) setFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decodeBody(w, r, s.schemas.filter, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.board.SetFilterCategory(req.Category)
	s.writeBoard(w)
}

// setSelection handles PUT /api/selection
func (s *Server) setSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeBody(w, r, s.schemas.selection, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Category != nil {
		s.board.SetSelectedCategory(*req.Category)
	}
	if req.Status != nil {
		s.board.SetSelectedStatus(*req.Status)
	}
	s.writeBoard(w)
}
