package service

import (
	"net/http"

	"knowyourreps-backend/internal/statemap"
)

func (s Service) GetStates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statemap.All())
}

// GetStatesByInitial groups the state names the way the state dropdown lists them.
func (s Service) GetStatesByInitial(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statemap.ByInitial())
}

// ResolveState maps an abbreviation, a name or a near miss to the canonical
// state: GET /api/states/resolve?input=
func (s Service) ResolveState(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		s.writeError(w, http.StatusBadRequest, "Missing input parameter", "")
		return
	}
	state, ok := statemap.Resolve(input)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Unknown state", "")
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}
