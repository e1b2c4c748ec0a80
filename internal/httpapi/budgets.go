package httpapi

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

// getBudget returns the limit table for a month, empty when unset.
func (s *Server) getBudget(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	limits, err := s.budgetSvc.Get(r.Context(), month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, budgetResponse{Month: month, Limits: limits})
}

// setBudget replaces the limit table for a month wholesale.
func (s *Server) setBudget(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Payload must be an object of {category: limit}")
		return
	}
	if err := s.budgetSvc.Set(r.Context(), month, payload); err != nil {
		s.writeError(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, okResponse{OK: true})
}
