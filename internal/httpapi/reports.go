package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

// monthReport computes the monthly totals, breakdown and forecast.
func (s *Server) monthReport(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	rep, err := s.reportSvc.Month(r.Context(), month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, toReportResponse(rep))
}
