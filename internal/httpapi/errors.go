package httpapi

import (
	"errors"
	"net/http"

	"budgetd/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, msg string) {
	toJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError maps validation failures to 400 and everything else (storage
// I/O, encoding) to 500. Internal failures are logged, never echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		badRequest(w, ve.Message)
		return
	}
	s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	toJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
