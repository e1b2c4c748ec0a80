package httpapi

import (
	"encoding/json"
	"net/http"

	"budgetd/internal/service/transactions"
)

// listTransactions returns transactions matching the optional month,
// category and q query params, dates in display form.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := transactions.Filter{
		Month:    q.Get("month"),
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}
	txs, err := s.txSvc.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]transactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	toJSON(w, http.StatusOK, listTransactionsResponse{Transactions: out})
}

// addTransaction validates and persists a new transaction.
func (s *Server) addTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	tx, err := s.txSvc.Create(r.Context(), transactions.Input{
		ID:          req.ID,
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
		Notes:       req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	toJSON(w, http.StatusCreated, addTransactionResponse{OK: true, Transaction: toTransactionResponse(tx)})
}
