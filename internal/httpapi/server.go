// Package httpapi wires the HTTP surface of the budgeting service.
// It keeps handlers thin, delegating the rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"budgetd/internal/budget"
	"budgetd/internal/service/budgets"
	"budgetd/internal/service/report"
	"budgetd/internal/service/transactions"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	store     budget.Store
	txSvc     transactions.Service
	budgetSvc budgets.Service
	reportSvc report.Service
	log       *slog.Logger
	rt        *chi.Mux
}

// New constructs the HTTP server with routes and middleware. The logger is
// used by request/response logging and panic recovery.
func New(store budget.Store, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		store:     store,
		txSvc:     transactions.New(store),
		budgetSvc: budgets.New(store),
		reportSvc: report.New(store),
		log:       logger,
		rt:        r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	// Budgets
	s.rt.Get("/api/budgets/{month}", s.getBudget)
	s.rt.Post("/api/budgets/{month}", s.setBudget)
	// Transactions
	s.rt.Get("/api/transactions", s.listTransactions)
	s.rt.Post("/api/transactions", s.addTransaction)
	// Reports
	s.rt.Get("/api/reports/{month}", s.monthReport)
	// Health (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	// Metrics
	s.rt.Handle("/metrics", metricsHandler())
	// Static index page
	s.rt.Handle("/*", http.FileServer(http.Dir("static")))
}
