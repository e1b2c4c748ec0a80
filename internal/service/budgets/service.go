// Package budgets manages the per-month category limit table.
package budgets

import (
	"context"
	"fmt"
	"strings"

	"budgetd/internal/budget"
	"budgetd/internal/errs"
)

// Service exposes budget table operations.
type Service interface {
	Get(ctx context.Context, month string) (map[string]float64, error)
	Set(ctx context.Context, month string, limits map[string]any) error
}

type service struct {
	store budget.Store
}

// New constructs the service over a document store.
func New(store budget.Store) Service { return &service{store: store} }

// Get returns the limits configured for month, or an empty map.
func (s *service) Get(ctx context.Context, month string) (map[string]float64, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Limits(month), nil
}

// Set validates and upserts the limit table for month. The limit set is
// replaced wholesale, never merged: callers resend the complete map.
func (s *service) Set(ctx context.Context, month string, limits map[string]any) error {
	clean := make(map[string]float64, len(limits))
	for k, v := range limits {
		if strings.TrimSpace(k) == "" {
			return errs.Invalid("category", "Category names must be non-empty strings")
		}
		val, ok := budget.ToNumber(v)
		if !ok {
			return errs.Invalid(k, fmt.Sprintf("Limit for %s must be a number", k))
		}
		if val < 0 {
			return errs.Invalid(k, fmt.Sprintf("Limit for %s must be >= 0", k))
		}
		clean[k] = val
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Budgets {
		if doc.Budgets[i].Month == month {
			doc.Budgets[i].Limits = clean
			return s.store.Save(ctx, doc)
		}
	}
	doc.Budgets = append(doc.Budgets, budget.BudgetEntry{Month: month, Limits: clean})
	return s.store.Save(ctx, doc)
}
