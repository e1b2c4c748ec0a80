package memory

// Package memory provides a simple in-memory implementation used for
// development and tests. It keeps code paths easy to follow while allowing
// us to plug in a real backend later.
import (
	"context"
	"sync"

	"budgetd/internal/budget"
)

// Store holds the document in memory behind an RWMutex. Load and Save copy
// the collections so callers never alias the stored state.
type Store struct {
	mu  sync.RWMutex
	doc budget.Document
}

// New constructs a store holding the default empty document.
func New() *Store {
	return &Store{doc: budget.DefaultDocument()}
}

// Seed replaces the stored document, for test setup.
func (s *Store) Seed(doc budget.Document) {
	s.mu.Lock()
	doc.Normalize()
	s.doc = doc
	s.mu.Unlock()
}

// Load returns a copy of the current document.
func (s *Store) Load(_ context.Context) (budget.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDoc(s.doc), nil
}

// Save replaces the stored document with a copy of doc.
func (s *Store) Save(_ context.Context, doc budget.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Normalize()
	s.doc = copyDoc(doc)
	return nil
}

func copyDoc(doc budget.Document) budget.Document {
	out := budget.Document{
		Budgets:      make([]budget.BudgetEntry, len(doc.Budgets)),
		Transactions: make([]budget.Transaction, len(doc.Transactions)),
		Settings:     doc.Settings,
	}
	for i, b := range doc.Budgets {
		limits := make(map[string]float64, len(b.Limits))
		for k, v := range b.Limits {
			limits[k] = v
		}
		out.Budgets[i] = budget.BudgetEntry{Month: b.Month, Limits: limits}
	}
	for i, t := range doc.Transactions {
		tags := make([]string, len(t.Tags))
		copy(tags, t.Tags)
		t.Tags = tags
		out.Transactions[i] = t
	}
	return out
}
