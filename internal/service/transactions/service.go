// Package transactions validates, creates and lists transactions against the
// shared document.
package transactions

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"budgetd/internal/budget"
	"budgetd/internal/dates"
	"budgetd/internal/errs"
)

// Input carries the raw fields of a create request. Amount is kept as the
// decoded JSON value so the service owns the "must be a number" rule.
type Input struct {
	ID          string
	Date        string
	Amount      any
	Type        string
	Category    string
	Description string
	Tags        []string
	Notes       string
}

// Filter narrows List results. All fields are optional and conjunctive.
type Filter struct {
	// Month matches the YYYY-MM key of the canonical date exactly.
	Month string
	// Category matches case-insensitively.
	Category string
	// Query is a case-insensitive substring match on the description.
	Query string
}

// Service exposes transaction operations.
type Service interface {
	Create(ctx context.Context, in Input) (budget.Transaction, error)
	List(ctx context.Context, f Filter) ([]budget.Transaction, error)
}

type service struct {
	store budget.Store
}

// New constructs the service over a document store.
func New(store budget.Store) Service { return &service{store: store} }

// Create validates the input, appends the transaction to the document and
// persists it. Expense amounts supplied positive are negated before storage.
func (s *service) Create(ctx context.Context, in Input) (budget.Transaction, error) {
	date, err := dates.NormalizeInput(in.Date)
	if err != nil {
		return budget.Transaction{}, err
	}

	amount, ok := budget.ToNumber(in.Amount)
	if !ok {
		return budget.Transaction{}, errs.Invalid("amount", "Amount must be a number")
	}

	ttype := budget.TransactionType(in.Type)
	if ttype != budget.TypeExpense && ttype != budget.TypeIncome {
		return budget.Transaction{}, errs.Invalid("type", "type must be 'expense' or 'income'")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return budget.Transaction{}, errs.Invalid("category", "category is required")
	}

	if ttype == budget.TypeExpense && amount > 0 {
		amount = -amount
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	tx := budget.Transaction{
		ID:          in.ID,
		Date:        date,
		Amount:      amount,
		Type:        ttype,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Tags:        tags,
		Notes:       in.Notes,
	}
	if tx.ID == "" {
		tx.ID = newID()
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return budget.Transaction{}, err
	}
	if doc.HasTransaction(tx.ID) {
		return budget.Transaction{}, errs.InvalidWrap("id", "Duplicate transaction id", errs.ErrDuplicateID)
	}

	doc.Transactions = append(doc.Transactions, tx)
	if err := s.store.Save(ctx, doc); err != nil {
		return budget.Transaction{}, err
	}
	return tx, nil
}

// List returns transactions matching the filter in insertion order. Dates
// stay canonical; display conversion is an API-boundary projection.
func (s *service) List(ctx context.Context, f Filter) ([]budget.Transaction, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]budget.Transaction, 0, len(doc.Transactions))
	for _, t := range doc.Transactions {
		if f.Month != "" && dates.MonthKey(t.Date) != f.Month {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// newID returns a short unique token like "tx_9f2c41ab". Uniqueness is still
// re-checked against the document before the transaction is accepted.
func newID() string {
	raw := uuid.New()
	hex := strings.ReplaceAll(raw.String(), "-", "")
	return "tx_" + hex[:8]
}
