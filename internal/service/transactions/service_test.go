package transactions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"budgetd/internal/budget"
	"budgetd/internal/errs"
	"budgetd/internal/storage/memory"
)

func TestCreate_ExpenseSignNormalized(t *testing.T) {
	store := memory.New()
	svc := New(store)

	tx, err := svc.Create(context.Background(), Input{
		Date: "15-03-2024", Amount: 120.0, Type: "expense", Category: "groceries",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Amount != -120.0 {
		t.Fatalf("expected positive expense to be negated, got %v", tx.Amount)
	}
	if tx.Date != "2024-03-15" {
		t.Fatalf("expected canonical date, got %q", tx.Date)
	}

	// already-negative expense amounts are stored unchanged
	tx2, err := svc.Create(context.Background(), Input{
		Date: "16-03-2024", Amount: -50.0, Type: "expense", Category: "groceries",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx2.Amount != -50.0 {
		t.Fatalf("expected amount unchanged, got %v", tx2.Amount)
	}

	// income keeps the supplied sign, even negative
	tx3, err := svc.Create(context.Background(), Input{
		Date: "2024-03-17", Amount: -10.0, Type: "income", Category: "salary",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx3.Amount != -10.0 {
		t.Fatalf("expected income sign preserved, got %v", tx3.Amount)
	}
}

func TestCreate_GeneratedID(t *testing.T) {
	svc := New(memory.New())

	tx, err := svc.Create(context.Background(), Input{
		Date: "15-03-2024", Amount: 10, Type: "expense", Category: "misc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(tx.ID, "tx_") || len(tx.ID) != len("tx_")+8 {
		t.Fatalf("unexpected generated id %q", tx.ID)
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := New(memory.New())

	tx, err := svc.Create(context.Background(), Input{
		Date: "15-03-2024", Amount: 10, Type: "expense", Category: "  misc  ",
		Description: "  coffee  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Category != "misc" {
		t.Fatalf("expected trimmed category, got %q", tx.Category)
	}
	if tx.Description != "coffee" {
		t.Fatalf("expected trimmed description, got %q", tx.Description)
	}
	if tx.Tags == nil || len(tx.Tags) != 0 {
		t.Fatalf("expected empty tags, got %#v", tx.Tags)
	}
	if tx.Notes != "" {
		t.Fatalf("expected empty notes, got %q", tx.Notes)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	cases := []struct {
		name  string
		in    Input
		field string
		msg   string
	}{
		{"bad date", Input{Date: "nope", Amount: 1.0, Type: "expense", Category: "x"}, "date", "Date must be DD-MM-YYYY or YYYY-MM-DD"},
		{"bad amount", Input{Date: "15-03-2024", Amount: "abc", Type: "expense", Category: "x"}, "amount", "Amount must be a number"},
		{"missing amount", Input{Date: "15-03-2024", Amount: nil, Type: "expense", Category: "x"}, "amount", "Amount must be a number"},
		{"bad type", Input{Date: "15-03-2024", Amount: 1.0, Type: "transfer", Category: "x"}, "type", "type must be 'expense' or 'income'"},
		{"blank category", Input{Date: "15-03-2024", Amount: 1.0, Type: "expense", Category: "   "}, "category", "category is required"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.in)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if ve.Field != tc.field || ve.Message != tc.msg {
			t.Fatalf("%s: got field=%q msg=%q", tc.name, ve.Field, ve.Message)
		}
	}
}

func TestCreate_StringAmountCoerced(t *testing.T) {
	svc := New(memory.New())

	tx, err := svc.Create(context.Background(), Input{
		Date: "15-03-2024", Amount: "42.5", Type: "expense", Category: "misc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Amount != -42.5 {
		t.Fatalf("expected -42.5, got %v", tx.Amount)
	}
}

func TestCreate_DuplicateIDLeavesDocumentUnmodified(t *testing.T) {
	store := memory.New()
	svc := New(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{ID: "tx_fixed", Date: "15-03-2024", Amount: 10, Type: "expense", Category: "a"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, Input{ID: "tx_fixed", Date: "16-03-2024", Amount: 20, Type: "expense", Category: "b"})
	if err == nil || !errors.Is(err, errs.ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if err.Error() != "Duplicate transaction id" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	doc, _ := store.Load(ctx)
	if len(doc.Transactions) != 1 {
		t.Fatalf("document modified: %d transactions", len(doc.Transactions))
	}
	if doc.Transactions[0].Category != "a" {
		t.Fatalf("original transaction changed: %+v", doc.Transactions[0])
	}
}

func TestList_Filters(t *testing.T) {
	store := memory.New()
	store.Seed(budget.Document{
		Transactions: []budget.Transaction{
			{ID: "t1", Date: "2024-01-05", Amount: -10, Type: budget.TypeExpense, Category: "groceries", Description: "weekly shop"},
			{ID: "t2", Date: "2024-01-20", Amount: -20, Type: budget.TypeExpense, Category: "rent", Description: "January rent"},
			{ID: "t3", Date: "2024-02-01", Amount: 500, Type: budget.TypeIncome, Category: "salary", Description: "payday"},
		},
		Settings: budget.Settings{Currency: "EUR"},
	})
	svc := New(store)
	ctx := context.Background()

	byMonth, err := svc.List(ctx, Filter{Month: "2024-01"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byMonth) != 2 {
		t.Fatalf("expected 2 for month filter, got %d", len(byMonth))
	}

	// category matching is case-insensitive
	byCat, err := svc.List(ctx, Filter{Category: "Groceries"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byCat) != 1 || byCat[0].ID != "t1" {
		t.Fatalf("unexpected category filter result: %+v", byCat)
	}

	byQuery, err := svc.List(ctx, Filter{Query: "RENT"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].ID != "t2" {
		t.Fatalf("unexpected query filter result: %+v", byQuery)
	}

	both, err := svc.List(ctx, Filter{Month: "2024-01", Category: "rent", Query: "january"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(both) != 1 || both[0].ID != "t2" {
		t.Fatalf("filters are conjunctive, got %+v", both)
	}
}
