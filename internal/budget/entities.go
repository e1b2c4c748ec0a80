package budget

import "strconv"

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	// TypeExpense transactions are stored with a non-positive amount.
	TypeExpense TransactionType = "expense"
	// TypeIncome transactions keep the amount exactly as supplied.
	TypeIncome TransactionType = "income"
)

// Transaction is a single dated movement of money. Date is always held in
// canonical YYYY-MM-DD form; display conversion happens at the API boundary.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Notes       string          `json:"notes"`
}

// BudgetEntry holds the spending limits for one month. At most one entry per
// distinct month value exists in a Document.
type BudgetEntry struct {
	Month  string             `json:"month"`
	Limits map[string]float64 `json:"limits"`
}

// Settings carries user preferences. Current logic only stores them.
type Settings struct {
	Currency        string `json:"currency"`
	RolloverEnabled bool   `json:"rollover_enabled"`
}

// Document is the whole persisted state, read and written as one unit.
type Document struct {
	Budgets      []BudgetEntry `json:"budgets"`
	Transactions []Transaction `json:"transactions"`
	Settings     Settings      `json:"settings"`
}

// DefaultDocument returns the state used when nothing has been persisted yet.
func DefaultDocument() Document {
	return Document{
		Budgets:      []BudgetEntry{},
		Transactions: []Transaction{},
		Settings:     Settings{Currency: "EUR", RolloverEnabled: false},
	}
}

// Normalize replaces nil collections with empty ones so the document always
// serializes budgets/transactions as arrays.
func (d *Document) Normalize() {
	if d.Budgets == nil {
		d.Budgets = []BudgetEntry{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	for i := range d.Transactions {
		if d.Transactions[i].Tags == nil {
			d.Transactions[i].Tags = []string{}
		}
	}
	for i := range d.Budgets {
		if d.Budgets[i].Limits == nil {
			d.Budgets[i].Limits = map[string]float64{}
		}
	}
}

// Limits returns the limit map for the first budget entry matching month, or
// an empty map when the month has no budget.
func (d Document) Limits(month string) map[string]float64 {
	for _, b := range d.Budgets {
		if b.Month == month {
			return b.Limits
		}
	}
	return map[string]float64{}
}

// HasTransaction reports whether a transaction with the given id exists.
func (d Document) HasTransaction(id string) bool {
	for _, t := range d.Transactions {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ToNumber coerces a decoded JSON value to a float64. Numeric-looking strings
// are accepted, matching the lenient inputs the API has always taken.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
