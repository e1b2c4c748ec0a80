// Package report aggregates a month's transactions into totals, a
// per-category breakdown and a burn-rate forecast.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budgetd/internal/budget"
	"budgetd/internal/dates"
	"budgetd/internal/errs"
)

// Line is one category row of the breakdown. Remaining is nil when no limit
// is configured; a limit of zero is indistinguishable from no limit.
type Line struct {
	Category  string
	Limit     float64
	Actual    float64
	Remaining *float64
}

// Report holds the monthly totals. Expenses is a non-negative magnitude.
type Report struct {
	Month            string
	Income           float64
	Expenses         float64
	Net              float64
	BurnRate         float64
	ForecastExpenses float64
	Breakdown        []Line
}

// Service computes monthly reports.
type Service interface {
	Month(ctx context.Context, month string) (Report, error)
}

type service struct {
	store budget.Store
	now   func() time.Time
}

// New constructs the service over a document store.
func New(store budget.Store) Service { return &service{store: store, now: time.Now} }

const monthLayout = "2006-01"

// Month builds the report for a YYYY-MM month key.
func (s *service) Month(ctx context.Context, month string) (Report, error) {
	target, err := time.Parse(monthLayout, month)
	if err != nil {
		return Report{}, errs.Invalid("month", "month must be YYYY-MM")
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	limits := doc.Limits(month)

	var income, expenses float64
	actual := map[string]float64{}
	// first-seen order is the stable tie-break for equal actuals
	var order []string
	for _, t := range doc.Transactions {
		if dates.MonthKey(t.Date) != month {
			continue
		}
		if t.Amount > 0 {
			income += t.Amount
		}
		if t.Amount < 0 {
			expenses += -t.Amount
			if _, seen := actual[t.Category]; !seen {
				order = append(order, t.Category)
			}
			actual[t.Category] += -t.Amount
		}
	}

	daysInMonth := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	daysElapsed := daysInMonth
	if now := s.now(); now.Year() == target.Year() && now.Month() == target.Month() {
		daysElapsed = min(now.Day(), daysInMonth)
	}
	var burnRate float64
	if expenses > 0 {
		burnRate = expenses / float64(max(daysElapsed, 1))
	}
	forecast := burnRate * float64(daysInMonth)

	breakdown := make([]Line, 0, len(order))
	for _, cat := range order {
		limit := limits[cat]
		line := Line{Category: cat, Limit: limit, Actual: round2(actual[cat])}
		if limit != 0 {
			rem := round2(limit - actual[cat])
			line.Remaining = &rem
		}
		breakdown = append(breakdown, line)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return actual[breakdown[i].Category] > actual[breakdown[j].Category]
	})

	return Report{
		Month:            month,
		Income:           round2(income),
		Expenses:         round2(expenses),
		Net:              round2(income - expenses),
		BurnRate:         round2(burnRate),
		ForecastExpenses: round2(forecast),
		Breakdown:        breakdown,
	}, nil
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
