package httpapi

import (
	"budgetd/internal/budget"
	"budgetd/internal/dates"
	"budgetd/internal/service/report"
)

type addTransactionRequest struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Amount      any      `json:"amount"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
}

// transactionResponse is a read-time projection: the stored canonical date
// comes back in display form.
type transactionResponse struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
}

func toTransactionResponse(t budget.Transaction) transactionResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return transactionResponse{
		ID:          t.ID,
		Date:        dates.ToDisplay(t.Date),
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		Tags:        tags,
		Notes:       t.Notes,
	}
}

type listTransactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

type addTransactionResponse struct {
	OK          bool                `json:"ok"`
	Transaction transactionResponse `json:"transaction"`
}

type budgetResponse struct {
	Month  string             `json:"month"`
	Limits map[string]float64 `json:"limits"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type breakdownLine struct {
	Category  string   `json:"category"`
	Limit     float64  `json:"limit"`
	Actual    float64  `json:"actual"`
	Remaining *float64 `json:"remaining"`
}

type reportResponse struct {
	Month            string          `json:"month"`
	Income           float64         `json:"income"`
	Expenses         float64         `json:"expenses"`
	Net              float64         `json:"net"`
	BurnRate         float64         `json:"burn_rate"`
	ForecastExpenses float64         `json:"forecast_expenses"`
	Breakdown        []breakdownLine `json:"breakdown"`
}

func toReportResponse(r report.Report) reportResponse {
	breakdown := make([]breakdownLine, 0, len(r.Breakdown))
	for _, line := range r.Breakdown {
		breakdown = append(breakdown, breakdownLine{
			Category:  line.Category,
			Limit:     line.Limit,
			Actual:    line.Actual,
			Remaining: line.Remaining,
		})
	}
	return reportResponse{
		Month:            r.Month,
		Income:           r.Income,
		Expenses:         r.Expenses,
		Net:              r.Net,
		BurnRate:         r.BurnRate,
		ForecastExpenses: r.ForecastExpenses,
		Breakdown:        breakdown,
	}
}
