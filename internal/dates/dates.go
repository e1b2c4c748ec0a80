// Package dates converts between the two accepted input date formats and the
// canonical storage form.
package dates

import (
	"time"

	"budgetd/internal/errs"
)

const (
	// Canonical is the storage layout, YYYY-MM-DD.
	Canonical = "2006-01-02"
	// Display is the user-facing layout, DD-MM-YYYY.
	Display = "02-01-2006"
)

// ErrMessage is the user-facing message for unparseable dates.
const ErrMessage = "Date must be DD-MM-YYYY or YYYY-MM-DD"

// NormalizeInput parses s as DD-MM-YYYY first and falls back to YYYY-MM-DD,
// returning the canonical form. The day-month-year reading always wins when a
// string happens to satisfy both layouts.
func NormalizeInput(s string) (string, error) {
	if t, err := time.Parse(Display, s); err == nil {
		return t.Format(Canonical), nil
	}
	if t, err := time.Parse(Canonical, s); err == nil {
		return t.Format(Canonical), nil
	}
	return "", errs.InvalidWrap("date", ErrMessage, errs.ErrInvalidDate)
}

// ToDisplay converts a canonical date to display form. Anything that is not
// valid canonical form comes back unchanged.
func ToDisplay(iso string) string {
	t, err := time.Parse(Canonical, iso)
	if err != nil {
		return iso
	}
	return t.Format(Display)
}

// MonthKey returns the YYYY-MM prefix of a canonical date. It is a plain
// string slice, not a calendar operation.
func MonthKey(iso string) string {
	if len(iso) < 7 {
		return iso
	}
	return iso[:7]
}
