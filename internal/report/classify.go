// Package report turns raw sheet rows into the dashboard model: row
// classification, per-year aggregation, summary reconciliation and the
// on-demand transaction listing.
package report

import (
	"regexp"
	"strconv"

	"kas/internal/core"
)

// The ledger uses full Indonesian month names on detail rows.
var monthNames = map[string]bool{
	"Januari": true, "Februari": true, "Maret": true, "April": true,
	"Mei": true, "Juni": true, "Juli": true, "Agustus": true,
	"September": true, "Oktober": true, "November": true, "Desember": true,
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

type RowKind int

const (
	RowSkip RowKind = iota
	RowYearHeader
	RowMonthDetail
)

type (
	// YearHeader carries the values of a "2026"-style row. Column B is the
	// balance carried over from the prior year, column C the funds collected
	// but not yet deposited.
	YearHeader struct {
		Year           int
		OpeningBalance float64
		Unpaid         float64
	}

	// MonthDetail carries the values of a month row. RunningBalance is the
	// cumulative balance the sheet itself computed for that month.
	MonthDetail struct {
		Month          string
		Income         float64
		Expense        float64
		RunningBalance float64
	}

	// ClassifiedRow is the discriminated result of Classify. Only the field
	// matching Kind is populated; downstream code never goes back to raw
	// column indices.
	ClassifiedRow struct {
		Kind  RowKind
		Year  YearHeader
		Month MonthDetail
	}
)

// Classify tags one raw row. Rules apply in order, first match wins: blank
// label, four-digit year header, known month name while a year is active.
// Everything else is skipped silently; stray rows are normal in this sheet.
func Classify(row []string, yearActive bool) ClassifiedRow {
	label := trimmedCell(row, 0)
	if label == "" {
		return ClassifiedRow{Kind: RowSkip}
	}
	if yearPattern.MatchString(label) {
		year, _ := strconv.Atoi(label)
		return ClassifiedRow{
			Kind: RowYearHeader,
			Year: YearHeader{
				Year:           year,
				OpeningBalance: core.ParseCurrency(cell(row, 1)),
				Unpaid:         core.ParseCurrency(cell(row, 2)),
			},
		}
	}
	if yearActive && monthNames[label] {
		return ClassifiedRow{
			Kind: RowMonthDetail,
			Month: MonthDetail{
				Month:          label,
				Income:         core.ParseCurrency(cell(row, 1)),
				Expense:        core.ParseCurrency(cell(row, 2)),
				RunningBalance: core.ParseCurrency(cell(row, 3)),
			},
		}
	}
	return ClassifiedRow{Kind: RowSkip}
}
