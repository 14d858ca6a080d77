package report

import "kas/internal/core"

// Summary cell block on the dashboard tab: row 2, columns B-E.
const (
	summaryRow        = 1
	summaryColUnpaid  = 1
	summaryColIncome  = 2
	summaryColExpense = 3
	summaryColBalance = 4
)

// readDirectSummary lifts the headline figures from their fixed cells.
func readDirectSummary(rows [][]string) core.FinanceSummary {
	return core.FinanceSummary{
		Unpaid:  core.ParseCurrency(cellAt(rows, summaryRow, summaryColUnpaid)),
		Income:  core.ParseCurrency(cellAt(rows, summaryRow, summaryColIncome)),
		Expense: core.ParseCurrency(cellAt(rows, summaryRow, summaryColExpense)),
		Balance: core.ParseCurrency(cellAt(rows, summaryRow, summaryColBalance)),
	}
}

// ReconcileSummary picks the authoritative source for the headline figures.
// The sheet is user-edited and often mid-edit for the current year, so the
// policy prefers a plausible answer over a parsing failure:
//
//  1. the live summary cells, when they carry a nonzero income;
//  2. the year's aggregated summary, balance taken verbatim (the sheet's own
//     running balance, never income minus expense);
//  3. sums over the year's month records, with unpaid still read from the
//     live cells and balance degraded to income minus expense;
//  4. the static fallback.
func ReconcileSummary(direct core.FinanceSummary, summaries []core.YearlySummary, months []core.MonthlyRecord, year int, fallback core.FinanceSummary) core.FinanceSummary {
	if direct.Income != 0 {
		return direct
	}
	for _, s := range summaries {
		if s.Year == year {
			return core.FinanceSummary{
				Unpaid:  s.Unpaid,
				Income:  s.Income,
				Expense: s.Expense,
				Balance: s.Balance,
			}
		}
	}
	var income, expense float64
	seen := false
	for _, m := range months {
		if m.Year == year {
			income += m.Income
			expense += m.Expense
			seen = true
		}
	}
	if seen {
		return core.FinanceSummary{
			Unpaid:  direct.Unpaid,
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		}
	}
	return fallback
}

// BuildDashboard assembles the full snapshot from the two fetched tabs.
// Empty sections fall back individually, so a half-filled sheet still renders.
func BuildDashboard(summaryRows, mixedRows [][]string, year int, fallback core.DashboardData) core.DashboardData {
	direct := readDirectSummary(summaryRows)
	summaries, monthly := Aggregate(mixedRows)

	data := core.DashboardData{
		Summary:         ReconcileSummary(direct, summaries, monthly, year, fallback.Summary),
		MonthlyReport:   monthly,
		YearlyReport:    yearlyFromSummaries(summaries),
		YearlySummaries: summaries,
	}
	if len(data.MonthlyReport) == 0 {
		data.MonthlyReport = fallback.MonthlyReport
	}
	if len(data.YearlyReport) == 0 {
		data.YearlyReport = fallback.YearlyReport
	}
	return data
}
