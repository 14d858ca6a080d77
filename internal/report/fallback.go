package report

import "kas/internal/core"

// FallbackData returns the static dataset substituted when the spreadsheet is
// unreachable or empty. Built fresh per call so no caller can mutate a shared
// copy; injected into the service rather than read as a global.
func FallbackData() core.DashboardData {
	return core.DashboardData{
		Summary: core.FinanceSummary{
			Unpaid:  5000000,
			Income:  156000000,
			Expense: 45000000,
			Balance: 111000000,
		},
		MonthlyReport: []core.MonthlyRecord{
			{Year: 2026, Month: "Jan", Income: 12000000, Expense: 4000000},
			{Year: 2026, Month: "Feb", Income: 15000000, Expense: 5000000},
			{Year: 2026, Month: "Mar", Income: 10000000, Expense: 3000000},
		},
		YearlyReport: []core.YearlyRecord{
			{Year: 2023, Income: 150000000, Expense: 50000000},
			{Year: 2024, Income: 180000000, Expense: 60000000},
		},
		YearlySummaries: []core.YearlySummary{
			{Year: 2026, Unpaid: 5000000, Income: 156000000, Expense: 45000000, Balance: 111000000},
		},
	}
}
