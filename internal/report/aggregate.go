package report

import (
	"sort"

	"kas/internal/core"
)

// Aggregate walks the mixed year/month sheet in document order and produces
// the per-year summaries plus the flat month list.
//
// The bookkeeping conventions come straight from how the sheet is laid out:
// a year's income starts at its opening balance and month incomes add to it,
// while balance is overwritten with each month's own running balance, so the
// summary ends up holding the last one seen. Month rows with neither income
// nor expense are placeholders and produce no record, though their running
// balance still lands in the year summary.
//
// Every year header appends a fresh summary. A repeated year value would
// yield two entries, with month rows feeding the first; the sheet has unique
// years, and lookup-by-first-match keeps that edge stable rather than hiding
// it behind a merge.
func Aggregate(rows [][]string) ([]core.YearlySummary, []core.MonthlyRecord) {
	var (
		summaries   []core.YearlySummary
		months      []core.MonthlyRecord
		currentYear int
	)

	for _, row := range rows {
		cr := Classify(row, currentYear > 0)
		switch cr.Kind {
		case RowYearHeader:
			currentYear = cr.Year.Year
			summaries = append(summaries, core.YearlySummary{
				Year:   currentYear,
				Unpaid: cr.Year.Unpaid,
				Income: cr.Year.OpeningBalance,
			})
		case RowMonthDetail:
			s := findSummary(summaries, currentYear)
			if s == nil {
				continue
			}
			s.Income += cr.Month.Income
			s.Expense += cr.Month.Expense
			s.Balance = cr.Month.RunningBalance
			if cr.Month.Income > 0 || cr.Month.Expense > 0 {
				months = append(months, core.MonthlyRecord{
					Year:    currentYear,
					Month:   cr.Month.Month[:3],
					Income:  cr.Month.Income,
					Expense: cr.Month.Expense,
					Balance: cr.Month.RunningBalance,
				})
			}
		}
	}

	// Months are chronological within each year group already; only the year
	// ordering is enforced, and stably, so in-year order is untouched.
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Year < months[j].Year
	})
	return summaries, months
}

func findSummary(summaries []core.YearlySummary, year int) *core.YearlySummary {
	for i := range summaries {
		if summaries[i].Year == year {
			return &summaries[i]
		}
	}
	return nil
}

// yearlyFromSummaries flattens the per-year summaries into chart records,
// ascending by year.
func yearlyFromSummaries(summaries []core.YearlySummary) []core.YearlyRecord {
	out := make([]core.YearlyRecord, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, core.YearlyRecord{Year: s.Year, Income: s.Income, Expense: s.Expense})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
