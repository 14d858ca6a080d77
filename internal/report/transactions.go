package report

import "kas/internal/core"

// Year-scoped transaction sheets carry a three-row header block and are
// scanned up to row 500.
const (
	txFirstRow = 3
	txRowLimit = 500
)

// ExtractTransactions materializes the detail rows of a year-scoped sheet.
// A row is included only when the kind's gating column parses to an amount
// strictly greater than zero; blanks, dashes and stray text gate the row out.
func ExtractTransactions(rows [][]string, kind core.TransactionKind) []core.Transaction {
	gate := kind.Column()
	out := make([]core.Transaction, 0)
	limit := len(rows)
	if limit > txRowLimit {
		limit = txRowLimit
	}
	for i := txFirstRow; i < limit; i++ {
		row := rows[i]
		if core.ParseCurrency(cell(row, gate)) <= 0 {
			continue
		}
		out = append(out, core.Transaction{
			Date:        cell(row, 0),
			Unpaid:      core.ParseCurrency(cell(row, 1)),
			Income:      core.ParseCurrency(cell(row, 2)),
			Expense:     core.ParseCurrency(cell(row, 3)),
			Description: cell(row, 4),
			Note:        cell(row, 5),
		})
	}
	return out
}
