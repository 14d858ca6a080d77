package core

import "errors"

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
	KindUnpaid  TransactionKind = "unpaid"
)

type (
	// TransactionKind selects which amount column gates a transaction listing.
	TransactionKind string

	// FinanceSummary holds the four headline figures of the dashboard.
	// JSON field names match the sheet's Indonesian terminology, which the
	// frontend already consumes.
	FinanceSummary struct {
		Unpaid  float64 `json:"uangBelumDisetor"`
		Income  float64 `json:"uangMasuk"`
		Expense float64 `json:"uangKeluar"`
		Balance float64 `json:"saldo"`
	}

	// MonthlyRecord is one month of activity within a year. Balance is the
	// running balance declared in-sheet for that month, never recomputed.
	MonthlyRecord struct {
		Year    int     `json:"year"`
		Month   string  `json:"month"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
		Balance float64 `json:"balance,omitempty"`
	}

	// YearlyRecord is a compact year total for the yearly chart.
	YearlyRecord struct {
		Year    int     `json:"year"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}

	// YearlySummary is extracted from a year header row and accumulated from
	// the month rows that follow it. Income starts at the year's opening
	// balance, not zero.
	YearlySummary struct {
		Year    int     `json:"year"`
		Unpaid  float64 `json:"unpaid"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
		Balance float64 `json:"balance"`
	}

	// Transaction is a single row of a year-scoped sheet, columns A-F.
	Transaction struct {
		Date        string  `json:"tanggal"`
		Unpaid      float64 `json:"belumDisetor"`
		Income      float64 `json:"uangMasuk"`
		Expense     float64 `json:"uangKeluar"`
		Description string  `json:"keterangan"`
		Note        string  `json:"info"`
	}

	// DashboardData is the full reconciled snapshot served to the frontend.
	DashboardData struct {
		Summary         FinanceSummary  `json:"summary"`
		MonthlyReport   []MonthlyRecord `json:"monthlyReport"`
		YearlyReport    []YearlyRecord  `json:"yearlyReport"`
		YearlySummaries []YearlySummary `json:"yearlySummaries"`
	}
)

var ErrUnknownKind = errors.New("unknown transaction kind")

// ParseTransactionKind maps a query-string value to a kind. An empty value
// defaults to expense, matching the historical endpoint behavior.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case "", string(KindExpense):
		return KindExpense, nil
	case string(KindIncome):
		return KindIncome, nil
	case string(KindUnpaid):
		return KindUnpaid, nil
	}
	return "", ErrUnknownKind
}

// Column returns the zero-based sheet column holding this kind's amount.
func (k TransactionKind) Column() int {
	switch k {
	case KindUnpaid:
		return 1
	case KindIncome:
		return 2
	default:
		return 3
	}
}
