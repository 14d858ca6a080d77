package core

import "testing"

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"plain integer", "1234", 1234},
		{"indonesian thousands", "1.234.567", 1234567},
		{"us thousands", "1,234,567", 1234567},
		{"indonesian decimal", "1.234,56", 1234.56},
		{"us decimal", "1,234.56", 1234.56},
		{"rupiah prefix", "Rp 50.000", 50000},
		{"rupiah with spaces", "Rp 1.200.000", 1200000},
		{"single thousands group", "15.000", 15000},
		{"comma thousands group", "15,000", 15000},
		{"short decimal", "1234,56", 1234.56},
		{"sub one decimal", "0,5", 0.5},
		{"negative", "-2.500", -2500},
		{"negative decimal", "-12,5", -12.5},
		{"dash placeholder", "-", 0},
		{"stray text", "belum ada", 0},
		{"grouped with decimal", "1.234.567,89", 1234567.89},
		{"trailing separator", "1234,", 1234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCurrency(tt.in); got != tt.want {
				t.Fatalf("ParseCurrency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCurrencyDeterministic(t *testing.T) {
	inputs := []string{"Rp 1.234,56", "7.000.000", "-", "1,234.56"}
	for _, in := range inputs {
		first := ParseCurrency(in)
		for i := 0; i < 10; i++ {
			if got := ParseCurrency(in); got != first {
				t.Fatalf("ParseCurrency(%q) not deterministic: %v then %v", in, first, got)
			}
		}
	}
}

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionKind
		wantErr bool
	}{
		{"", KindExpense, false},
		{"expense", KindExpense, false},
		{"income", KindIncome, false},
		{"unpaid", KindUnpaid, false},
		{"saldo", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTransactionKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseTransactionKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseTransactionKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransactionKindColumn(t *testing.T) {
	if KindUnpaid.Column() != 1 || KindIncome.Column() != 2 || KindExpense.Column() != 3 {
		t.Fatalf("unexpected column mapping: unpaid=%d income=%d expense=%d",
			KindUnpaid.Column(), KindIncome.Column(), KindExpense.Column())
	}
}
