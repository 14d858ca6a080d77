// Package memory provides a fixture-backed sheet source for development and
// tests.
package memory

import (
	"context"
	"fmt"

	"kas/internal/sheets"
)

type Store struct {
	tabs map[string][][]string
}

var _ sheets.Source = (*Store)(nil)

// New builds a store serving the given tabs, keyed by gid.
func New(tabs map[string][][]string) *Store {
	return &Store{tabs: tabs}
}

// NewSeeded returns a store with a small plausible ledger: a summary tab on
// gid 0 and a mixed year/month tab on gid 1.
func NewSeeded() *Store {
	return New(map[string][][]string{
		"0": {
			{"", "Belum Disetor", "Uang Masuk", "Uang Keluar", "Saldo"},
			{"Total", "2.500.000", "36.000.000", "14.500.000", "21.500.000"},
		},
		"1": {
			{"Laporan Kas", "", "", ""},
			{"", "", "", ""},
			{"", "Saldo Awal", "Belum Disetor", ""},
			{"2025", "5.000.000", "0", ""},
			{"Januari", "12.000.000", "4.000.000", "13.000.000"},
			{"Februari", "15.000.000", "5.000.000", "23.000.000"},
			{"Maret", "9.000.000", "5.500.000", "26.500.000"},
		},
	})
}

func (s *Store) Fetch(_ context.Context, gid string) ([][]string, error) {
	rows, ok := s.tabs[gid]
	if !ok {
		return nil, fmt.Errorf("unknown sheet tab %q", gid)
	}
	// Copy the outer slice so callers cannot reorder the fixture.
	out := make([][]string, len(rows))
	copy(out, rows)
	return out, nil
}
