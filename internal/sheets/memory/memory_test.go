package memory

import (
	"context"
	"testing"
)

func TestFetchKnownTab(t *testing.T) {
	s := New(map[string][][]string{
		"7": {{"a", "b"}, {"c"}},
	})
	rows, err := s.Fetch(context.Background(), "7")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(rows) != 2 || rows[0][1] != "b" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestFetchUnknownTab(t *testing.T) {
	s := New(nil)
	if _, err := s.Fetch(context.Background(), "0"); err == nil {
		t.Fatal("expected an error for an unknown tab")
	}
}

func TestSeededTabs(t *testing.T) {
	s := NewSeeded()
	for _, gid := range []string{"0", "1"} {
		rows, err := s.Fetch(context.Background(), gid)
		if err != nil {
			t.Fatalf("Fetch(%s): %v", gid, err)
		}
		if len(rows) == 0 {
			t.Fatalf("Fetch(%s) returned no rows", gid)
		}
	}
}
