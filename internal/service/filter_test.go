package service

import (
	"testing"
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

var filterTxs = []model.Transaction{
	{ID: "txn_001", Date: "2025-03-10", Amount: -7899, Description: "Sephora Haul", Category: "Beauty"},
	{ID: "txn_002", Date: "2025-03-08", Amount: -25000, Description: "Pilates Plus Studio", Category: "Fitness"},
	{ID: "txn_003", Date: "2025-03-05", Amount: 350000, Description: "Paycheck", Category: "Income"},
	{ID: "txn_004", Date: "2025-02-28", Amount: -15000, Description: "Whole Foods", Category: "Groceries"},
	{ID: "txn_005", Date: "not-a-date", Amount: -10000, Description: "Mystery", Category: "Misc"},
}

func ids(txs []model.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func cents(v int64) *int64 { return &v }

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "empty filter keeps everything in order",
			filter: Filter{},
			want:   []string{"txn_001", "txn_002", "txn_003", "txn_004", "txn_005"},
		},
		{
			name:   "amount range is sign agnostic",
			filter: Filter{Min: cents(10000), Max: cents(30000)},
			want:   []string{"txn_002", "txn_004", "txn_005"},
		},
		{
			name:   "min only",
			filter: Filter{Min: cents(20000)},
			want:   []string{"txn_002", "txn_003"},
		},
		{
			name:   "category is an exact match",
			filter: Filter{Category: "Fitness"},
			want:   []string{"txn_002"},
		},
		{
			name:   "category mismatch on case",
			filter: Filter{Category: "fitness"},
			want:   []string{},
		},
		{
			name:   "date range is inclusive and drops unparseable dates",
			filter: Filter{Start: date(t, "2025-02-28"), End: date(t, "2025-03-08")},
			want:   []string{"txn_002", "txn_003", "txn_004"},
		},
		{
			name:   "single day",
			filter: Filter{Start: date(t, "2025-03-10"), End: date(t, "2025-03-10")},
			want:   []string{"txn_001"},
		},
		{
			name:   "predicates combine with AND",
			filter: Filter{Start: date(t, "2025-03-01"), Min: cents(10000), Category: "Fitness"},
			want:   []string{"txn_002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(filterTxs))
			if !equalIDs(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("2025-03-01", "2025-03-31", "100", "200.50", "Beauty")
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if f.Start == nil || f.End == nil {
		t.Fatal("date bounds not set")
	}
	if *f.Min != 10000 || *f.Max != 20050 {
		t.Errorf("Min/Max = %d/%d, want 10000/20050", *f.Min, *f.Max)
	}
	if f.Category != "Beauty" {
		t.Errorf("Category = %q, want Beauty", f.Category)
	}
}

func TestParseFilterErrors(t *testing.T) {
	tests := []struct {
		name                         string
		from, to, min, max, category string
	}{
		{name: "bad start date", from: "03/01/2025"},
		{name: "bad end date", to: "yesterday"},
		{name: "bad min", min: "lots"},
		{name: "bad max", max: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFilter(tt.from, tt.to, tt.min, tt.max, tt.category); err == nil {
				t.Error("ParseFilter succeeded, want error")
			}
		})
	}
}
