package usecase

import (
	"testing"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

func TestStatusAccepts(t *testing.T) {
	cases := []struct {
		name   string
		filter string
		status string
		want   bool
	}{
		{"no filter passes everything", "", "что угодно", true},
		{"done matches completed", StatusFilterDone, domain.StatusCompleted, true},
		{"done rejects open", StatusFilterDone, "Åben", false},
		{"open rejects completed", StatusFilterOpen, domain.StatusCompleted, false},
		{"open matches anything else", StatusFilterOpen, "Åben", true},
		{"exact match", "Plukket", "Plukket", true},
		{"exact mismatch", "Plukket", "Åben", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusAccepts(tc.filter, tc.status); got != tc.want {
				t.Fatalf("statusAccepts(%q, %q) = %v, want %v", tc.filter, tc.status, got, tc.want)
			}
		})
	}
}

func TestDateAccepts(t *testing.T) {
	full := domain.DateFilter{MinDate: 20240101, MaxDate: 20240131}

	cases := []struct {
		name   string
		filter domain.DateFilter
		date   int
		want   bool
	}{
		{"inside range", full, 20240115, true},
		{"lower bound inclusive", full, 20240101, true},
		{"upper bound inclusive", full, 20240131, true},
		{"below range", full, 20231231, false},
		{"above range", full, 20240201, false},
		{"no min bound passes", domain.DateFilter{MaxDate: 20240131}, 20991231, true},
		{"no max bound passes", domain.DateFilter{MinDate: 20240101}, 19990101, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dateAccepts(tc.filter, tc.date); got != tc.want {
				t.Fatalf("dateAccepts(%+v, %d) = %v, want %v", tc.filter, tc.date, got, tc.want)
			}
		})
	}
}
