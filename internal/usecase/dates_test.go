package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func TestResolveDateFilter_ExplicitRange(t *testing.T) {
	f, err := resolveDateFilter(domain.FetchParams{
		StartDate: "20240101",
		EndDate:   "20240331",
	}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinDate != 20240101 || f.MaxDate != 20240331 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestResolveDateFilter_Days(t *testing.T) {
	f, err := resolveDateFilter(domain.FetchParams{Days: 10}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinDate != 20240505 || f.MaxDate != 20240515 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestResolveDateFilter_DefaultWindow(t *testing.T) {
	f, err := resolveDateFilter(domain.FetchParams{}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinDate != 20240415 || f.MaxDate != 20240515 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

// Один заданный край без второго игнорируется — окно по умолчанию.
func TestResolveDateFilter_SingleSidedRangeIgnored(t *testing.T) {
	f, err := resolveDateFilter(domain.FetchParams{StartDate: "20240101"}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinDate != 20240415 || f.MaxDate != 20240515 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestResolveDateFilter_InvalidDates(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"too short", "2024011", "20240131"},
		{"not numeric", "2024-1-1", "20240131"},
		{"bad end", "20240101", "202401"},
		{"negative", "-0240101", "20240131"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveDateFilter(domain.FetchParams{
				StartDate: tc.start,
				EndDate:   tc.end,
			}, fixedNow)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Fatalf("expected ErrInvalidDateFormat, got: %v", err)
			}
		})
	}
}
