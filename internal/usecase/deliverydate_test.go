package usecase

import (
	"testing"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

func TestDecodePackedDeliveryDate(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Value
		want time.Time
	}{
		// неделя 5 2024 года начинается в понедельник 29 января
		{"week 5 monday", domain.StringValue("20240501"), time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)},
		{"week 5 friday", domain.StringValue("20240505"), time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)},
		// день недели не нормируется: 12 — это понедельник + 11 дней
		{"weekday overflow", domain.StringValue("20240512"), time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)},
		// неделя 1 2025 года начинается 30 декабря 2024
		{"week 1 spans year boundary", domain.StringValue("20250101"), time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)},
		// 4 января 2021 — понедельник
		{"jan 4 monday year", domain.StringValue("20210101"), time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)},
		// числовое значение из бэкенда приводится к тому же тексту
		{"integer input", domain.IntValue(20240501), time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := decodePackedDeliveryDate(tc.in)
			if !ok {
				t.Fatalf("expected ok for %v", tc.in)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("decode(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodePackedDeliveryDate_Unusable(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Value
	}{
		{"null", domain.Null()},
		{"zero", domain.IntValue(0)},
		{"too short", domain.StringValue("2024051")},
		{"too long", domain.StringValue("202405011")},
		{"not numeric", domain.StringValue("20a40501")},
		{"year zero", domain.StringValue("00000101")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := decodePackedDeliveryDate(tc.in); ok {
				t.Fatalf("expected not ok for %v", tc.in)
			}
		})
	}
}
