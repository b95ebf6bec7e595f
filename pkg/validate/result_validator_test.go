package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/pkg/validate"
)

func validResult() *domain.FetchResult {
	return &domain.FetchResult{
		DateFilter:         domain.DateFilter{MinDate: 20240101, MaxDate: 20240131},
		TotalOrdersFetched: 3,
		OrdersWithLines:    1,
		OrdersWithoutLines: 1,
		Orders: []domain.OrderRecord{
			{
				OrderNumber:      1001,
				OrderDate:        20240115,
				OrderStatus:      "Åben",
				WithinDateFilter: true,
				OrderLines: []domain.LineRecord{
					{
						LineNumber: 1,
						ItemNumber: "ART-BLU-100-XL-24",
						SizesOrdered: []domain.SizeEntry{
							{Size: "M", Qty: 10},
							{Size: "L", Qty: 5},
						},
						SizesDelivered: []domain.SizeEntry{
							{Size: "M", Qty: 4},
						},
						SizesPending: []domain.SizeEntry{
							{Size: "M", Qty: 6},
							{Size: "L", Qty: 5},
						},
					},
				},
			},
		},
	}
}

func TestResultValidator_Validate(t *testing.T) {
	v := validate.NewResultValidator()
	ctx := context.Background()

	t.Run("valid result", func(t *testing.T) {
		r := validResult()
		if err := v.Validate(ctx, r); err != nil {
			t.Fatalf("expected valid result, got: %v", err)
		}
	})

	type testCase struct {
		name       string
		makeResult func() *domain.FetchResult
		msg        string
	}

	cases := []testCase{
		{
			name:       "nil result",
			makeResult: func() *domain.FetchResult { return nil },
			msg:        "результат не может быть nil",
		},
		{
			name: "orders_with_lines mismatch",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.OrdersWithLines = 2
				return r
			},
			msg: "не совпадает с числом заказов",
		},
		{
			name: "classified more than fetched",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.TotalOrdersFetched = 1
				return r
			},
			msg: "больше заказов, чем выдал листинг",
		},
		{
			name: "negative counters",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.OrdersWithoutLines = -1
				return r
			},
			msg: "не могут быть отрицательными",
		},
		{
			name: "non-positive order number",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderNumber = 0
				return r
			},
			msg: "order_number должен быть положительным",
		},
		{
			name: "order outside date filter flag",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].WithinDateFilter = false
				return r
			},
			msg: "вне фильтра дат",
		},
		{
			name: "order date out of range",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderDate = 20231201
				return r
			},
			msg: "вне диапазона",
		},
		{
			name: "order without lines",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderLines = nil
				return r
			},
			msg: "без строк",
		},
		{
			name: "item number not composite",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderLines[0].ItemNumber = "ART-100"
				return r
			},
			msg: "не похож на составной артикул",
		},
		{
			name: "non-positive pending qty",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderLines[0].SizesPending[0].Qty = 0
				return r
			},
			msg: "должен быть положительным",
		},
		{
			name: "pending size not ordered",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderLines[0].SizesPending[0].Size = "XXL"
				return r
			},
			msg: "в остатке, но не в заказе",
		},
		{
			name: "pending exceeds ordered",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				r.Orders[0].OrderLines[0].SizesPending[1].Qty = 50
				return r
			},
			msg: "больше заказанного",
		},
		{
			name: "no deliveries but pending shrunk",
			makeResult: func() *domain.FetchResult {
				r := validResult()
				line := &r.Orders[0].OrderLines[0]
				line.SizesDelivered = nil
				line.SizesPending = line.SizesPending[:1]
				line.SizesPending[0].Qty = 10
				return r
			},
			msg: "остаток должен равняться заказу",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeResult())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidResult) {
				t.Fatalf("expected ErrInvalidResult, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected message %q in error, got: %v", tc.msg, err)
			}
		})
	}
}
