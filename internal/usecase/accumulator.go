package usecase

import "github.com/nordtex/aspect4-orders/internal/domain"

// resultAccumulator — счётчики и список заказов одной выборки.
// После достижения limit обход кандидатов прекращается: остаток списка не
// дотягивается и не классифицируется, total_orders_fetched при этом остаётся
// длиной исходного списка.
type resultAccumulator struct {
	result domain.FetchResult
	limit  int
}

func newResultAccumulator(filter domain.DateFilter, totalFetched, limit int) *resultAccumulator {
	return &resultAccumulator{
		result: domain.FetchResult{
			DateFilter:         filter,
			TotalOrdersFetched: totalFetched,
			Orders:             []domain.OrderRecord{},
		},
		limit: limit,
	}
}

// keep — заказ с хотя бы одной строкой попадает в выдачу.
func (a *resultAccumulator) keep(order domain.OrderRecord) {
	a.result.OrdersWithLines++
	a.result.Orders = append(a.result.Orders, order)
}

// skipEmpty — заказ без строк: штатное состояние отгруженных заказов,
// считается отдельно и в выдачу не попадает.
func (a *resultAccumulator) skipEmpty() {
	a.result.OrdersWithoutLines++
}

func (a *resultAccumulator) full() bool {
	return len(a.result.Orders) >= a.limit
}

func (a *resultAccumulator) snapshot() *domain.FetchResult {
	out := a.result
	return &out
}
