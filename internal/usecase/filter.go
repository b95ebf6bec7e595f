package usecase

import "github.com/nordtex/aspect4-orders/internal/domain"

// Специальные режимы фильтра статуса; любое другое непустое значение —
// точное сравнение со статусом заказа.
const (
	StatusFilterDone = "Done"
	StatusFilterOpen = "Open"
)

// statusAccepts — решает, проходит ли заказ фильтр статуса.
func statusAccepts(filter, orderStatus string) bool {
	switch filter {
	case "":
		return true
	case StatusFilterDone:
		return orderStatus == domain.StatusCompleted
	case StatusFilterOpen:
		return orderStatus != domain.StatusCompleted
	default:
		return orderStatus == filter
	}
}

// dateAccepts — фильтр по дате действует только при двух ненулевых границах,
// включительно с обеих сторон.
func dateAccepts(f domain.DateFilter, orderDate int) bool {
	if f.MinDate <= 0 || f.MaxDate <= 0 {
		return true
	}
	return f.MinDate <= orderDate && orderDate <= f.MaxDate
}
