package ports

import (
	"context"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// Gateway — узкие табличные запросы Aspect4. Каждый метод возвращает
// конечный набор плоских записей; сверкой занимается слой usecase.
type Gateway interface {
	// ListOrders — список заказов клиента; orderNumber — необязательный
	// точный фильтр по номеру заказа.
	ListOrders(ctx context.Context, customerNumber string, searchLimit int, orderNumber string) ([]domain.Fields, error)

	// ListOrderLines — строки заказа.
	ListOrderLines(ctx context.Context, orderNumber int64) ([]domain.Fields, error)

	// ListStatusLines — статусные строки (ход поставки).
	ListStatusLines(ctx context.Context, orderNumber int64) ([]domain.Fields, error)

	// ListOrderLineSizes — размеры по строкам заказа.
	ListOrderLineSizes(ctx context.Context, orderNumber int64) ([]domain.SizeGroup, error)

	// ListStatusLineSizes — отгруженные размеры по статусным строкам.
	ListStatusLineSizes(ctx context.Context, orderNumber int64) ([]domain.SizeGroup, error)
}
