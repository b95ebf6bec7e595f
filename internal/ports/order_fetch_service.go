package ports

import (
	"context"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// OrderFetchService — сервис выборки и сверки заказов.
type OrderFetchService interface {
	FetchOrders(ctx context.Context, params domain.FetchParams) (*domain.FetchResult, error)
}
