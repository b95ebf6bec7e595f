package ports

import (
	"context"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// ResultValidator — проверка инвариантов собранного результата выборки.
type ResultValidator interface {
	Validate(ctx context.Context, result *domain.FetchResult) error
}
