package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/internal/ports"
)

// Проверка, что ResultValidator удовлетворяет интерфейсу ports.ResultValidator.
var _ ports.ResultValidator = (*ResultValidator)(nil)

// ErrInvalidResult — базовая (sentinel error) ошибка валидации.
var ErrInvalidResult = errors.New("fetch result validation failed")

// ResultValidator — проверка инвариантов собранного результата выборки.
// Используется CLI для контроля сохранённых выгрузок.
type ResultValidator struct{}

// NewResultValidator — конструктор ResultValidator.
func NewResultValidator() *ResultValidator { return &ResultValidator{} }

// Validate — проверяет счётчики ответа и каждый заказ.
// Возвращает ErrInvalidResult (с обёрнутой причиной) при любой проблеме.
func (v *ResultValidator) Validate(_ context.Context, result *domain.FetchResult) error {
	if result == nil {
		return fmt.Errorf("%w: результат не может быть nil", ErrInvalidResult)
	}
	if err := v.validateCounters(result); err != nil {
		return err
	}
	for i := range result.Orders {
		if err := v.validateOrder(&result.Orders[i], result.DateFilter); err != nil {
			return err
		}
	}
	return nil
}

// validateCounters — согласованность счётчиков.
// with+without может быть меньше total (досрочная остановка по лимиту),
// но больше total — никогда; with всегда равен длине orders.
func (v *ResultValidator) validateCounters(r *domain.FetchResult) error {
	if r.TotalOrdersFetched < 0 || r.OrdersWithLines < 0 || r.OrdersWithoutLines < 0 {
		return fmt.Errorf("%w: счётчики не могут быть отрицательными", ErrInvalidResult)
	}
	if r.OrdersWithLines != len(r.Orders) {
		return fmt.Errorf("%w: orders_with_lines=%d не совпадает с числом заказов %d",
			ErrInvalidResult, r.OrdersWithLines, len(r.Orders))
	}
	if r.OrdersWithLines+r.OrdersWithoutLines > r.TotalOrdersFetched {
		return fmt.Errorf("%w: классифицировано больше заказов, чем выдал листинг", ErrInvalidResult)
	}
	return nil
}

func (v *ResultValidator) validateOrder(o *domain.OrderRecord, filter domain.DateFilter) error {
	if o.OrderNumber <= 0 {
		return fmt.Errorf("%w: order_number должен быть положительным", ErrInvalidResult)
	}
	if !o.WithinDateFilter {
		return fmt.Errorf("%w: заказ %d вне фильтра дат не должен попадать в выдачу",
			ErrInvalidResult, o.OrderNumber)
	}
	if filter.MinDate > 0 && filter.MaxDate > 0 {
		if o.OrderDate < filter.MinDate || o.OrderDate > filter.MaxDate {
			return fmt.Errorf("%w: дата заказа %d (%d) вне диапазона [%d, %d]",
				ErrInvalidResult, o.OrderNumber, o.OrderDate, filter.MinDate, filter.MaxDate)
		}
	}
	if len(o.OrderLines) == 0 {
		return fmt.Errorf("%w: заказ %d без строк не должен попадать в выдачу",
			ErrInvalidResult, o.OrderNumber)
	}
	for i := range o.OrderLines {
		if err := v.validateLine(o.OrderNumber, &o.OrderLines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (v *ResultValidator) validateLine(orderNumber int64, line *domain.LineRecord) error {
	// составной артикул всегда из пяти сегментов
	if strings.Count(line.ItemNumber, "-") < 4 {
		return fmt.Errorf("%w: заказ %d строка %d: item_number %q не похож на составной артикул",
			ErrInvalidResult, orderNumber, line.LineNumber, line.ItemNumber)
	}

	orderedBySize := make(map[string]int, len(line.SizesOrdered))
	for _, e := range line.SizesOrdered {
		orderedBySize[e.Size] = e.Qty
	}

	for _, e := range line.SizesPending {
		if e.Qty <= 0 {
			return fmt.Errorf("%w: заказ %d строка %d: остаток размера %q должен быть положительным",
				ErrInvalidResult, orderNumber, line.LineNumber, e.Size)
		}
		ordered, ok := orderedBySize[e.Size]
		if !ok {
			return fmt.Errorf("%w: заказ %d строка %d: размер %q в остатке, но не в заказе",
				ErrInvalidResult, orderNumber, line.LineNumber, e.Size)
		}
		if e.Qty > ordered {
			return fmt.Errorf("%w: заказ %d строка %d: остаток размера %q (%d) больше заказанного (%d)",
				ErrInvalidResult, orderNumber, line.LineNumber, e.Size, e.Qty, ordered)
		}
	}

	// без отгрузки весь заказ числится к поставке
	if len(line.SizesDelivered) == 0 && len(line.SizesOrdered) > 0 {
		if len(line.SizesPending) != len(line.SizesOrdered) {
			return fmt.Errorf("%w: заказ %d строка %d: без отгрузки остаток должен равняться заказу",
				ErrInvalidResult, orderNumber, line.LineNumber)
		}
	}
	return nil
}
