package domain

import "encoding/json"

// SizeEntry — количество одного ростовочного размера в строке заказа.
// Extra — прочие колонки бэкенда (EAN, цена и т.п.), в JSON разворачиваются
// на верхний уровень объекта.
type SizeEntry struct {
	Size  string
	Qty   int
	Extra Fields
}

// MarshalJSON — {"size":..., "qty":..., <extra-поля>}.
func (e SizeEntry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Extra)+2)
	for k, v := range e.Extra {
		m[k] = v
	}
	m["size"] = e.Size
	m["qty"] = e.Qty
	return json.Marshal(m)
}

// UnmarshalJSON — обратная операция: size/qty извлекаются, остальное — в Extra.
func (e *SizeEntry) UnmarshalJSON(raw []byte) error {
	var m map[string]Value
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	e.Size = m["size"].Text()
	if n, ok := m["qty"].Int64(); ok {
		e.Qty = int(n)
	}
	delete(m, "size")
	delete(m, "qty")
	if len(m) > 0 {
		e.Extra = m
	} else {
		e.Extra = nil
	}
	return nil
}

// LineRecord — одна нормализованная строка заказа после сверки
// заказных и статусных данных.
type LineRecord struct {
	LineNumber     int64       `json:"line_number"`
	ItemNumber     string      `json:"item_number"`
	OrderDetails   Fields      `json:"order_details"`
	DeliveryStatus Fields      `json:"delivery_status"`
	SizesOrdered   []SizeEntry `json:"sizes_ordered"`
	SizesDelivered []SizeEntry `json:"sizes_delivered"`
	SizesPending   []SizeEntry `json:"sizes_pending"`
}

// OrderRecord — заказ с собранными строками.
type OrderRecord struct {
	OrderNumber      int64        `json:"order_number"`
	OrderDate        int          `json:"order_date"`
	OrderStatus      string       `json:"order_status"`
	WithinDateFilter bool         `json:"within_date_filter"`
	OrderLines       []LineRecord `json:"order_lines"`
}

// DateFilter — границы выборки по дате заказа (YYYYMMDD, 0 — без границы).
// Инвертированный диапазон (min > max) не исправляется: такая выборка
// просто ничего не находит.
type DateFilter struct {
	MinDate int `json:"min_date"`
	MaxDate int `json:"max_date"`
}

// FetchResult — итоговый ответ одной выборки.
// При досрочной остановке по limit сумма with+without может быть меньше
// total_orders_fetched: остаток списка не классифицируется.
type FetchResult struct {
	DateFilter         DateFilter    `json:"date_filter"`
	TotalOrdersFetched int           `json:"total_orders_fetched"`
	OrdersWithLines    int           `json:"orders_with_lines"`
	OrdersWithoutLines int           `json:"orders_without_lines"`
	Orders             []OrderRecord `json:"orders"`
}

// SizeGroup — сырой ответ размерных запросов: поля группы (включая номер
// строки) и вложенный список размеров.
type SizeGroup struct {
	Fields Fields
	Sizes  []Fields
}

// FetchParams — параметры выборки, уже разобранные транспортным слоем.
// Days и StartDate/EndDate взаимоисключающие: комбинацию отклоняет транспорт.
type FetchParams struct {
	CustomerNumber string
	OrderNumber    string
	Days           int
	StartDate      string
	EndDate        string
	Limit          int
	OrderStatus    string
}
