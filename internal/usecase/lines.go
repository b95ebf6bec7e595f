package usecase

import (
	"strings"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// expectedDeliveryDateKey — производное поле в order_details.
const expectedDeliveryDateKey = "expected_delivery_date"

// lineSources — сырые наборы одного заказа, уже полученные от шлюза.
type lineSources struct {
	orderLines      []domain.Fields
	statusLines     []domain.Fields
	orderLineSizes  []domain.SizeGroup
	statusLineSizes []domain.SizeGroup
}

// assembleLines — собирает нормализованные строки заказа из четырёх наборов.
// Два взаимоисключающих пути, выбираются один раз на заказ:
// статусные строки (несут ход поставки) — основной источник; при их
// отсутствии — строки заказа, и тогда весь заказ считается неотгруженным.
func assembleLines(src lineSources) []domain.LineRecord {
	ordered := buildSizeMap(src.orderLineSizes)
	delivered := buildSizeMap(src.statusLineSizes)

	// строки заказа по номеру строки — для дозаполнения order_details
	orderLineByNumber := make(map[int64]domain.Fields, len(src.orderLines))
	for _, row := range src.orderLines {
		if n, ok := row.Int64(domain.FieldLineNumber); ok && n != 0 {
			orderLineByNumber[n] = row
		}
	}

	switch {
	case len(src.statusLines) > 0:
		return assembleFromStatusLines(src.statusLines, orderLineByNumber, ordered, delivered)
	case len(src.orderLines) > 0:
		return assembleFromOrderLines(src.orderLines, ordered)
	default:
		return nil
	}
}

// assembleFromStatusLines — основной путь: по строке на каждую статусную
// запись, order_details подтягиваются из совпавшей строки заказа.
func assembleFromStatusLines(
	statusLines []domain.Fields,
	orderLineByNumber map[int64]domain.Fields,
	ordered, delivered map[int64][]domain.SizeEntry,
) []domain.LineRecord {
	records := make([]domain.LineRecord, 0, len(statusLines))
	for _, statusLine := range statusLines {
		lineNumber, _ := statusLine.Int64(domain.FieldLineNumber)
		rec := newLineRecord(lineNumber, statusLine)

		if orderLine, ok := orderLineByNumber[lineNumber]; ok {
			rec.OrderDetails = detailFields(orderLine)
			attachExpectedDeliveryDate(rec.OrderDetails, orderLine)
		}
		rec.DeliveryStatus = detailFields(statusLine)

		if s, ok := ordered[lineNumber]; ok {
			rec.SizesOrdered = s
		}
		if s, ok := delivered[lineNumber]; ok {
			rec.SizesDelivered = s
		}

		switch {
		case len(rec.SizesOrdered) > 0 && len(rec.SizesDelivered) > 0:
			rec.SizesPending = pendingSizes(rec.SizesOrdered, rec.SizesDelivered)
		case len(rec.SizesOrdered) > 0:
			// ничего не отгружено: к поставке весь заказ, записи как есть
			rec.SizesPending = rec.SizesOrdered
		}

		records = append(records, rec)
	}
	return records
}

// assembleFromOrderLines — запасной путь без статусных строк: сведений о
// поставке нет, всё заказанное числится к поставке.
func assembleFromOrderLines(
	orderLines []domain.Fields,
	ordered map[int64][]domain.SizeEntry,
) []domain.LineRecord {
	records := make([]domain.LineRecord, 0, len(orderLines))
	for _, orderLine := range orderLines {
		lineNumber, _ := orderLine.Int64(domain.FieldLineNumber)
		rec := newLineRecord(lineNumber, orderLine)

		rec.OrderDetails = detailFields(orderLine)
		attachExpectedDeliveryDate(rec.OrderDetails, orderLine)

		if s, ok := ordered[lineNumber]; ok {
			rec.SizesOrdered = s
			rec.SizesPending = s
		}

		records = append(records, rec)
	}
	return records
}

func newLineRecord(lineNumber int64, row domain.Fields) domain.LineRecord {
	return domain.LineRecord{
		LineNumber:     lineNumber,
		ItemNumber:     itemNumber(row),
		OrderDetails:   domain.Fields{},
		DeliveryStatus: domain.Fields{},
		SizesOrdered:   []domain.SizeEntry{},
		SizesDelivered: []domain.SizeEntry{},
		SizesPending:   []domain.SizeEntry{},
	}
}

// itemNumber — составной артикул из пяти полей в порядке бэкенда.
// Отсутствующее поле даёт пустой сегмент, строка не отбрасывается.
func itemNumber(row domain.Fields) string {
	parts := make([]string, 0, len(domain.ItemNumberFields))
	for _, field := range domain.ItemNumberFields {
		parts = append(parts, row.Text(field))
	}
	return strings.Join(parts, "-")
}

// detailFields — копия записи без составного артикула и ключей соединения.
func detailFields(row domain.Fields) domain.Fields {
	out := make(domain.Fields, len(row))
	for k, v := range row {
		if _, excluded := domain.ExcludedLineFields[k]; excluded {
			continue
		}
		out[k] = v
	}
	return out
}

func attachExpectedDeliveryDate(details domain.Fields, orderLine domain.Fields) {
	if !orderLine.Has(domain.FieldPackedDeliveryDate) {
		return
	}
	if d, ok := decodePackedDeliveryDate(orderLine[domain.FieldPackedDeliveryDate]); ok {
		details[expectedDeliveryDateKey] = domain.DateValue(d)
	}
}
