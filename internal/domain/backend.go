package domain

// Имена колонок Aspect4 — контракт бэкенда, читаются как есть.
const (
	FieldOrderNumber = "t01.oordre" // номер заказа (ключ всех зависимых запросов)
	FieldLineNumber  = "t01.oorlin" // номер строки (ключ соединения четырёх наборов)
	FieldCustomer    = "t01.chgto"  // номер клиента
	FieldOrderDate   = "ordredato"  // дата заказа YYYYMMDD
	FieldStatus      = "status"     // текстовый статус заказа

	FieldComposite1 = "t01.felt1"
	FieldComposite2 = "t01.felt2"
	FieldComposite3 = "t01.felt3"
	FieldComposite4 = "t01.felt4"
	FieldComposite5 = "t01.felt5"

	FieldPackedDeliveryDate = "t01.senlv" // ожидаемая поставка в упаковке YYYYWWDD

	FieldSize     = "stor"  // ростовочный размер
	FieldSizeQty  = "antal" // количество размера
	FieldSizeList = "antalprstor2"
)

// StatusCompleted — каноническая метка полностью отгруженного заказа.
const StatusCompleted = "Færdig leveret"

// ItemNumberFields — порядок пяти составных полей артикула.
// Порядок felt2-felt3-felt1-felt5-felt4 задан бэкендом и воспроизводится
// дословно.
var ItemNumberFields = [5]string{
	FieldComposite2,
	FieldComposite3,
	FieldComposite1,
	FieldComposite5,
	FieldComposite4,
}

// ExcludedLineFields — поля, не попадающие в order_details/delivery_status:
// составной артикул и оба ключа соединения.
var ExcludedLineFields = map[string]struct{}{
	FieldComposite1:  {},
	FieldComposite2:  {},
	FieldComposite3:  {},
	FieldComposite4:  {},
	FieldComposite5:  {},
	FieldOrderNumber: {},
	FieldLineNumber:  {},
}
