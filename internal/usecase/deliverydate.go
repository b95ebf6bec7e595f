package usecase

import (
	"strconv"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// decodePackedDeliveryDate — раскодирует упаковку YYYYWWDD
// (год, ISO-неделя, день недели 1=понедельник..7=воскресенье).
// Неделя 1 — неделя, содержащая 4 января. Любой непригодный вход
// (null, 0, не 8 цифр, неправдоподобный год) — (ok=false), не ошибка:
// декодирование лишь обогащает строку заказа.
func decodePackedDeliveryDate(v domain.Value) (time.Time, bool) {
	if v.IsNull() {
		return time.Time{}, false
	}
	text := v.Text()
	if len(text) != 8 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(text[0:4])
	if err != nil || year < 1 {
		return time.Time{}, false
	}
	week, err := strconv.Atoi(text[4:6])
	if err != nil {
		return time.Time{}, false
	}
	weekday, err := strconv.Atoi(text[6:8])
	if err != nil {
		return time.Time{}, false
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	// понедельник недели 1: time.Weekday считает с воскресенья
	offset := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -offset)

	return week1Monday.AddDate(0, 0, (week-1)*7+(weekday-1)), true
}
