package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

// ErrInvalidDateFormat — start_date/end_date не в формате YYYYMMDD.
var ErrInvalidDateFormat = errors.New("dates must be in YYYYMMDD format")

// defaultWindowDays — окно выборки, если ни days, ни диапазон не заданы.
const defaultWindowDays = 30

// resolveDateFilter — приоритет источников: явный диапазон → days → последние
// 30 дней. days считается календарным вычитанием, не блоками по 24 часа.
// Один заданный край диапазона без второго игнорируется (поведение исходного
// бэкенда: границы учитываются только парой).
func resolveDateFilter(p domain.FetchParams, now time.Time) (domain.DateFilter, error) {
	if p.StartDate != "" && p.EndDate != "" {
		minDate, err := parseYMD(p.StartDate)
		if err != nil {
			return domain.DateFilter{}, err
		}
		maxDate, err := parseYMD(p.EndDate)
		if err != nil {
			return domain.DateFilter{}, err
		}
		return domain.DateFilter{MinDate: minDate, MaxDate: maxDate}, nil
	}

	if p.Days != 0 {
		past := now.AddDate(0, 0, -p.Days)
		return domain.DateFilter{MinDate: asYMD(past), MaxDate: asYMD(now)}, nil
	}

	past := now.AddDate(0, 0, -defaultWindowDays)
	return domain.DateFilter{MinDate: asYMD(past), MaxDate: asYMD(now)}, nil
}

func parseYMD(s string) (int, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return n, nil
}

func asYMD(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
