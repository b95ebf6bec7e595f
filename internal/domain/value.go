package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind — дискриминатор закрытого варианта Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindDecimal
	KindDate
)

// Value — одно скалярное значение колонки бэкенда.
// Закрытый вариант (string | int | decimal | date | null) вместо interface{}:
// неизвестные колонки Aspect4 проходят насквозь без потери типа.
type Value struct {
	kind Kind
	str  string
	num  int64
	dec  decimal.Decimal
	date time.Time
}

// Null — пустое значение (в JSON — null).
func Null() Value { return Value{} }

// StringValue — строковое значение.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue — целочисленное значение.
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// DecimalValue — дробное значение; decimal сохраняет точность упакованных
// десятичных полей бэкенда до самой сериализации.
func DecimalValue(d decimal.Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// DateValue — календарная дата (в JSON — "YYYY-MM-DD").
func DateValue(t time.Time) Value { return Value{kind: KindDate, date: t} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text — строковая форма значения; для null — пустая строка.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindDecimal:
		return v.dec.String()
	case KindDate:
		return v.date.Format("2006-01-02")
	default:
		return ""
	}
}

// Date — календарная форма; (ok=false) для всех остальных видов.
func (v Value) Date() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}

// Int64 — целочисленная форма: int как есть, decimal усекается к нулю,
// числовая строка парсится. (ok=false) — значение не приводится к целому.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.num, true
	case KindDecimal:
		return v.dec.IntPart(), true
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.str), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// MarshalJSON — сериализация без потерь: числа остаются числами,
// даты — текстовой формой "YYYY-MM-DD".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return []byte(strconv.FormatInt(v.num, 10)), nil
	case KindDecimal:
		return []byte(v.dec.String()), nil
	case KindDate:
		return json.Marshal(v.date.Format("2006-01-02"))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON — обратное преобразование для чтения сохранённых результатов
// (cmd/validate-orders): целые → int, прочие числа → decimal, строки → string.
func (v *Value) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "null":
		*v = Null()
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return err
		}
		*v = StringValue(str)
		return nil
	case s == "true" || s == "false":
		// булевых колонок у бэкенда нет; храним как строку
		*v = StringValue(s)
		return nil
	default:
		if !strings.ContainsAny(s, ".eE") {
			n, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				*v = IntValue(n)
				return nil
			}
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("value: not a scalar: %s", s)
		}
		*v = DecimalValue(d)
		return nil
	}
}

// Fields — открытая запись бэкенда: имя колонки → значение.
type Fields map[string]Value

// Text — строковая форма поля; отсутствующее поле — пустая строка.
func (f Fields) Text(key string) string { return f[key].Text() }

// Int64 — целочисленная форма поля.
func (f Fields) Int64(key string) (int64, bool) { return f[key].Int64() }

// Has — есть ли поле в записи.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}
