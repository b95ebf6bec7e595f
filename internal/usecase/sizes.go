package usecase

import "github.com/nordtex/aspect4-orders/internal/domain"

// buildSizeMap — группирует сырые размерные записи по номеру строки.
// Записи с пустым размером или неприводимым количеством молча пропускаются:
// это штатный мусор бэкенда, а не ошибка. Строки, для которых не осталось
// ни одного размера, в карту не попадают.
func buildSizeMap(groups []domain.SizeGroup) map[int64][]domain.SizeEntry {
	sizeMap := make(map[int64][]domain.SizeEntry, len(groups))
	for _, group := range groups {
		lineNumber, ok := group.Fields.Int64(domain.FieldLineNumber)
		if !ok || lineNumber == 0 {
			continue
		}

		var sizes []domain.SizeEntry
		for _, item := range group.Sizes {
			size := item[domain.FieldSize]
			qty := item[domain.FieldSizeQty]
			if size.IsNull() || size.Text() == "" || qty.IsNull() {
				continue
			}
			n, ok := qty.Int64()
			if !ok {
				continue
			}

			entry := domain.SizeEntry{Size: size.Text(), Qty: int(n)}
			for k, v := range item {
				if k == domain.FieldSize || k == domain.FieldSizeQty || v.IsNull() {
					continue
				}
				if entry.Extra == nil {
					entry.Extra = domain.Fields{}
				}
				entry.Extra[k] = v
			}
			sizes = append(sizes, entry)
		}

		if len(sizes) > 0 {
			sizeMap[lineNumber] = sizes
		}
	}
	return sizeMap
}

// pendingSizes — остаток к поставке по каждому размеру: заказано минус
// отгружено, только положительные остатки. Полностью отгруженные и
// переотгруженные размеры опускаются, отрицательных количеств не бывает.
func pendingSizes(ordered, delivered []domain.SizeEntry) []domain.SizeEntry {
	deliveredBySize := make(map[string]int, len(delivered))
	for _, e := range delivered {
		deliveredBySize[e.Size] = e.Qty
	}

	orderedBySize := make(map[string]int, len(ordered))
	order := make([]string, 0, len(ordered))
	for _, e := range ordered {
		if _, seen := orderedBySize[e.Size]; !seen {
			order = append(order, e.Size)
		}
		orderedBySize[e.Size] = e.Qty
	}

	pending := []domain.SizeEntry{}
	for _, size := range order {
		remainder := orderedBySize[size] - deliveredBySize[size]
		if remainder > 0 {
			pending = append(pending, domain.SizeEntry{Size: size, Qty: remainder})
		}
	}
	return pending
}
