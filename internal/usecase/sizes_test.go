package usecase

import (
	"testing"

	"github.com/nordtex/aspect4-orders/internal/domain"
)

func sizeGroup(lineNumber int64, sizes ...domain.Fields) domain.SizeGroup {
	return domain.SizeGroup{
		Fields: domain.Fields{domain.FieldLineNumber: domain.IntValue(lineNumber)},
		Sizes:  sizes,
	}
}

func TestBuildSizeMap(t *testing.T) {
	groups := []domain.SizeGroup{
		sizeGroup(1,
			domain.Fields{
				domain.FieldSize:    domain.StringValue("M"),
				domain.FieldSizeQty: domain.IntValue(10),
				"farve":             domain.StringValue("blå"),
				"note":              domain.Null(),
			},
			domain.Fields{
				domain.FieldSize:    domain.StringValue("L"),
				domain.FieldSizeQty: domain.IntValue(5),
			},
		),
		// пустой размер и null-количество выпадают
		sizeGroup(2,
			domain.Fields{
				domain.FieldSize:    domain.StringValue(""),
				domain.FieldSizeQty: domain.IntValue(3),
			},
			domain.Fields{
				domain.FieldSize:    domain.StringValue("S"),
				domain.FieldSizeQty: domain.Null(),
			},
		),
		// номер строки 0 — запись не привязать
		sizeGroup(0,
			domain.Fields{
				domain.FieldSize:    domain.StringValue("M"),
				domain.FieldSizeQty: domain.IntValue(1),
			},
		),
	}

	m := buildSizeMap(groups)

	if len(m) != 1 {
		t.Fatalf("expected single line in map, got %d", len(m))
	}
	sizes := m[1]
	if len(sizes) != 2 {
		t.Fatalf("line 1: expected 2 sizes, got %d", len(sizes))
	}
	if sizes[0].Size != "M" || sizes[0].Qty != 10 {
		t.Fatalf("unexpected first size: %+v", sizes[0])
	}
	if sizes[1].Size != "L" || sizes[1].Qty != 5 {
		t.Fatalf("unexpected second size: %+v", sizes[1])
	}

	// сопутствующие поля сохраняются, null и ключевые — нет
	if got := sizes[0].Extra.Text("farve"); got != "blå" {
		t.Fatalf("extra field lost: %+v", sizes[0].Extra)
	}
	if sizes[0].Extra.Has("note") || sizes[0].Extra.Has(domain.FieldSize) {
		t.Fatalf("unexpected extra keys: %+v", sizes[0].Extra)
	}
	if sizes[1].Extra != nil {
		t.Fatalf("expected no extras on second size: %+v", sizes[1].Extra)
	}
}

func TestPendingSizes_Subtraction(t *testing.T) {
	ordered := []domain.SizeEntry{
		{Size: "M", Qty: 10},
		{Size: "L", Qty: 5},
		{Size: "XL", Qty: 2},
	}
	delivered := []domain.SizeEntry{
		{Size: "M", Qty: 4},
		{Size: "L", Qty: 5},  // полностью отгружен
		{Size: "XL", Qty: 9}, // переотгрузка не даёт отрицательного остатка
	}

	pending := pendingSizes(ordered, delivered)

	if len(pending) != 1 {
		t.Fatalf("expected 1 pending entry, got %d: %+v", len(pending), pending)
	}
	if pending[0].Size != "M" || pending[0].Qty != 6 {
		t.Fatalf("unexpected pending: %+v", pending[0])
	}
}

func TestPendingSizes_DeliveredUnknownSizeIgnored(t *testing.T) {
	ordered := []domain.SizeEntry{{Size: "M", Qty: 3}}
	delivered := []domain.SizeEntry{{Size: "XXL", Qty: 2}}

	pending := pendingSizes(ordered, delivered)

	if len(pending) != 1 || pending[0].Size != "M" || pending[0].Qty != 3 {
		t.Fatalf("unexpected pending: %+v", pending)
	}
}

func TestPendingSizes_EmptyResultNotNil(t *testing.T) {
	pending := pendingSizes(
		[]domain.SizeEntry{{Size: "M", Qty: 2}},
		[]domain.SizeEntry{{Size: "M", Qty: 2}},
	)
	if pending == nil {
		t.Fatalf("pending must be an initialized slice")
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty pending, got %+v", pending)
	}
}
