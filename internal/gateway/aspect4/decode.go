package aspect4

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/shopspring/decimal"
)

// rowNode — один групповой элемент ответа: плоские поля плюс вложенный
// список размеров (antalprstor2) у размерных операций.
type rowNode struct {
	fields domain.Fields
	sizes  []domain.Fields
}

// parseResponse — выбирает из ответа все элементы с именем group.
// SOAP Fault превращается в ошибку.
func parseResponse(r io.Reader, group string) ([]rowNode, error) {
	dec := xml.NewDecoder(r)
	var nodes []rowNode

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nodes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse response: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "Fault":
			return nil, parseFault(dec)
		case group:
			node, err := parseRowNode(dec)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", group, err)
			}
			nodes = append(nodes, node)
		}
	}
}

// parseRowNode — читает содержимое группового элемента до его закрытия.
func parseRowNode(dec *xml.Decoder) (rowNode, error) {
	node := rowNode{fields: domain.Fields{}}
	for {
		tok, err := dec.Token()
		if err != nil {
			return rowNode{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == domain.FieldSizeList {
				item, err := parseLeafRow(dec)
				if err != nil {
					return rowNode{}, err
				}
				node.sizes = append(node.sizes, item)
			} else {
				v, err := parseLeaf(dec, t)
				if err != nil {
					return rowNode{}, err
				}
				node.fields[t.Name.Local] = v
			}
		case xml.EndElement:
			return node, nil
		}
	}
}

// parseLeafRow — плоская запись из листовых элементов (один элемент
// antalprstor2).
func parseLeafRow(dec *xml.Decoder) (domain.Fields, error) {
	row := domain.Fields{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := parseLeaf(dec, t)
			if err != nil {
				return nil, err
			}
			row[t.Name.Local] = v
		case xml.EndElement:
			return row, nil
		}
	}
}

// parseLeaf — текст одного листового элемента с приведением типа.
// xsi:nil → null; неожиданные вложенные элементы пропускаются.
func parseLeaf(dec *xml.Decoder, start xml.StartElement) (domain.Value, error) {
	for _, attr := range start.Attr {
		if attr.Name.Local == "nil" && (attr.Value == "true" || attr.Value == "1") {
			if err := dec.Skip(); err != nil {
				return domain.Value{}, err
			}
			return domain.Null(), nil
		}
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return domain.Value{}, err
		}
		switch tok := tok.(type) {
		case xml.CharData:
			text.Write(tok)
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return domain.Value{}, err
			}
		case xml.EndElement:
			return coerceValue(text.String()), nil
		}
	}
}

func parseFault(dec *xml.Decoder) error {
	faultString := ""
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "faultstring" {
				v, err := parseLeaf(dec, t)
				if err == nil {
					faultString = v.Text()
				}
			} else if err := dec.Skip(); err != nil {
				break
			}
		case xml.EndElement:
			if faultString != "" {
				return fmt.Errorf("soap fault: %s", faultString)
			}
			return errors.New("soap fault")
		}
	}
	return errors.New("soap fault")
}

// coerceValue — числовой текст становится числом (целые — int, прочие —
// decimal без потери точности), остальное остаётся строкой.
func coerceValue(text string) domain.Value {
	s := strings.TrimSpace(text)
	if s == "" {
		return domain.StringValue("")
	}
	if isInteger(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return domain.IntValue(n)
		}
		// не влезло в int64 — decimal переживёт
		if d, err := decimal.NewFromString(s); err == nil {
			return domain.DecimalValue(d)
		}
		return domain.StringValue(s)
	}
	if isDecimalNumber(s) {
		if d, err := decimal.NewFromString(s); err == nil {
			return domain.DecimalValue(d)
		}
	}
	return domain.StringValue(s)
}

func isInteger(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i, r := range s {
		if i == 0 && r == '-' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isDecimalNumber(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return false
	}
	return isInteger(s[:dot]) && isInteger(s[dot+1:])
}
