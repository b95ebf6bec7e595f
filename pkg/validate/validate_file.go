package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nordtex/aspect4-orders/internal/domain"
	"github.com/nordtex/aspect4-orders/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateFile — валидирует выгрузку как JSON (один результат выборки) или
// JSONL (результат на строку) и пишет канонический вывод в writer.
func ValidateFile(ctx context.Context, validator ports.ResultValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		if err := validateAndWrite(ctx, validator, raw, ow); err != nil {
			return "0 valid / 1 invalid", err
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		result, err := ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidateJSONLStream — читает JSONL из reader'а, валидирует каждую строку,
// валидные пишет в writer каноническим JSON одной строкой.
// Невалидные строки пропускаются и только считаются; пустые — игнорируются.
func ValidateJSONLStream(ctx context.Context, validator ports.ResultValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		if err := validateAndWrite(ctx, validator, lineBytes, ow); err != nil {
			res.InvalidLinesCount++
			continue
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// validateAndWrite — разбор, проверка инвариантов и канонический JSON-вывод.
func validateAndWrite(ctx context.Context, validator ports.ResultValidator, raw []byte, ow io.Writer) error {
	var result domain.FetchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := validator.Validate(ctx, &result); err != nil {
		return err
	}
	canonical, err := json.Marshal(&result)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(canonical); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}
