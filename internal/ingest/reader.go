package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row maps a trimmed header to the raw cell value.
type Row map[string]string

// Get returns the trimmed cell for col and whether it holds a value.
// Missing columns and blank cells are both treated as null.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Value returns the trimmed cell for col, or "" when null.
func (r Row) Value(col string) string {
	v, _ := r.Get(col)
	return v
}

// Table is an uploaded export read into memory.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the header row contains col.
func (t *Table) HasColumn(col string) bool {
	for _, h := range t.Headers {
		if h == col {
			return true
		}
	}
	return false
}

// ReadTable decodes an uploaded file into a Table. Files named *.xlsx are read
// from their first sheet, anything else is treated as CSV.
func ReadTable(content []byte, filename string) (*Table, error) {
	var records [][]string
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		records, err = readXLSX(content)
	} else {
		records, err = readCSV(content)
	}
	if err != nil {
		return nil, err
	}
	return newTable(records)
}

// decodeText strips a byte order mark (honouring UTF-16 ones) and replaces
// invalid UTF-8 sequences instead of failing.
func decodeText(content []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode file: %v", apperrors.ErrParse, err)
	}
	return out, nil
}

func readCSV(content []byte) ([][]string, error) {
	text, err := decodeText(content)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	// Bank exports are not strict about quoting or row width.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV: %v", apperrors.ErrParse, err)
	}
	return records, nil
}

func readXLSX(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %v", apperrors.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrParse)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", apperrors.ErrParse, sheets[0], err)
	}
	return rows, nil
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", apperrors.ErrParse)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i >= len(rec) {
				break
			}
			if _, seen := row[h]; seen {
				continue // first column wins on duplicate headers
			}
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
