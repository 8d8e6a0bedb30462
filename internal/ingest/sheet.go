// Package ingest reads spreadsheet exports and feeds their rows to the
// linkage engine: application forms, TestGorilla assessment results and
// interviewer note sheets.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSheet parses an uploaded spreadsheet into a header row plus records.
// Cell values are returned in their string form, so numeric cells in
// logically-text columns (phone numbers, counties) arrive coerced rather
// than failing. Records shorter than the header are padded.
func ReadSheet(filename string, data []byte) ([]string, [][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	case ".csv":
		return readCSV(data)
	default:
		return nil, nil, fmt.Errorf("unsupported spreadsheet type: %s", filepath.Ext(filename))
	}
}

func readXLSX(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return splitHeader(rows)
}

func readCSV(data []byte) ([]string, [][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged exports are common
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	return splitHeader(rows)
}

func splitHeader(rows [][]string) ([]string, [][]string, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}
	headers := rows[0]
	records := rows[1:]
	for i, rec := range records {
		for len(rec) < len(headers) {
			rec = append(rec, "")
		}
		records[i] = rec
	}
	return headers, records, nil
}
