package packinglist

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// ReadCSV parses a comma separated packing list.
func ReadCSV(r io.Reader) ([]*domain.Box, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv packing list: %w", err)
	}
	return Parse(rows)
}

// ReadXLSX parses the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) ([]*domain.Box, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx packing list: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx packing list: sheet %q: %w", sheet, err)
	}
	return Parse(rows)
}

// ReadJSON parses an array of records keyed by the packing list headers,
// as exported by spreadsheet tools.
func ReadJSON(r io.Reader) ([]*domain.Box, error) {
	var records []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("read json packing list: %w", err)
	}

	header := []string{ColNo, ColItem, ColWidth, ColLength, ColHeight, ColWeight, ColStackable}
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)
	for _, rec := range records {
		byHeader := make(map[string]any, len(rec))
		for k, v := range rec {
			byHeader[normalizeHeader(k)] = v
		}

		row := make([]string, len(header))
		for i, h := range header {
			row[i] = cellString(byHeader[normalizeHeader(h)])
		}
		rows = append(rows, row)
	}
	return Parse(rows)
}

// ReadFile picks a reader from the file extension: .csv, .xlsx or .json.
func ReadFile(path string) ([]*domain.Box, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open packing list: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	case ".json":
		return ReadJSON(f)
	}
	return nil, fmt.Errorf("open packing list: unsupported file type %q", filepath.Ext(path))
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
