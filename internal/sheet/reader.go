// Package sheet reads uploaded spreadsheet files into a logical row table
// (sheet name, header row, value rows) and extracts recurring-date reminders
// from tables that look like birthday lists.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mvasher/scribe/internal/model"
)

// IsSpreadsheet reports whether path has a recognized spreadsheet extension.
// Spreadsheet uploads take absolute priority over any other file handling.
func IsSpreadsheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls", ".csv", ".tsv":
		return true
	}
	return false
}

// ReadFile reads a spreadsheet file into its logical sheet shape. Workbook
// files use their first sheet and its name; CSV/TSV files use the file base
// name as the sheet name. A file that cannot be read or parsed is the one
// error condition that propagates to the caller.
func ReadFile(path string) (*model.Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return readCSV(path)
	default:
		return readWorkbook(path)
	}
}

func readWorkbook(path string) (*model.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	return tableFromRows(name, rows), nil
}

func readCSV(path string) (*model.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	if strings.ToLower(filepath.Ext(path)) == ".tsv" {
		reader.Comma = '\t'
	}
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return tableFromRows(name, records), nil
}

func tableFromRows(name string, rows [][]string) *model.Sheet {
	sh := &model.Sheet{Name: name}
	if len(rows) == 0 {
		return sh
	}
	for _, h := range rows[0] {
		sh.Headers = append(sh.Headers, strings.TrimSpace(h))
	}
	sh.Rows = rows[1:]
	return sh
}
