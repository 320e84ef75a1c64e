package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
)

// Spreadsheet layout: the first non-empty row is the header and must name
// the index and name columns; a resource column is optional. Columns may
// appear in any order and extra columns are ignored.
const (
	columnIndex    = "index"
	columnName     = "name"
	columnResource = "resource"
)

// LoadXLSX reads a catalog from one sheet of a workbook. An empty sheet name
// selects the first sheet. The sheet name is the archetype name.
func LoadXLSX(path, sheetName string) (*Catalog, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	var sheet *xlsx.Sheet
	if sheetName == "" {
		if len(file.Sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook %s has no sheets", ErrInvalidCatalog, path)
		}
		sheet = file.Sheets[0]
	} else {
		s, ok := file.Sheet[sheetName]
		if !ok {
			return nil, fmt.Errorf("%w: no sheet ( %s ) found in %s", ErrInvalidCatalog, sheetName, path)
		}
		sheet = s
	}

	pieces, err := readSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(sheet.Name, pieces)
}

func readSheet(sheet *xlsx.Sheet) ([]Piece, error) {
	cols := map[string]int{}
	var pieces []Piece

	for i, row := range sheet.Rows {
		values, err := rowValues(row)
		if err != nil {
			return nil, fmt.Errorf("sheet ( %s ) row %d: %w", sheet.Name, i+1, err)
		}
		if blank(values) {
			continue
		}

		if len(cols) == 0 {
			for j, v := range values {
				cols[strings.ToLower(v)] = j
			}
			if _, ok := cols[columnIndex]; !ok {
				return nil, fmt.Errorf("%w: sheet ( %s ) has no %q column", ErrInvalidCatalog, sheet.Name, columnIndex)
			}
			if _, ok := cols[columnName]; !ok {
				return nil, fmt.Errorf("%w: sheet ( %s ) has no %q column", ErrInvalidCatalog, sheet.Name, columnName)
			}
			continue
		}

		raw := column(values, cols, columnIndex)
		index, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet ( %s ) row %d: index %q is not an integer",
				ErrInvalidCatalog, sheet.Name, i+1, raw)
		}
		pieces = append(pieces, Piece{
			Index:    index,
			Name:     column(values, cols, columnName),
			Resource: column(values, cols, columnResource),
		})
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: sheet ( %s ) is empty", ErrInvalidCatalog, sheet.Name)
	}
	return pieces, nil
}

func rowValues(row *xlsx.Row) ([]string, error) {
	if row == nil {
		return nil, nil
	}
	values := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell == nil {
			continue
		}
		v, err := cell.FormattedValue()
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", j+1, err)
		}
		values[j] = strings.TrimSpace(v)
	}
	return values, nil
}

func column(values []string, cols map[string]int, name string) string {
	j, ok := cols[name]
	if !ok || j >= len(values) {
		return ""
	}
	return values[j]
}

func blank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
