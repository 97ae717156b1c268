package dataset

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// XLSX WORKBOOK SOURCE
// =============================================================================
//
// WORKBOOK STRUCTURE:
//   | Sheet     | Columns                       |
//   |-----------|-------------------------------|
//   | Customers | customer_id, name, city       |
//   | Orders    | order_id, customer_id         |
//   | LineItems | order_id, item, category      |
//
//   Row 1 of each sheet is the header; data starts on row 2.
//   Sheet names are matched like headers ("LineItems" == "line_items").

// sheetNames maps logical table names to the sheet names the writer uses.
var sheetNames = map[string]string{
	TableCustomers: "Customers",
	TableOrders:    "Orders",
	TableLineItems: "LineItems",
}

// LoadXLSX reads a dataset from an XLSX workbook.
func LoadXLSX(path string) (*types.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	tables := make(map[string]*table, len(sheetNames))
	for _, name := range []string{TableCustomers, TableOrders, TableLineItems} {
		t, err := readSheet(f, name)
		if err != nil {
			return nil, err
		}
		tables[name] = t
	}
	return decodeTables(tables[TableCustomers], tables[TableOrders], tables[TableLineItems])
}

// readSheet finds the sheet for tableName and reads its rows.
func readSheet(f *excelize.File, tableName string) (*table, error) {
	sheet := ""
	for _, s := range f.GetSheetList() {
		if normalizeHeader(s) == normalizeHeader(tableName) {
			sheet = s
			break
		}
	}
	if sheet == "" {
		return nil, &SourceError{Table: tableName, Message: fmt.Sprintf("workbook has no %s sheet", sheetNames[tableName])}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &SourceError{Table: tableName, Message: fmt.Sprintf("sheet %s is empty", sheet)}
	}

	return &table{
		name:     tableName,
		headers:  rows[0],
		rows:     rows[1:],
		firstRow: 2,
	}, nil
}

// WriteXLSX writes ds as a workbook with one sheet per table.
func WriteXLSX(ds *types.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	customers, orders, lineItems := encodeTables(ds)
	for i, t := range []*table{customers, orders, lineItems} {
		sheet := sheetNames[t.name]
		if i == 0 {
			// reuse the default sheet so the workbook has no blank first tab
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, t); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheet writes the header and rows of t. Numeric cells are stored as
// numbers so the workbook sorts and filters correctly in a spreadsheet.
func writeSheet(f *excelize.File, sheet string, t *table) error {
	header := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, row := range t.rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			if n, err := strconv.Atoi(v); err == nil && isIDColumn(t.headers[j]) {
				cells[j] = n
			} else {
				cells[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func isIDColumn(header string) bool {
	return header == colCustomerID || header == colOrderID
}
