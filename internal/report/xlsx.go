package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// XLSX REPORT
// =============================================================================
//
// WORKBOOK STRUCTURE:
//   | Sheet   | Columns                            |
//   |---------|------------------------------------|
//   | Groups  | Category, OrderId, Item, Customer  |
//   | Summary | Category, NumItems, Items          |

const (
	SheetGroups  = "Groups"
	SheetSummary = "Summary"
)

var (
	groupsHeader  = []interface{}{"Category", "OrderId", "Item", "Customer"}
	summaryHeader = []interface{}{"Category", "NumItems", "Items"}
)

// WriteXLSX saves groups as a workbook at path.
func WriteXLSX(path string, groups []types.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetGroups); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSummary, err)
	}

	rows := [][]interface{}{groupsHeader}
	for _, g := range groups {
		for _, r := range g.Rows {
			rows = append(rows, []interface{}{g.Key, r.OrderID, r.ItemName, r.CustomerName})
		}
	}
	if err := setRows(f, SheetGroups, rows); err != nil {
		return err
	}

	rows = [][]interface{}{summaryHeader}
	for _, s := range Summarize(groups) {
		rows = append(rows, []interface{}{s.Category, s.NumItems, strings.Join(s.Items, ", ")})
	}
	if err := setRows(f, SheetSummary, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
