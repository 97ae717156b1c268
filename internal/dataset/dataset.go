// =============================================================================
// Invoice Grouping - Dataset Module
// =============================================================================
//
// This module builds the three input collections from an external source,
// and writes them back out in the same formats.
//
// SUPPORTED SOURCES:
//   ""  / "sample"              - the built-in dataset
//   *.yaml / *.yml              - one YAML document (customers, orders, line_items)
//   *.xlsx                      - one sheet per table (Customers, Orders, LineItems)
//   *.db / *.sqlite / *.sqlite3 - one SQLite table per table
//   a directory                 - customers.csv, orders.csv, line_items.csv
//
// TABLE LAYOUT:
//   customers  : customer_id, name, city
//   orders     : order_id, customer_id
//   line_items : order_id, item, category
//
//   Header names are matched after normalisation, so "CustomerId",
//   "customer_id" and "Customer ID" are the same column. Column order does
//   not matter. Row order in the source becomes collection order.
//
// Loaders check shape only (columns present, ids numeric). Referential
// integrity and duplicate ids are left to the evaluator's inner joins.
//
// =============================================================================

package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnsupportedSource is returned when a source path has no loader.
var ErrUnsupportedSource = errors.New("unsupported dataset source")

// SourceError describes a problem with a specific table cell or column.
type SourceError struct {
	// Table is the logical table name (customers, orders, line_items).
	Table string

	// Row is the 1-based row number in the source, header included.
	// Zero when the error is not tied to a row.
	Row int

	// Column is the canonical column name, if any.
	Column string

	// Value is the offending cell value, if any.
	Value string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	var b strings.Builder
	b.WriteString(e.Table)
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ", column %s", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Value != "" {
		fmt.Fprintf(&b, " (value: %q)", e.Value)
	}
	return b.String()
}

// =============================================================================
// SOURCE KINDS
// =============================================================================

// Kind identifies a dataset format.
type Kind string

const (
	KindSample Kind = "sample"
	KindYAML   Kind = "yaml"
	KindXLSX   Kind = "xlsx"
	KindSQLite Kind = "sqlite"
	KindCSV    Kind = "csv"
)

// kindFromExt maps a file extension to a Kind. ok is false for unknown
// extensions.
func kindFromExt(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return KindYAML, true
	case ".xlsx":
		return KindXLSX, true
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, true
	}
	return "", false
}

// DetectKind works out which loader reads source.
//
// RETURNS:
//   - The Kind for the source.
//   - ErrUnsupportedSource (wrapped) if no loader applies.
func DetectKind(source string) (Kind, error) {
	source = strings.TrimSpace(source)
	if source == "" || source == SampleSource {
		return KindSample, nil
	}
	if kind, ok := kindFromExt(source); ok {
		return kind, nil
	}
	info, err := os.Stat(source)
	if err == nil && info.IsDir() {
		return KindCSV, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
}

// =============================================================================
// LOAD / WRITE
// =============================================================================

// Load reads a dataset from source. See the module header for the
// supported sources.
func Load(source string) (*types.Dataset, error) {
	kind, err := DetectKind(source)
	if err != nil {
		return nil, err
	}

	var ds *types.Dataset
	switch kind {
	case KindSample:
		return Sample(), nil
	case KindYAML:
		ds, err = LoadYAML(source)
	case KindXLSX:
		ds, err = LoadXLSX(source)
	case KindSQLite:
		ds, err = LoadSQLite(source)
	case KindCSV:
		ds, err = LoadCSV(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s dataset %s: %w", kind, source, err)
	}
	ds.Source = source
	return ds, nil
}

// Write stores ds at path. The format follows the extension; a path with no
// extension is written as a directory of CSV files.
func Write(ds *types.Dataset, path string) error {
	if ds == nil {
		return errors.New("dataset is nil")
	}
	kind, ok := kindFromExt(path)
	if !ok {
		if filepath.Ext(path) != "" {
			return fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
		}
		kind = KindCSV
	}

	var err error
	switch kind {
	case KindYAML:
		err = WriteYAML(ds, path)
	case KindXLSX:
		err = WriteXLSX(ds, path)
	case KindSQLite:
		err = WriteSQLite(ds, path)
	case KindCSV:
		err = WriteCSV(ds, path)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s dataset %s: %w", kind, path, err)
	}
	return nil
}

// =============================================================================
// TABLE DEFINITIONS
// =============================================================================

// Logical table names.
const (
	TableCustomers = "customers"
	TableOrders    = "orders"
	TableLineItems = "line_items"
)

// Canonical column names, as written by the writers.
const (
	colCustomerID = "customer_id"
	colName       = "name"
	colCity       = "city"
	colOrderID    = "order_id"
	colItem       = "item"
	colCategory   = "category"
)

var tableColumns = map[string][]string{
	TableCustomers: {colCustomerID, colName, colCity},
	TableOrders:    {colOrderID, colCustomerID},
	TableLineItems: {colOrderID, colItem, colCategory},
}

// table is a header row plus string cells, as read from CSV or XLSX.
type table struct {
	name    string
	headers []string
	rows    [][]string

	// firstRow is the source row number of rows[0].
	firstRow int
}

// normalizeHeader folds a header so that spelling variants compare equal.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer("_", "", "-", "", " ", "", "\"", "").Replace(h)
	return h
}

// columnIndex maps each required column of t to its position.
func (t *table) columnIndex() (map[string]int, error) {
	found := make(map[string]int, len(t.headers))
	for i, h := range t.headers {
		n := normalizeHeader(h)
		if _, dup := found[n]; !dup {
			found[n] = i
		}
	}

	index := make(map[string]int)
	for _, col := range tableColumns[t.name] {
		i, ok := found[normalizeHeader(col)]
		if !ok {
			return nil, &SourceError{Table: t.name, Column: col, Message: "missing required column"}
		}
		index[col] = i
	}
	return index, nil
}

// records yields one map of canonical column -> cell value per non-empty
// row, with the row's source number. Text cells are kept exactly as read.
func (t *table) records() ([]record, error) {
	index, err := t.columnIndex()
	if err != nil {
		return nil, err
	}

	var out []record
	for i, row := range t.rows {
		if isRowEmpty(row) {
			continue
		}
		rec := record{table: t.name, row: t.firstRow + i, values: make(map[string]string, len(index))}
		for col, pos := range index {
			if pos < len(row) {
				rec.values[col] = row[pos]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// record is one data row of a table.
type record struct {
	table  string
	row    int
	values map[string]string
}

func (r record) str(col string) string {
	return r.values[col]
}

// integer parses an id cell. Surrounding spaces are ignored.
func (r record) integer(col string) (int, error) {
	v := r.values[col]
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &SourceError{Table: r.table, Row: r.row, Column: col, Value: v, Message: "invalid integer"}
	}
	return n, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// TABLE DECODING
// =============================================================================

// decodeTables builds a dataset from the three raw tables.
func decodeTables(customers, orders, lineItems *table) (*types.Dataset, error) {
	ds := &types.Dataset{}

	recs, err := customers.records()
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		id, err := rec.integer(colCustomerID)
		if err != nil {
			return nil, err
		}
		ds.Customers = append(ds.Customers, types.Customer{
			CustomerID: id,
			Name:       rec.str(colName),
			City:       rec.str(colCity),
		})
	}

	recs, err = orders.records()
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		id, err := rec.integer(colOrderID)
		if err != nil {
			return nil, err
		}
		customerID, err := rec.integer(colCustomerID)
		if err != nil {
			return nil, err
		}
		ds.Orders = append(ds.Orders, types.Order{OrderID: id, CustomerID: customerID})
	}

	recs, err = lineItems.records()
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		orderID, err := rec.integer(colOrderID)
		if err != nil {
			return nil, err
		}
		ds.LineItems = append(ds.LineItems, types.LineItem{
			OrderID:  orderID,
			Item:     rec.str(colItem),
			Category: rec.str(colCategory),
		})
	}

	return ds, nil
}

// encodeTables is the inverse of decodeTables, producing canonical headers.
func encodeTables(ds *types.Dataset) (customers, orders, lineItems *table) {
	customers = &table{name: TableCustomers, headers: tableColumns[TableCustomers]}
	for _, c := range ds.Customers {
		customers.rows = append(customers.rows, []string{strconv.Itoa(c.CustomerID), c.Name, c.City})
	}

	orders = &table{name: TableOrders, headers: tableColumns[TableOrders]}
	for _, o := range ds.Orders {
		orders.rows = append(orders.rows, []string{strconv.Itoa(o.OrderID), strconv.Itoa(o.CustomerID)})
	}

	lineItems = &table{name: TableLineItems, headers: tableColumns[TableLineItems]}
	for _, li := range ds.LineItems {
		lineItems.rows = append(lineItems.rows, []string{strconv.Itoa(li.OrderID), li.Item, li.Category})
	}
	return customers, orders, lineItems
}
