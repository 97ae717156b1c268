package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// CSV DIRECTORY SOURCE
// =============================================================================
//
// A CSV dataset is a directory holding one file per table:
//
//   <dir>/customers.csv
//   <dir>/orders.csv
//   <dir>/line_items.csv
//
// Each file starts with a single header row.

// csvFileName returns the file name used for a table.
func csvFileName(tableName string) string {
	return tableName + ".csv"
}

// LoadCSV reads a dataset from a directory of CSV files.
func LoadCSV(dir string) (*types.Dataset, error) {
	customers, err := readCSVTable(dir, TableCustomers)
	if err != nil {
		return nil, err
	}
	orders, err := readCSVTable(dir, TableOrders)
	if err != nil {
		return nil, err
	}
	lineItems, err := readCSVTable(dir, TableLineItems)
	if err != nil {
		return nil, err
	}
	return decodeTables(customers, orders, lineItems)
}

// readCSVTable parses <dir>/<table>.csv into a raw table.
func readCSVTable(dir, tableName string) (*table, error) {
	path := filepath.Join(dir, csvFileName(tableName))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	if len(allRows) == 0 {
		return nil, &SourceError{Table: tableName, Message: "CSV file is empty"}
	}

	return &table{
		name:     tableName,
		headers:  allRows[0],
		rows:     allRows[1:],
		firstRow: 2,
	}, nil
}

// configureReader sets the reader options shared by every table file.
func configureReader(reader *csv.Reader) {
	// Allow variable number of fields per row; missing cells read as empty.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// WriteCSV writes ds as a directory of CSV files, creating dir if needed.
func WriteCSV(ds *types.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	customers, orders, lineItems := encodeTables(ds)
	for _, t := range []*table{customers, orders, lineItems} {
		if err := writeCSVTable(dir, t); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVTable(dir string, t *table) error {
	path := filepath.Join(dir, csvFileName(t.name))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.name, err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", t.name, err)
	}
	return file.Close()
}
