package dataset

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// SQLITE SOURCE
// =============================================================================
//
// The database holds one table per logical table. Rows are read in rowid
// order, which is insertion order for tables written by WriteSQLite.

const schemaSQL = `
CREATE TABLE IF NOT EXISTS customers (
	customer_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	city TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	order_id INTEGER NOT NULL,
	customer_id INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS line_items (
	order_id INTEGER NOT NULL,
	item TEXT NOT NULL,
	category TEXT NOT NULL
);
`

// sqliteDSN builds a file: URI for path. The path is made absolute and
// escaped so that '?' and '#' in a file name are not read as URI options.
func sqliteDSN(path, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=" + mode}
	return u.String(), nil
}

// LoadSQLite reads a dataset from a SQLite database file. The file must
// already exist.
func LoadSQLite(path string) (*types.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	dsn, err := sqliteDSN(path, "ro")
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ds := &types.Dataset{}

	rows, err := db.Query(`SELECT customer_id, name, city FROM customers ORDER BY rowid`)
	if err != nil {
		return nil, &SourceError{Table: TableCustomers, Message: err.Error()}
	}
	for rows.Next() {
		var c types.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.City); err != nil {
			rows.Close()
			return nil, &SourceError{Table: TableCustomers, Message: err.Error()}
		}
		ds.Customers = append(ds.Customers, c)
	}
	if err := closeRows(rows, TableCustomers); err != nil {
		return nil, err
	}

	rows, err = db.Query(`SELECT order_id, customer_id FROM orders ORDER BY rowid`)
	if err != nil {
		return nil, &SourceError{Table: TableOrders, Message: err.Error()}
	}
	for rows.Next() {
		var o types.Order
		if err := rows.Scan(&o.OrderID, &o.CustomerID); err != nil {
			rows.Close()
			return nil, &SourceError{Table: TableOrders, Message: err.Error()}
		}
		ds.Orders = append(ds.Orders, o)
	}
	if err := closeRows(rows, TableOrders); err != nil {
		return nil, err
	}

	rows, err = db.Query(`SELECT order_id, item, category FROM line_items ORDER BY rowid`)
	if err != nil {
		return nil, &SourceError{Table: TableLineItems, Message: err.Error()}
	}
	for rows.Next() {
		var li types.LineItem
		if err := rows.Scan(&li.OrderID, &li.Item, &li.Category); err != nil {
			rows.Close()
			return nil, &SourceError{Table: TableLineItems, Message: err.Error()}
		}
		ds.LineItems = append(ds.LineItems, li)
	}
	if err := closeRows(rows, TableLineItems); err != nil {
		return nil, err
	}

	return ds, nil
}

func closeRows(rows *sql.Rows, tableName string) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return &SourceError{Table: tableName, Message: err.Error()}
	}
	return rows.Close()
}

// WriteSQLite writes ds to a new SQLite database at path. An existing file
// is replaced.
func WriteSQLite(ds *types.Dataset, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace database: %w", err)
	}

	dsn, err := sqliteDSN(path, "rwc")
	if err != nil {
		return err
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, c := range ds.Customers {
		if _, err := tx.Exec(`INSERT INTO customers (customer_id, name, city) VALUES (?, ?, ?)`,
			c.CustomerID, c.Name, c.City); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert customer %d: %w", c.CustomerID, err)
		}
	}
	for _, o := range ds.Orders {
		if _, err := tx.Exec(`INSERT INTO orders (order_id, customer_id) VALUES (?, ?)`,
			o.OrderID, o.CustomerID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert order %d: %w", o.OrderID, err)
		}
	}
	for _, li := range ds.LineItems {
		if _, err := tx.Exec(`INSERT INTO line_items (order_id, item, category) VALUES (?, ?, ?)`,
			li.OrderID, li.Item, li.Category); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert line item %s: %w", li.Item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
