package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

func TestSample(t *testing.T) {
	t.Parallel()

	ds := Sample()
	assert.Equal(t, SampleSource, ds.Source)
	assert.Len(t, ds.Customers, 9)
	assert.Len(t, ds.Orders, 3)
	assert.Len(t, ds.LineItems, 11)

	// fresh slices on every call
	ds.LineItems[0].Item = "changed"
	assert.Equal(t, "Onion", Sample().LineItems[0].Item)
}

func TestDetectKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		source string
		want   Kind
	}{
		{"", KindSample},
		{"sample", KindSample},
		{"data.yaml", KindYAML},
		{"data.YML", KindYAML},
		{"data.xlsx", KindXLSX},
		{"data.db", KindSQLite},
		{"data.sqlite3", KindSQLite},
		{dir, KindCSV},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := DetectKind(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := DetectKind(filepath.Join(dir, "data.json"))
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})
}

// spacedDataset has text cells whose spaces matter: "Dairy " is its own
// category, apart from "Dairy".
func spacedDataset() *types.Dataset {
	return &types.Dataset{
		Customers: []types.Customer{{CustomerID: 1, Name: " Bob Lesman", City: "Chicago "}},
		Orders:    []types.Order{{OrderID: 1, CustomerID: 1}},
		LineItems: []types.LineItem{
			{OrderID: 1, Item: "Milk", Category: "Dairy"},
			{OrderID: 1, Item: "Cheese ", Category: "Dairy "},
			{OrderID: 1, Item: "  Egg", Category: " Diary"},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	datasets := map[string]func() *types.Dataset{
		"sample": Sample,
		"spaced": spacedDataset,
	}
	formats := []string{"ds.yaml", "ds.xlsx", "ds.db", "csvdir"}

	for name, build := range datasets {
		for _, format := range formats {
			t.Run(name+"/"+format, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), format)
				want := build()
				require.NoError(t, Write(want, path))

				got, err := Load(path)
				require.NoError(t, err)

				assert.Equal(t, path, got.Source)
				assert.Equal(t, want.Customers, got.Customers)
				assert.Equal(t, want.Orders, got.Orders)
				assert.Equal(t, want.LineItems, got.LineItems)
			})
		}
	}
}

func TestSQLitePathWithURIDelimiters(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a?b.db", "a#b.db", "a b%20.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			require.NoError(t, Write(Sample(), path))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, name, entries[0].Name())

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Sample().LineItems, got.LineItems)
		})
	}
}

func TestWriteSQLiteReplacesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.db")
	require.NoError(t, WriteSQLite(Sample(), path))
	require.NoError(t, WriteSQLite(Sample(), path))

	got, err := LoadSQLite(path)
	require.NoError(t, err)
	assert.Len(t, got.LineItems, 11)
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSQLite(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteUnsupportedExtension(t *testing.T) {
	t.Parallel()

	err := Write(Sample(), filepath.Join(t.TempDir(), "sample.json"))
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

// writeCSVDir writes the three CSV files of a dataset directory.
func writeCSVDir(t *testing.T, customers, orders, lineItems string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.csv"), []byte(customers), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"), []byte(orders), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "line_items.csv"), []byte(lineItems), 0644))
	return dir
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	t.Run("header variants, column order and blank rows", func(t *testing.T) {
		dir := writeCSVDir(t,
			"City,Name,Customer ID\nChicago,Bob Lesman,1\n,,\n",
			"OrderID,customer-id\n1,1\n",
			"category,item,order_id\nVegetable, Onion ,1\n",
		)

		ds, err := Load(dir)
		require.NoError(t, err)
		require.Len(t, ds.Customers, 1)
		assert.Equal(t, "Bob Lesman", ds.Customers[0].Name)
		assert.Equal(t, "Chicago", ds.Customers[0].City)
		assert.Equal(t, 1, ds.Orders[0].CustomerID)
		assert.Equal(t, " Onion ", ds.LineItems[0].Item, "text cells are kept as written")
	})

	t.Run("missing column", func(t *testing.T) {
		dir := writeCSVDir(t,
			"customer_id,name,city\n1,Bob Lesman,Chicago\n",
			"order_id\n1\n",
			"order_id,item,category\n1,Onion,Vegetable\n",
		)

		_, err := Load(dir)
		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, TableOrders, srcErr.Table)
		assert.Equal(t, "customer_id", srcErr.Column)
		assert.Equal(t, "missing required column", srcErr.Message)
	})

	t.Run("invalid integer", func(t *testing.T) {
		dir := writeCSVDir(t,
			"customer_id,name,city\n1,Bob Lesman,Chicago\n",
			"order_id,customer_id\n1,1\n",
			"order_id,item,category\n 1 ,Onion,Vegetable\none,Apple,Fruit\n",
		)

		_, err := Load(dir)
		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, TableLineItems, srcErr.Table)
		assert.Equal(t, 3, srcErr.Row)
		assert.Equal(t, "order_id", srcErr.Column)
		assert.Equal(t, "one", srcErr.Value)
		assert.Equal(t, `line_items row 3, column order_id: invalid integer (value: "one")`, srcErr.Error())
	})

	t.Run("empty file", func(t *testing.T) {
		dir := writeCSVDir(t, "", "order_id,customer_id\n", "order_id,item,category\n")

		_, err := Load(dir)
		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, TableCustomers, srcErr.Table)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(dir)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadXLSXMissingSheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Customers"))
	require.NoError(t, f.SetSheetRow("Customers", "A1", &[]interface{}{"customer_id", "name", "city"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := LoadXLSX(path)
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, TableOrders, srcErr.Table)
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"customer_id", "CustomerId", "Customer ID", " customer-id ", `"CUSTOMERID"`} {
		assert.Equal(t, "customerid", normalizeHeader(h), h)
	}
}

func TestSourceErrorWithoutRow(t *testing.T) {
	t.Parallel()

	err := &SourceError{Table: TableOrders, Column: "order_id", Message: "missing required column"}
	assert.Equal(t, "orders, column order_id: missing required column", err.Error())
	assert.False(t, errors.Is(err, ErrUnsupportedSource))
}
