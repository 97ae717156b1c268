package invoice

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kowusu01/LinqGrouping/internal/dataset"
	"github.com/kowusu01/LinqGrouping/internal/logger"
	"github.com/kowusu01/LinqGrouping/internal/types"
)

// row is a compact DetailRow for assertions.
func row(orderID int, category, item, customer string) types.DetailRow {
	return types.DetailRow{OrderID: orderID, ProductCategory: category, ItemName: item, CustomerName: customer}
}

func TestEvaluateSample(t *testing.T) {
	t.Parallel()

	ds := dataset.Sample()
	groups := Evaluate(ds.LineItems, ds.Orders, ds.Customers)

	want := []types.Group{
		{Key: "Vegetable", Rows: []types.DetailRow{
			row(1, "Vegetable", "Onion", "Bob Lesman"),
			row(3, "Vegetable", "Lettuce", "Nathan Jones"),
		}},
		{Key: "Fruit", Rows: []types.DetailRow{
			row(1, "Fruit", "Apple", "Bob Lesman"),
			row(1, "Fruit", "Orange", "Bob Lesman"),
			row(1, "Fruit", "Banana", "Bob Lesman"),
			row(2, "Fruit", "Orange", "Sue Lin"),
			row(3, "Fruit", "Papaya", "Nathan Jones"),
		}},
		{Key: "Dairy", Rows: []types.DetailRow{
			row(2, "Dairy", "Milk", "Sue Lin"),
		}},
		{Key: "Meat", Rows: []types.DetailRow{
			row(2, "Meat", "Chicken", "Sue Lin"),
			row(3, "Meat", "Beef", "Nathan Jones"),
		}},
		{Key: "Diary", Rows: []types.DetailRow{
			row(3, "Diary", "Egg", "Nathan Jones"),
		}},
	}
	assert.Equal(t, want, groups)

	total := 0
	for _, g := range groups {
		total += g.Count()
	}
	assert.Equal(t, len(ds.LineItems), total)
	assert.Equal(t, 11, total)
}

func TestEvaluateDropsUnmatched(t *testing.T) {
	t.Parallel()

	customers := []types.Customer{{CustomerID: 1, Name: "Bob Lesman"}}

	tests := []struct {
		name   string
		items  []types.LineItem
		orders []types.Order
		want   []types.Group
	}{
		{
			name:   "line item without an order",
			items:  []types.LineItem{{OrderID: 1, Item: "Onion", Category: "Vegetable"}, {OrderID: 99, Item: "Ghost", Category: "Fruit"}},
			orders: []types.Order{{OrderID: 1, CustomerID: 1}},
			want:   []types.Group{{Key: "Vegetable", Rows: []types.DetailRow{row(1, "Vegetable", "Onion", "Bob Lesman")}}},
		},
		{
			name:   "order without a customer drops all of its items",
			items:  []types.LineItem{{OrderID: 1, Item: "Onion", Category: "Vegetable"}, {OrderID: 2, Item: "Milk", Category: "Dairy"}, {OrderID: 2, Item: "Egg", Category: "Dairy"}},
			orders: []types.Order{{OrderID: 1, CustomerID: 1}, {OrderID: 2, CustomerID: 42}},
			want:   []types.Group{{Key: "Vegetable", Rows: []types.DetailRow{row(1, "Vegetable", "Onion", "Bob Lesman")}}},
		},
		{
			name:   "nothing matches",
			items:  []types.LineItem{{OrderID: 5, Item: "Onion", Category: "Vegetable"}},
			orders: []types.Order{{OrderID: 1, CustomerID: 1}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.items, tt.orders, customers))
		})
	}
}

func TestEvaluateEmptyInputs(t *testing.T) {
	t.Parallel()

	ds := dataset.Sample()

	assert.Empty(t, Evaluate(nil, ds.Orders, ds.Customers))
	assert.Empty(t, Evaluate(ds.LineItems, nil, ds.Customers))
	assert.Empty(t, Evaluate(ds.LineItems, ds.Orders, nil))
}

func TestEvaluateDuplicateKeys(t *testing.T) {
	t.Parallel()

	items := []types.LineItem{{OrderID: 1, Item: "Onion", Category: "Vegetable"}}
	orders := []types.Order{{OrderID: 1, CustomerID: 1}, {OrderID: 1, CustomerID: 2}}
	customers := []types.Customer{
		{CustomerID: 1, Name: "Bob Lesman"},
		{CustomerID: 2, Name: "Joe Stevens"},
		{CustomerID: 2, Name: "Joe Stevens Jr"},
	}

	groups := Evaluate(items, orders, customers)

	require.Len(t, groups, 1)
	assert.Equal(t, []types.DetailRow{
		row(1, "Vegetable", "Onion", "Bob Lesman"),
		row(1, "Vegetable", "Onion", "Joe Stevens"),
		row(1, "Vegetable", "Onion", "Joe Stevens Jr"),
	}, groups[0].Rows)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	ds := dataset.Sample()
	first := Evaluate(ds.LineItems, ds.Orders, ds.Customers)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Evaluate(ds.LineItems, ds.Orders, ds.Customers), "run %d", i)
	}
}

func TestEvaluateWithStats(t *testing.T) {
	t.Parallel()

	ds := dataset.Sample()
	ds.LineItems = append(ds.LineItems, types.LineItem{OrderID: 7, Item: "Ghost", Category: "Fruit"})
	ds.Orders = append(ds.Orders, types.Order{OrderID: 8, CustomerID: 99})
	ds.LineItems = append(ds.LineItems, types.LineItem{OrderID: 8, Item: "Lost", Category: "Meat"})

	var buf bytes.Buffer
	e := New(WithLogger(logger.New(&buf, "debug")))
	groups, stats := e.EvaluateDataset(ds)

	assert.Equal(t, Stats{
		LineItems:             13,
		OrderMatches:          12,
		UnmatchedLineItems:    1,
		UnmatchedOrderMatches: 1,
		DetailRows:            11,
		Groups:                5,
	}, stats)
	assert.Len(t, groups, 5)
	assert.Contains(t, buf.String(), "[DEBUG] Grouped 11 detail rows into 5 groups")
}

func TestEvaluateDatasetNil(t *testing.T) {
	t.Parallel()

	groups, stats := New().EvaluateDataset(nil)
	assert.Nil(t, groups)
	assert.Equal(t, Stats{}, stats)
}

func TestWithRules(t *testing.T) {
	t.Parallel()

	ds := dataset.Sample()

	t.Run("group by customer", func(t *testing.T) {
		e := New(WithRules(Rules{
			GroupKey: func(d types.DetailRow) string { return d.CustomerName },
		}))
		groups := e.Evaluate(ds.LineItems, ds.Orders, ds.Customers)

		keys := make([]string, 0, len(groups))
		for _, g := range groups {
			keys = append(keys, fmt.Sprintf("%s:%d", g.Key, g.Count()))
		}
		assert.Equal(t, []string{"Bob Lesman:4", "Sue Lin:3", "Nathan Jones:4"}, keys)
	})

	t.Run("nil rules keep defaults", func(t *testing.T) {
		e := New(WithRules(Rules{}))
		assert.Equal(t,
			Evaluate(ds.LineItems, ds.Orders, ds.Customers),
			e.Evaluate(ds.LineItems, ds.Orders, ds.Customers))
	})
}
