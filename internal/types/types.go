// =============================================================================
// Invoice Grouping - Shared Types
// =============================================================================
//
// This package contains the entity and result types shared by the dataset
// loaders, the join-and-group evaluator and the report writers. Keeping them
// here avoids import cycles between those packages.
//
// ENTITIES (immutable once loaded):
//   Customer  - CustomerID, Name, City
//   Order     - OrderID, CustomerID (foreign key into Customer)
//   LineItem  - OrderID (foreign key into Order), Item, Category
//
// DERIVED:
//   DetailRow - one joined LineItem -> Order -> Customer record
//   Group     - a category key plus its DetailRows in join-output order
//   Summary   - the per-category item list and count
//
// =============================================================================

package types

// =============================================================================
// ENTITY TYPES
// =============================================================================

// Customer is a row of the customers table.
type Customer struct {
	// CustomerID is the unique customer identifier.
	CustomerID int `yaml:"customer_id"`

	// Name is the display name printed on reports.
	Name string `yaml:"name"`

	// City is carried through loading but not used by the report.
	City string `yaml:"city"`
}

// Order is a row of the orders table.
type Order struct {
	// OrderID is the unique order identifier.
	OrderID int `yaml:"order_id"`

	// CustomerID references Customer.CustomerID.
	CustomerID int `yaml:"customer_id"`
}

// LineItem is a row of the line items table.
type LineItem struct {
	// OrderID references Order.OrderID.
	OrderID int `yaml:"order_id"`

	// Item is the product name.
	Item string `yaml:"item"`

	// Category is the product category used as the grouping key.
	// Values are compared exactly, so "Dairy" and "Diary" are different.
	Category string `yaml:"category"`
}

// =============================================================================
// DATASET
// =============================================================================

// Dataset holds the three input collections of one run.
// The slice order is the order the rows appeared in the source.
type Dataset struct {
	// Source describes where the dataset was loaded from.
	Source string `yaml:"-"`

	Customers []Customer `yaml:"customers"`
	Orders    []Order    `yaml:"orders"`
	LineItems []LineItem `yaml:"line_items"`
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// DetailRow is the flattened projection of a joined
// LineItem, Order and Customer.
type DetailRow struct {
	OrderID         int    `yaml:"order_id"`
	ProductCategory string `yaml:"product_category"`
	ItemName        string `yaml:"item_name"`
	CustomerName    string `yaml:"customer_name"`
}

// Group is one category and the detail rows that share it.
type Group struct {
	// Key is the category value.
	Key string `yaml:"category"`

	// Rows are the members in the order the join produced them.
	Rows []DetailRow `yaml:"rows"`
}

// Count returns the number of rows in the group.
func (g Group) Count() int {
	return len(g.Rows)
}

// Summary is the aggregate view of a Group.
type Summary struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
	NumItems int      `yaml:"num_items"`
}
