// =============================================================================
// Invoice Grouping - Join and Group Evaluator
// =============================================================================
//
// This module turns the three input collections into category groups.
//
// PIPELINE:
//   1. Inner-join line items with orders on OrderID
//   2. Inner-join the result with customers on CustomerID
//   3. Project each matched triple into a DetailRow
//   4. Group the detail rows by product category, first-seen order
//
// Unmatched foreign keys drop the row; they are never reported as errors.
// Duplicate keys on the right side of a join produce one row per match.
//
// =============================================================================

package invoice

import (
	"github.com/kowusu01/LinqGrouping/internal/logger"
	"github.com/kowusu01/LinqGrouping/internal/query"
	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// KEY RULES
// =============================================================================

// Rules are the key extractors used by the evaluator.
type Rules struct {
	// LineItemOrder and OrderID match line items to orders.
	LineItemOrder func(types.LineItem) int
	OrderID       func(types.Order) int

	// OrderCustomer and CustomerID match orders to customers.
	OrderCustomer func(types.Order) int
	CustomerID    func(types.Customer) int

	// GroupKey selects the grouping key of a detail row.
	GroupKey func(types.DetailRow) string
}

// DefaultRules returns the standard invoice rules: line items join orders
// on OrderID, orders join customers on CustomerID, and details group by
// product category.
func DefaultRules() Rules {
	return Rules{
		LineItemOrder: func(li types.LineItem) int { return li.OrderID },
		OrderID:       func(o types.Order) int { return o.OrderID },
		OrderCustomer: func(o types.Order) int { return o.CustomerID },
		CustomerID:    func(c types.Customer) int { return c.CustomerID },
		GroupKey:      func(d types.DetailRow) string { return d.ProductCategory },
	}
}

// =============================================================================
// STATS
// =============================================================================

// Stats describes one evaluation. It is only used for logging and
// reporting; it does not change the result.
type Stats struct {
	// LineItems is the number of line items given to the evaluator.
	LineItems int

	// OrderMatches is the number of line item and order pairs produced by
	// the first join.
	OrderMatches int

	// UnmatchedLineItems counts line items whose OrderID matched no order.
	UnmatchedLineItems int

	// UnmatchedOrderMatches counts first-join pairs whose CustomerID matched
	// no customer.
	UnmatchedOrderMatches int

	// DetailRows is the number of rows after both joins.
	DetailRows int

	// Groups is the number of distinct grouping keys.
	Groups int
}

// =============================================================================
// EVALUATOR
// =============================================================================

// Evaluator runs the join-and-group pipeline.
type Evaluator struct {
	rules  Rules
	logger logger.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRules replaces the default key rules. Nil extractors keep their
// default.
func WithRules(r Rules) Option {
	return func(e *Evaluator) {
		def := DefaultRules()
		if r.LineItemOrder == nil {
			r.LineItemOrder = def.LineItemOrder
		}
		if r.OrderID == nil {
			r.OrderID = def.OrderID
		}
		if r.OrderCustomer == nil {
			r.OrderCustomer = def.OrderCustomer
		}
		if r.CustomerID == nil {
			r.CustomerID = def.CustomerID
		}
		if r.GroupKey == nil {
			r.GroupKey = def.GroupKey
		}
		e.rules = r
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l logger.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Evaluator with the default rules.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		rules:  DefaultRules(),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate joins and groups the inputs.
//
// PARAMETERS:
//   - items: The line items; they drive the output order.
//   - orders: The orders looked up by each line item.
//   - customers: The customers looked up by each matched order.
//
// RETURNS:
//   - The groups in first-seen category order. Empty input at any stage
//     yields an empty (nil) result.
func (e *Evaluator) Evaluate(items []types.LineItem, orders []types.Order, customers []types.Customer) []types.Group {
	groups, _ := e.EvaluateWithStats(items, orders, customers)
	return groups
}

// EvaluateWithStats is Evaluate that also reports match counts.
func (e *Evaluator) EvaluateWithStats(items []types.LineItem, orders []types.Order, customers []types.Customer) ([]types.Group, Stats) {
	stats := Stats{LineItems: len(items)}

	// STEP 1: line items -> orders
	itemOrders := query.InnerJoin(items, orders, e.rules.LineItemOrder, e.rules.OrderID)
	stats.OrderMatches = len(itemOrders)
	stats.UnmatchedLineItems = countUnmatched(items, orders, e.rules.LineItemOrder, e.rules.OrderID)

	// STEP 2: (line item, order) -> customers
	orderKey := func(p query.Pair[types.LineItem, types.Order]) int {
		return e.rules.OrderCustomer(p.Right)
	}
	triples := query.InnerJoin(itemOrders, customers, orderKey, e.rules.CustomerID)
	stats.UnmatchedOrderMatches = countUnmatched(itemOrders, customers, orderKey, e.rules.CustomerID)

	// STEP 3: project
	details := query.Map(triples, func(t query.Pair[query.Pair[types.LineItem, types.Order], types.Customer]) types.DetailRow {
		return types.DetailRow{
			OrderID:         t.Left.Right.OrderID,
			ProductCategory: t.Left.Left.Category,
			ItemName:        t.Left.Left.Item,
			CustomerName:    t.Right.Name,
		}
	})
	stats.DetailRows = len(details)

	// STEP 4: group
	groupings := query.GroupBy(details, e.rules.GroupKey)
	groups := query.Map(groupings, func(g query.Grouping[string, types.DetailRow]) types.Group {
		return types.Group{Key: g.Key, Rows: g.Rows}
	})
	stats.Groups = len(groups)

	e.logger.Debug("Joined %d line items to %d orders (%d line items without an order)",
		stats.LineItems, stats.OrderMatches, stats.UnmatchedLineItems)
	e.logger.Debug("Joined %d order matches to customers (%d without a customer)",
		stats.OrderMatches, stats.UnmatchedOrderMatches)
	e.logger.Debug("Grouped %d detail rows into %d groups", stats.DetailRows, stats.Groups)

	return groups, stats
}

// Evaluate runs the default pipeline with no logging.
func Evaluate(items []types.LineItem, orders []types.Order, customers []types.Customer) []types.Group {
	return New().Evaluate(items, orders, customers)
}

// EvaluateDataset runs the evaluator over a loaded dataset.
func (e *Evaluator) EvaluateDataset(ds *types.Dataset) ([]types.Group, Stats) {
	if ds == nil {
		return nil, Stats{}
	}
	return e.EvaluateWithStats(ds.LineItems, ds.Orders, ds.Customers)
}

// countUnmatched returns how many left rows have no right row with an equal key.
func countUnmatched[L, R any](left []L, right []R, leftKey func(L) int, rightKey func(R) int) int {
	keys := make(map[int]struct{}, len(right))
	for _, r := range right {
		keys[rightKey(r)] = struct{}{}
	}
	n := 0
	for _, l := range left {
		if _, ok := keys[leftKey(l)]; !ok {
			n++
		}
	}
	return n
}
