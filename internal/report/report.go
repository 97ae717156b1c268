// =============================================================================
// Invoice Grouping - Report Module
// =============================================================================
//
// This module renders evaluated groups for people and for other tools.
//
// TEXT FORMAT:
//   Group: Vegetable, Count: 2
//     1 - Vegetable Onion - Bob Lesman
//     3 - Vegetable Lettuce - Nathan Jones
//
// SUMMARY FORMAT:
//   Vegetable: 2 item(s) [Onion, Lettuce]
//
// The XLSX and YAML writers live in xlsx.go and yaml.go; Writer in writer.go
// picks between them.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// TEXT REPORT
// =============================================================================

// WriteText prints each group header followed by its member rows.
//
// PARAMETERS:
//   - w: The destination, usually stdout.
//   - groups: The groups in evaluation order.
//
// RETURNS:
//   - The first write error, if any.
func WriteText(w io.Writer, groups []types.Group) error {
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "Group: %s, Count: %d\n", g.Key, g.Count()); err != nil {
			return err
		}
		for _, row := range g.Rows {
			if _, err := fmt.Fprintf(w, "  %d - %s %s - %s\n",
				row.OrderID, row.ProductCategory, row.ItemName, row.CustomerName); err != nil {
				return err
			}
		}
	}
	return nil
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summarize builds one Summary per group, keeping group order.
func Summarize(groups []types.Group) []types.Summary {
	summaries := make([]types.Summary, 0, len(groups))
	for _, g := range groups {
		items := make([]string, 0, len(g.Rows))
		for _, row := range g.Rows {
			items = append(items, row.ItemName)
		}
		summaries = append(summaries, types.Summary{
			Category: g.Key,
			Items:    items,
			NumItems: len(items),
		})
	}
	return summaries
}

// WriteSummaryText prints one line per summary.
func WriteSummaryText(w io.Writer, summaries []types.Summary) error {
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%s: %d item(s) [%s]\n",
			s.Category, s.NumItems, strings.Join(s.Items, ", ")); err != nil {
			return err
		}
	}
	return nil
}
