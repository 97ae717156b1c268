// =============================================================================
// Invoice Grouping - Query Primitives
// =============================================================================
//
// This package implements the two relational operations the report needs,
// generically over any row and key types:
//
//   InnerJoin - an equi-join on a single key using a hash bucket per key
//   GroupBy   - a partition of rows by key, keeping first-seen key order
//
// ORDERING:
//   Both operations are deterministic. InnerJoin emits pairs in left order,
//   and within one left row in right order. GroupBy emits groups in the order
//   their key first appears, and members in input order.
//
// Inputs are never modified.
//
// =============================================================================

package query

// =============================================================================
// JOIN
// =============================================================================

// Pair is one matched left and right row.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// InnerJoin returns every (left, right) combination whose keys are equal.
//
// PARAMETERS:
//   - left: The driving rows. Output follows this order.
//   - right: The rows looked up by key.
//   - leftKey, rightKey: Extract the join key from each side.
//
// RETURNS:
//   - One Pair per match. A left row with no match contributes nothing, and
//     a left row matching n right rows contributes n pairs.
func InnerJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Pair[L, R] {
	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	buckets := Index(right, rightKey)

	var pairs []Pair[L, R]
	for _, l := range left {
		for _, r := range buckets[leftKey(l)] {
			pairs = append(pairs, Pair[L, R]{Left: l, Right: r})
		}
	}
	return pairs
}

// Index buckets rows by key. Each bucket keeps the input order.
func Index[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	buckets := make(map[K][]T, len(rows))
	for _, row := range rows {
		k := key(row)
		buckets[k] = append(buckets[k], row)
	}
	return buckets
}

// =============================================================================
// GROUP BY
// =============================================================================

// Grouping is one key and the rows that produced it.
type Grouping[K comparable, T any] struct {
	Key  K
	Rows []T
}

// GroupBy partitions rows by key.
//
// Groups are returned in the order their key was first seen, and each
// group's rows keep their input order. Every row lands in exactly one group.
func GroupBy[T any, K comparable](rows []T, key func(T) K) []Grouping[K, T] {
	if len(rows) == 0 {
		return nil
	}

	// position of each key in groups
	positions := make(map[K]int)
	var groups []Grouping[K, T]

	for _, row := range rows {
		k := key(row)
		i, exists := positions[k]
		if !exists {
			i = len(groups)
			positions[k] = i
			groups = append(groups, Grouping[K, T]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Map applies fn to every row, keeping order.
func Map[T, U any](rows []T, fn func(T) U) []U {
	if rows == nil {
		return nil
	}
	out := make([]U, len(rows))
	for i, row := range rows {
		out[i] = fn(row)
	}
	return out
}
