package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// YAML SOURCE
// =============================================================================
//
// EXAMPLE:
//   customers:
//     - customer_id: 1
//       name: Bob Lesman
//       city: Chicago
//   orders:
//     - order_id: 1
//       customer_id: 1
//   line_items:
//     - order_id: 1
//       item: Onion
//       category: Vegetable

// LoadYAML reads a dataset from a YAML document.
func LoadYAML(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var ds types.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}
	return &ds, nil
}

// WriteYAML writes ds as a YAML document.
func WriteYAML(ds *types.Dataset, path string) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
