package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kowusu01/LinqGrouping/internal/types"
)

// yamlGroup is the document shape of one group.
type yamlGroup struct {
	Category string            `yaml:"category"`
	Count    int               `yaml:"count"`
	Rows     []types.DetailRow `yaml:"rows"`
}

// WriteYAML writes groups as a YAML list of {category, count, rows}.
func WriteYAML(w io.Writer, groups []types.Group) error {
	doc := make([]yamlGroup, 0, len(groups))
	for _, g := range groups {
		doc = append(doc, yamlGroup{Category: g.Key, Count: g.Count(), Rows: g.Rows})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
