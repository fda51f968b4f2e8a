package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes a sequence of mappings keyed by header, keeping header order
func YAML(w io.Writer, headers []string, rows [][]string) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for i, value := range padRow(row, len(headers)) {
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: headers[i]},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
			)
		}
		doc.Content = append(doc.Content, mapping)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}
