package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLExtractor flattens a YAML document one level deep into relations.
// Deeper nesting is intentionally not recursed into; this trades
// completeness for a predictable graph size.
type YAMLExtractor struct{}

func (e *YAMLExtractor) Format() Format { return FormatYAML }

// Extract decodes the document into a generic tree and dispatches on the
// top-level shape. Scalar documents and empty files yield no relations.
func (e *YAMLExtractor) Extract(path string) ([]Relation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read yaml file %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml file %s: %w", path, err)
	}

	var relations []Relation
	switch root := doc.(type) {
	case map[string]any:
		for key, value := range root {
			switch v := value.(type) {
			case map[string]any:
				for subKey, subValue := range v {
					relations = append(relations, Relation{Scope: key, Key: subKey, Value: subValue})
				}
			case []any:
				relations = append(relations, Relation{Scope: key, Key: Stringify(v)})
			case nil:
				relations = append(relations, Relation{Scope: key})
			default:
				relations = append(relations, Relation{Scope: key, Key: Stringify(v)})
			}
		}
	case []any:
		for i, item := range root {
			scope := fmt.Sprintf("ListItem%d", i)
			if m, ok := item.(map[string]any); ok {
				for key, value := range m {
					relations = append(relations, Relation{Scope: scope, Key: key, Value: value})
				}
			} else {
				relations = append(relations, Relation{Scope: scope, Value: item})
			}
		}
	}
	return relations, nil
}
