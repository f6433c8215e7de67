package extractor

import "fmt"

// Format identifies a supported configuration file format.
type Format string

const (
	FormatJinja      Format = "jinja"
	FormatYAML       Format = "yaml"
	FormatINI        Format = "ini"
	FormatProperties Format = "properties"
)

// Relation is the universal container for one extracted relationship.
// A source file produces zero or more relations.
type Relation struct {
	Scope string `json:"scope,omitempty"` // grouping identifier (INI section, YAML top-level key); empty when the format has no grouping
	Key   string `json:"key,omitempty"`   // empty for value-only entries (e.g. a bare YAML list item)
	Value any    `json:"value,omitempty"` // nil when the relation carries no value
}

// ValueString renders the relation value for node labels and edge
// attributes. A nil value renders as the empty string.
func (r Relation) ValueString() string {
	return Stringify(r.Value)
}

// Stringify flattens an arbitrary decoded value into display form.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
