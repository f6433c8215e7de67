package graph

// NodeType tags a node for styling and statistics.
type NodeType string

const (
	TypeYAML        NodeType = "yaml"
	TypeYAMLKey     NodeType = "yaml_key"
	TypeINI         NodeType = "ini"
	TypeINIKey      NodeType = "ini_key"
	TypeProperties  NodeType = "properties"
	TypePropertyKey NodeType = "property_key"
	TypeJinja       NodeType = "jinja"
	TypeVariable    NodeType = "variable"
)

// IsScope reports whether the type marks a scope/file node rather than a
// key or variable node. Renderers draw scope nodes larger.
func (t NodeType) IsScope() bool {
	switch t {
	case TypeYAML, TypeINI, TypeProperties, TypeJinja:
		return true
	}
	return false
}

// Node is a vertex identified by a string label: a file name, a
// configuration key, or a template variable name.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
}

// Edge is a directed relationship from a scope/file node to a key or
// variable node.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EdgeKey is the edge identity. Parallel edges between the same endpoints
// coexist as long as their relationship keys differ.
type EdgeKey struct {
	From string
	To   string
	Key  string
}
