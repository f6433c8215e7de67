package graph

import (
	"fmt"

	"confviz/internal/extractor"
)

// formatStyle holds the node types and display prefix for one format.
type formatStyle struct {
	scope  NodeType
	key    NodeType
	prefix string
}

var formatStyles = map[extractor.Format]formatStyle{
	extractor.FormatYAML:       {scope: TypeYAML, key: TypeYAMLKey, prefix: "YAML File: "},
	extractor.FormatINI:        {scope: TypeINI, key: TypeINIKey, prefix: "INI File: "},
	extractor.FormatProperties: {scope: TypeProperties, key: TypePropertyKey, prefix: "Properties File: "},
	extractor.FormatJinja:      {scope: TypeJinja, key: TypeVariable, prefix: "Jinja Template: "},
}

// Builder accumulates relations streamed from a scan into a graph,
// applying one uniform node/edge rule across all formats.
type Builder struct {
	graph *Graph
}

// NewBuilder creates a builder around an empty graph.
func NewBuilder() *Builder {
	return &Builder{graph: NewGraph()}
}

// Graph returns the assembled graph.
func (b *Builder) Graph() *Graph {
	return b.graph
}

// AddFile applies the assembly rules for one scanned file. A file with no
// relations contributes nothing; scope nodes are created lazily.
//
// For each relation: the scope node is the relation scope, or the file
// name when the format has no grouping. A present key yields a key node
// and a scope→key edge carrying the key and stringified value. A
// value-only relation yields a placeholder node from the stringified
// value, so no entry is silently dropped.
func (b *Builder) AddFile(fileName string, format extractor.Format, relations []extractor.Relation) error {
	style, ok := formatStyles[format]
	if !ok {
		return fmt.Errorf("unknown format: %s", format)
	}

	for _, rel := range relations {
		scope := rel.Scope
		if scope == "" {
			scope = fileName
		}
		b.graph.AddNode(scope, style.prefix+scope, style.scope)

		switch {
		case rel.Key != "":
			if format == extractor.FormatJinja {
				b.graph.AddNode(rel.Key, "Variable: "+rel.Key, style.key)
				b.graph.AddEdge(scope, rel.Key, "uses", fmt.Sprintf("%s used in %s", rel.Key, fileName))
				continue
			}
			b.graph.AddNode(rel.Key, rel.Key, style.key)
			b.graph.AddEdge(scope, rel.Key, rel.Key, rel.ValueString())
		case rel.Value != nil:
			item := rel.ValueString()
			b.graph.AddNode(item, item, style.key)
			b.graph.AddEdge(scope, item, "", item)
		}
	}
	return nil
}
