// Package render turns an assembled graph into visual artifacts. The two
// renderers are pass-through consumers of node type and label metadata;
// the extraction pipeline never depends on them.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"confviz/internal/graph"
)

// Renderer consumes a finished graph and produces a visual artifact.
type Renderer interface {
	Render(g *graph.Graph) error
}

var nodeColors = map[graph.NodeType]string{
	graph.TypeYAML:        "lightblue",
	graph.TypeYAMLKey:     "lightgreen",
	graph.TypeJinja:       "orange",
	graph.TypeVariable:    "yellow",
	graph.TypeINI:         "lightcoral",
	graph.TypeINIKey:      "salmon",
	graph.TypeProperties:  "lightgrey",
	graph.TypePropertyKey: "lightpink",
}

func colorFor(t graph.NodeType) string {
	if c, ok := nodeColors[t]; ok {
		return c
	}
	return "lightblue"
}

// sizeFor makes scope/file nodes larger than key and variable nodes.
func sizeFor(t graph.NodeType) int {
	if t.IsScope() {
		return 15
	}
	return 10
}

// ensureDir creates the parent directory of an output path when missing.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
