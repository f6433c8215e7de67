package render

import (
	"fmt"
	"sort"
	"strings"

	"confviz/internal/graph"
)

// WriteDOT serializes the graph as Graphviz DOT using the hierarchical
// styling of the static view. Node labels carry an adjacency summary line
// per outgoing edge; edge labels show the relationship as "key = value".
// Output is sorted so identical graphs serialize identically.
func WriteDOT(g *graph.Graph) []byte {
	var sb strings.Builder
	sb.WriteString("digraph confviz {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled];\n")

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := g.Nodes[id]
		label := node.Label
		for _, edge := range sortedEdges(g.Outgoing(id)) {
			label += fmt.Sprintf("\n%s: %s = %s", edge.To, edge.Key, edge.Value)
		}
		fmt.Fprintf(&sb, "  %s [label=%s, fillcolor=%s];\n",
			dotQuote(id), dotQuote(label), dotQuote(colorFor(node.Type)))
	}

	for _, edge := range sortedEdges(g.Edges) {
		fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n",
			dotQuote(edge.From), dotQuote(edge.To), dotQuote(edge.Key+" = "+edge.Value))
	}

	sb.WriteString("}\n")
	return []byte(sb.String())
}

func sortedEdges(edges []graph.Edge) []graph.Edge {
	sorted := make([]graph.Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Key < b.Key
	})
	return sorted
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
