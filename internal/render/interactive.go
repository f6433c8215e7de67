package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sort"

	"confviz/internal/config"
	"confviz/internal/graph"
)

//go:embed interactive.html.tmpl
var interactivePage string

// InteractiveRenderer writes a self-contained HTML document with a
// force-directed vis-network view of the graph.
type InteractiveRenderer struct {
	Path    string
	Height  string
	Physics config.Physics
}

// NewInteractiveRenderer creates a renderer targeting the given HTML path.
func NewInteractiveRenderer(path string, cfg *config.Config) *InteractiveRenderer {
	return &InteractiveRenderer{
		Path:    path,
		Height:  cfg.Render.Height,
		Physics: cfg.Render.Physics,
	}
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

type visEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Title string `json:"title"`
}

// Render writes the HTML document. An empty graph yields a valid page
// with an empty canvas.
func (r *InteractiveRenderer) Render(g *graph.Graph) error {
	nodes := make([]visNode, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		nodes = append(nodes, visNode{
			ID:    node.ID,
			Label: node.Label,
			Title: node.Label,
			Color: colorFor(node.Type),
			Size:  sizeFor(node.Type),
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]visEdge, 0, len(g.Edges))
	for _, edge := range sortedEdges(g.Edges) {
		edges = append(edges, visEdge{
			From:  edge.From,
			To:    edge.To,
			Title: fmt.Sprintf("%s = %s", edge.Key, edge.Value),
		})
	}

	options := map[string]any{
		"nodes": map[string]any{
			"shape":   "dot",
			"scaling": map[string]int{"min": 10, "max": 30},
		},
		"edges": map[string]any{
			"arrows": "to",
		},
		"physics": map[string]any{
			"barnesHut": map[string]any{
				"gravitationalConstant": r.Physics.GravitationalConstant,
				"springLength":          r.Physics.SpringLength,
				"springConstant":        r.Physics.SpringConstant,
				"avoidOverlap":          r.Physics.AvoidOverlap,
			},
			"minVelocity": r.Physics.MinVelocity,
		},
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("failed to encode nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(edges)
	if err != nil {
		return fmt.Errorf("failed to encode edges: %w", err)
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	tmpl, err := template.New("interactive").Parse(interactivePage)
	if err != nil {
		return fmt.Errorf("failed to parse page template: %w", err)
	}

	if err := ensureDir(r.Path); err != nil {
		return err
	}
	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", r.Path, err)
	}
	defer f.Close()

	data := struct {
		Height  string
		Nodes   template.JS
		Edges   template.JS
		Options template.JS
	}{
		Height:  r.Height,
		Nodes:   template.JS(nodesJSON),
		Edges:   template.JS(edgesJSON),
		Options: template.JS(optionsJSON),
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
