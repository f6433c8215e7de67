package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"confviz/internal/crawler"
	"confviz/internal/graph"
)

// Pipeline orchestrates scanning and graph assembly. Rendering and
// persistence are consumers of the finished graph, not part of the core.
type Pipeline struct {
	crawler *crawler.Crawler
	logger  *slog.Logger
}

// New creates a pipeline.
func New(c *crawler.Crawler, logger *slog.Logger) *Pipeline {
	return &Pipeline{crawler: c, logger: logger}
}

// BuildGraph walks the root directory and assembles the relationship
// graph. Every invocation rebuilds from scratch.
func (p *Pipeline) BuildGraph(root string) (*graph.Graph, error) {
	p.logger.Info("scanning directory", "root", root)

	builder := graph.NewBuilder()
	err := p.crawler.ScanTree(root, func(f crawler.FileRelations) {
		if err := builder.AddFile(f.Name, f.Format, f.Relations); err != nil {
			p.logger.Error("failed to assemble relations", "file", f.Path, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	g := builder.Graph()
	stats := g.Stats()
	p.logger.Info("graph assembled", "nodes", stats.Nodes, "edges", stats.Edges)
	return g, nil
}

// SaveGraph writes the graph to a JSON file.
func (p *Pipeline) SaveGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	return nil
}

// LoadGraph reads a graph back from a JSON file.
func (p *Pipeline) LoadGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	g := graph.NewGraph()
	if err := json.NewDecoder(f).Decode(g); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}

	// Rebuild internal indices that aren't serialized
	g.RebuildIndices()

	return g, nil
}
