package render

import (
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"confviz/internal/graph"
)

// StaticRenderer lays the graph out with Graphviz and writes both an SVG
// and a PNG depicting the same directed graph.
type StaticRenderer struct {
	SVGPath string
	PNGPath string
	Layout  string
}

// NewStaticRenderer creates a renderer targeting the given output paths.
func NewStaticRenderer(svgPath, pngPath, layout string) *StaticRenderer {
	if layout == "" {
		layout = "dot"
	}
	return &StaticRenderer{SVGPath: svgPath, PNGPath: pngPath, Layout: layout}
}

// Render serializes the graph to DOT, lays it out and writes both
// artifacts. Unwritable output paths are fatal and surface to the caller.
func (r *StaticRenderer) Render(g *graph.Graph) error {
	ctx := context.Background()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(r.Layout))

	parsed, err := graphviz.ParseBytes(WriteDOT(g))
	if err != nil {
		return fmt.Errorf("failed to build dot graph: %w", err)
	}
	defer parsed.Close()

	for _, out := range []struct {
		format graphviz.Format
		path   string
	}{
		{graphviz.SVG, r.SVGPath},
		{graphviz.PNG, r.PNGPath},
	} {
		if err := ensureDir(out.path); err != nil {
			return err
		}
		if err := gv.RenderFilename(ctx, parsed, out.format, out.path); err != nil {
			return fmt.Errorf("failed to render %s: %w", out.path, err)
		}
	}
	return nil
}
