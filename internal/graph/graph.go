package graph

// Graph manages deduplicated nodes and keyed directed edges. It is built
// from scratch on every run and discarded after rendering; the snapshot
// store only ever receives a finished graph.
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []Edge           `json:"edges"`

	// Edge identity index: re-adding (from, to, key) overwrites the value
	// instead of stacking a duplicate edge.
	edgeIndex map[EdgeKey]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:     make(map[string]*Node),
		Edges:     []Edge{},
		edgeIndex: make(map[EdgeKey]int),
	}
}

// AddNode upserts a node. Later metadata wins on re-insertion.
func (g *Graph) AddNode(id, label string, t NodeType) {
	g.Nodes[id] = &Node{ID: id, Label: label, Type: t}
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Nodes[id]
	return ok
}

// AddEdge inserts a directed edge. Both endpoints must already exist; the
// builder always inserts endpoint nodes first.
func (g *Graph) AddEdge(from, to, key, value string) {
	ek := EdgeKey{From: from, To: to, Key: key}
	if i, ok := g.edgeIndex[ek]; ok {
		g.Edges[i].Value = value
		return
	}
	g.edgeIndex[ek] = len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: from, To: to, Key: key, Value: value})
}

// Outgoing returns the edges leaving the given node.
func (g *Graph) Outgoing(id string) []Edge {
	var out []Edge
	for _, edge := range g.Edges {
		if edge.From == id {
			out = append(out, edge)
		}
	}
	return out
}

// RebuildIndices reconstructs the edge identity index. Required after
// deserialization, which only restores the exported fields.
func (g *Graph) RebuildIndices() {
	g.edgeIndex = make(map[EdgeKey]int, len(g.Edges))
	for i, edge := range g.Edges {
		g.edgeIndex[EdgeKey{From: edge.From, To: edge.To, Key: edge.Key}] = i
	}
}
