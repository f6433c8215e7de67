package graph

// Stats summarizes a graph for operational logging and the stats command.
type Stats struct {
	Nodes       int              `json:"nodes"`
	Edges       int              `json:"edges"`
	NodesByType map[NodeType]int `json:"nodes_by_type"`
}

// Stats computes node and edge counts, broken down by node type.
func (g *Graph) Stats() Stats {
	s := Stats{NodesByType: make(map[NodeType]int)}
	if g == nil {
		return s
	}
	s.Nodes = len(g.Nodes)
	s.Edges = len(g.Edges)
	for _, node := range g.Nodes {
		s.NodesByType[node.Type]++
	}
	return s
}
