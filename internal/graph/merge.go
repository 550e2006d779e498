package graph

// Merge builds the served graph as a read-time union of the immutable seed
// graph and the append-only user-submitted rows, seed first. No
// de-duplication pass runs; id generation is collision-resistant rather
// than deterministic-unique.
func Merge(seed *Graph, userNodes []Node, userEdges []Edge) *Graph {
	if seed == nil {
		seed = Empty()
	}

	out := &Graph{
		Groups: seed.Groups,
		Nodes:  make([]Node, 0, len(seed.Nodes)+len(userNodes)),
		Edges:  make([]Edge, 0, len(seed.Edges)+len(userEdges)),
	}
	if out.Groups == nil {
		out.Groups = map[string]GroupStyle{}
	}
	out.Nodes = append(out.Nodes, seed.Nodes...)
	out.Nodes = append(out.Nodes, userNodes...)
	out.Edges = append(out.Edges, seed.Edges...)
	out.Edges = append(out.Edges, userEdges...)
	return out
}
