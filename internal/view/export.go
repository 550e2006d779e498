package view

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RenderedNode is a node together with its computed render attributes, as
// exported by the snapshot worker.
type RenderedNode struct {
	ID         string  `json:"id"`
	Label      string  `json:"label,omitempty"`
	Color      string  `json:"color"`
	Size       float64 `json:"size"`
	ForceLabel bool    `json:"force_label,omitempty"`
	Faded      bool    `json:"faded,omitempty"`
}

type RenderedEdge struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Color  string  `json:"color"`
	Size   float64 `json:"size"`
	Faded  bool    `json:"faded,omitempty"`
}

type RenderedGraph struct {
	Nodes []RenderedNode `json:"nodes"`
	Edges []RenderedEdge `json:"edges"`
}

// Render runs the reducers over every entity for one interaction state.
func Render(s *Styler, st State) RenderedGraph {
	out := RenderedGraph{Nodes: []RenderedNode{}, Edges: []RenderedEdge{}}
	if s.g == nil {
		return out
	}
	for _, n := range s.g.Nodes {
		r := s.NodeStyle(n.ID, st)
		out.Nodes = append(out.Nodes, RenderedNode{
			ID:         n.ID,
			Label:      r.Label,
			Color:      r.Color,
			Size:       r.Size,
			ForceLabel: r.ForceLabel,
			Faded:      r.Faded,
		})
	}
	for _, e := range s.g.Edges {
		r := s.EdgeStyle(e.ID, st)
		out.Edges = append(out.Edges, RenderedEdge{
			ID:     e.ID,
			Source: e.Source,
			Target: e.Target,
			Color:  r.Color,
			Size:   r.Size,
			Faded:  r.Faded,
		})
	}
	return out
}

// ToDOT renders a styled Graphviz snapshot of the graph for one
// interaction state.
func ToDOT(s *Styler, st State, title string) string {
	var b strings.Builder
	b.WriteString("graph G {\n  layout=neato;\n  bgcolor=\"#06060c\";\n  node [shape=circle, style=filled, fontcolor=\"#c8c8e0\"];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf("  labelloc=\"t\"; label=%q; fontcolor=\"#c8c8e0\";\n", title))
	}
	snap := Render(s, st)
	for _, n := range snap.Nodes {
		b.WriteString(fmt.Sprintf("  %q [label=%q, fillcolor=%q, width=%.2f];\n",
			n.ID, n.Label, n.Color, n.Size/10))
	}
	for _, e := range snap.Edges {
		b.WriteString(fmt.Sprintf("  %q -- %q [color=%q, penwidth=%.2f];\n",
			e.Source, e.Target, e.Color, e.Size))
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteJSON writes v as indented JSON to path.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
