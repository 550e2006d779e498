package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/epstein-graph/graph-backend/internal/seed"
	"github.com/epstein-graph/graph-backend/internal/view"
)

// RunExport renders styled snapshots of the seed graph: a Graphviz DOT
// file and a JSON dump of the computed render attributes. An optional
// selected node reproduces the focused view.
func RunExport(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker export <seedPath> [outDir] [selectedNode]")
	}
	seedPath := args[0]

	outDir := "out"
	if len(args) > 1 {
		outDir = args[1]
	}
	var state view.State
	if len(args) > 2 {
		state.SelectedNode = args[2]
	}

	g, err := seed.LoadFile(seedPath)
	if err != nil {
		log.Fatalf("load seed: %v", err)
	}

	rootID := os.Getenv("ROOT_NODE_ID")
	if rootID == "" {
		rootID = "epstein"
	}
	styler := view.NewStyler(g, rootID)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create out dir: %v", err)
	}

	dot := view.ToDOT(styler, state, "Connection graph")
	dotPath := filepath.Join(outDir, "graph.dot")
	if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
		log.Fatalf("write dot: %v", err)
	}

	jsonPath := filepath.Join(outDir, "graph_render.json")
	if err := view.WriteJSON(jsonPath, view.Render(styler, state)); err != nil {
		log.Fatalf("write json: %v", err)
	}

	log.Printf("[worker] exported %d nodes, %d edges to %s", len(g.Nodes), len(g.Edges), outDir)
}
