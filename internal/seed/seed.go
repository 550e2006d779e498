// Package seed loads the immutable seed dataset and keeps it available to
// the rest of the service. Re-seeding (re-reading the file) is the only
// sanctioned way the seed graph changes while the process runs.
package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

// LoadFile parses the flat seed JSON file ({groups, nodes, edges}).
func LoadFile(path string) (*graph.Graph, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var g graph.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if g.Groups == nil {
		g.Groups = map[string]graph.GroupStyle{}
	}
	return &g, nil
}

// Provider holds the current seed graph. Reads never fail: if the file was
// unreadable the provider serves an empty graph, and the API keeps
// returning 200 with whatever is held.
type Provider struct {
	path    string
	current atomic.Pointer[graph.Graph]
}

// NewProvider loads the seed file once. A load failure is logged and
// degrades to the empty graph rather than aborting startup.
func NewProvider(path string) *Provider {
	p := &Provider{path: path}
	if err := p.Reload(); err != nil {
		log.Printf("[seed] load failed, serving empty graph: %v", err)
		p.current.Store(graph.Empty())
	}
	return p
}

// Graph returns the currently held seed graph. Never nil.
func (p *Provider) Graph() *graph.Graph {
	return p.current.Load()
}

// Reload re-reads the seed file and swaps it in wholesale. On error the
// previously held graph (or the empty graph) stays in place.
func (p *Provider) Reload() error {
	g, err := LoadFile(p.path)
	if err != nil {
		return err
	}
	p.current.Store(g)
	log.Printf("[seed] loaded %d nodes, %d edges from %s", len(g.Nodes), len(g.Edges), p.path)
	return nil
}
