// Package view implements the interaction layer of the graph UI: an
// observable data store holding the fetched graph and the current
// selection/hover state, pure style reducers computing render attributes,
// and a controller binding pointer/keyboard events to store mutations.
package view

import (
	"strings"
	"sync"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

// State is the ephemeral interaction state. Selection is mutually
// exclusive (at most one of SelectedNode/SelectedEdge is set); hover is
// orthogonal to selection. Empty string means "none".
type State struct {
	SelectedNode  string
	SelectedEdge  string
	HoveredNode   string
	HoveredEdge   string
	SearchQuery   string
	InfoPanelOpen bool
}

// Store is the single source of truth for all views: the held graph plus
// the interaction state. Every mutation notifies subscribers, which is how
// redraws are triggered.
type Store struct {
	mu    sync.RWMutex
	graph *graph.Graph
	state State

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: map[int]func(){}}
}

// Subscribe registers a callback invoked after every mutation. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Load replaces the held graph wholesale.
func (s *Store) Load(g *graph.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
	s.notify()
}

// Graph returns a snapshot of the held graph, or nil before Load. Callers
// must treat a nil graph as "render nothing". The snapshot's node and edge
// lists keep their length even while AddNode/AddEdge append concurrently.
func (s *Store) Graph() *graph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil
	}
	g := *s.graph
	return &g
}

// Snapshot returns a copy of the current interaction state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SelectNode sets the selected node ("" clears) and clears any selected
// edge. The info panel opens iff a node is selected.
func (s *Store) SelectNode(id string) {
	s.mu.Lock()
	s.state.SelectedNode = id
	s.state.SelectedEdge = ""
	s.state.InfoPanelOpen = id != ""
	s.mu.Unlock()
	s.notify()
}

// SelectEdge is symmetric to SelectNode.
func (s *Store) SelectEdge(id string) {
	s.mu.Lock()
	s.state.SelectedEdge = id
	s.state.SelectedNode = ""
	s.state.InfoPanelOpen = id != ""
	s.mu.Unlock()
	s.notify()
}

// SetHoveredNode sets hover independently of selection; last write wins.
func (s *Store) SetHoveredNode(id string) {
	s.mu.Lock()
	s.state.HoveredNode = id
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetHoveredEdge(id string) {
	s.mu.Lock()
	s.state.HoveredEdge = id
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.state.SearchQuery = q
	s.mu.Unlock()
	s.notify()
}

// CloseInfoPanel closes the panel and clears both selections.
func (s *Store) CloseInfoPanel() {
	s.mu.Lock()
	s.state.InfoPanelOpen = false
	s.state.SelectedNode = ""
	s.state.SelectedEdge = ""
	s.mu.Unlock()
	s.notify()
}

// AddNode appends a node after a successful server write. No-op before the
// graph is loaded.
func (s *Store) AddNode(n graph.Node) {
	s.mu.Lock()
	if s.graph == nil {
		s.mu.Unlock()
		return
	}
	s.graph.Nodes = append(s.graph.Nodes, n)
	s.mu.Unlock()
	s.notify()
}

// AddEdge appends an edge after a successful server write. No-op before
// the graph is loaded.
func (s *Store) AddEdge(e graph.Edge) {
	s.mu.Lock()
	if s.graph == nil {
		s.mu.Unlock()
		return
	}
	s.graph.Edges = append(s.graph.Edges, e)
	s.mu.Unlock()
	s.notify()
}

// NodeByID looks up a node in the held graph. Misses and a nil graph both
// return false.
func (s *Store) NodeByID(id string) (graph.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return graph.Node{}, false
	}
	return s.graph.NodeByID(id)
}

func (s *Store) EdgeByID(id string) (graph.Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return graph.Edge{}, false
	}
	return s.graph.EdgeByID(id)
}

// NeighborsOf returns the ids adjacent to nodeID via any edge in either
// direction. Linear scan over the edge list; fine at this dataset's scale.
func (s *Store) NeighborsOf(nodeID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]struct{}{}
	if s.graph == nil {
		return out
	}
	for _, e := range s.graph.Edges {
		if e.Source == nodeID {
			out[e.Target] = struct{}{}
		}
		if e.Target == nodeID {
			out[e.Source] = struct{}{}
		}
	}
	return out
}

// ConnectedEdgesOf returns the ids of edges touching nodeID.
func (s *Store) ConnectedEdgesOf(nodeID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]struct{}{}
	if s.graph == nil {
		return out
	}
	for _, e := range s.graph.Edges {
		if e.Touches(nodeID) {
			out[e.ID] = struct{}{}
		}
	}
	return out
}

// SearchNodes filters nodes by case-insensitive substring match on the
// label, in graph order. An empty query matches nothing.
func (s *Store) SearchNodes(query string) []graph.Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil
	}
	var out []graph.Node
	for _, n := range s.graph.Nodes {
		if strings.Contains(strings.ToLower(n.Label), q) {
			out = append(out, n)
		}
	}
	return out
}
