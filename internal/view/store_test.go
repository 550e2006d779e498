package view

import (
	"testing"

	"github.com/epstein-graph/graph-backend/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() *graph.Graph {
	return &graph.Graph{
		Groups: map[string]graph.GroupStyle{
			"associate": {Color: "#4a4a6a", Label: "Associate"},
			"aviation":  {Color: "#3388bb", Label: "Aviation"},
		},
		Nodes: []graph.Node{
			{ID: "epstein", Label: "Jeffrey Epstein", Group: "associate"},
			{ID: "maxwell", Label: "Ghislaine Maxwell", Group: "associate"},
			{ID: "visoski", Label: "Larry Visoski", Group: "aviation"},
			{ID: "loner", Label: "No Connections"},
		},
		Edges: []graph.Edge{
			{ID: "e1", Source: "epstein", Target: "maxwell", ConnectionType: graph.ConnectionDocument},
			{ID: "e2", Source: "epstein", Target: "visoski", ConnectionType: graph.ConnectionFlight},
		},
	}
}

func loadedStore() *Store {
	s := NewStore()
	s.Load(testGraph())
	return s
}

func TestSelectionMutualExclusivity(t *testing.T) {
	s := loadedStore()

	s.SelectNode("epstein")
	st := s.Snapshot()
	assert.Equal(t, "epstein", st.SelectedNode)
	assert.Empty(t, st.SelectedEdge)
	assert.True(t, st.InfoPanelOpen)

	// Selecting an edge clears the node and vice versa, across any
	// transition sequence.
	s.SelectEdge("e1")
	st = s.Snapshot()
	assert.Empty(t, st.SelectedNode)
	assert.Equal(t, "e1", st.SelectedEdge)

	s.SelectNode("maxwell")
	st = s.Snapshot()
	assert.Equal(t, "maxwell", st.SelectedNode)
	assert.Empty(t, st.SelectedEdge)

	s.SelectNode("")
	st = s.Snapshot()
	assert.Empty(t, st.SelectedNode)
	assert.False(t, st.InfoPanelOpen)
}

func TestSelectAThenB(t *testing.T) {
	s := loadedStore()
	s.SelectNode("epstein")
	s.SelectNode("maxwell")
	st := s.Snapshot()
	assert.Equal(t, "maxwell", st.SelectedNode)
	assert.Empty(t, st.SelectedEdge)
}

func TestHoverOrthogonalToSelection(t *testing.T) {
	s := loadedStore()
	s.SelectNode("epstein")
	s.SetHoveredNode("visoski")
	st := s.Snapshot()
	assert.Equal(t, "epstein", st.SelectedNode)
	assert.Equal(t, "visoski", st.HoveredNode)

	// Last write wins, cleared on leave.
	s.SetHoveredNode("maxwell")
	assert.Equal(t, "maxwell", s.Snapshot().HoveredNode)
	s.SetHoveredNode("")
	assert.Empty(t, s.Snapshot().HoveredNode)
}

func TestNeighborsSymmetry(t *testing.T) {
	s := loadedStore()
	g := s.Graph()
	for _, a := range g.Nodes {
		na := s.NeighborsOf(a.ID)
		for _, b := range g.Nodes {
			_, ab := na[b.ID]
			_, ba := s.NeighborsOf(b.ID)[a.ID]
			assert.Equal(t, ab, ba, "neighbor relation must be symmetric for %s/%s", a.ID, b.ID)
		}
	}
}

func TestDerivedQueries(t *testing.T) {
	s := loadedStore()

	neighbors := s.NeighborsOf("maxwell")
	require.Len(t, neighbors, 1)
	assert.Contains(t, neighbors, "epstein")

	edges := s.ConnectedEdgesOf("epstein")
	assert.Len(t, edges, 2)
	assert.Contains(t, edges, "e1")
	assert.Contains(t, edges, "e2")

	assert.Empty(t, s.NeighborsOf("loner"))
	assert.Empty(t, s.ConnectedEdgesOf("loner"))
}

func TestUnloadedStoreRendersNothing(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Graph())
	assert.Empty(t, s.NeighborsOf("epstein"))
	assert.Empty(t, s.ConnectedEdgesOf("epstein"))
	assert.Nil(t, s.SearchNodes("epstein"))

	_, ok := s.NodeByID("epstein")
	assert.False(t, ok)

	// Appends before load are silent no-ops.
	s.AddNode(graph.Node{ID: "x"})
	s.AddEdge(graph.Edge{ID: "y"})
	assert.Nil(t, s.Graph())
}

func TestAddAfterLoad(t *testing.T) {
	s := loadedStore()
	s.AddNode(graph.Node{ID: "brunel", Label: "Jean-Luc Brunel"})
	s.AddEdge(graph.Edge{ID: "ue-1", Source: "epstein", Target: "brunel"})

	_, ok := s.NodeByID("brunel")
	assert.True(t, ok)
	assert.Contains(t, s.NeighborsOf("brunel"), "epstein")
}

func TestGraphSnapshotIsolatedFromAppends(t *testing.T) {
	s := loadedStore()

	snap := s.Graph()
	require.NotNil(t, snap)
	nodesBefore, edgesBefore := len(snap.Nodes), len(snap.Edges)

	s.AddNode(graph.Node{ID: "brunel", Label: "Jean-Luc Brunel"})
	s.AddEdge(graph.Edge{ID: "ue-1", Source: "epstein", Target: "brunel"})

	assert.Len(t, snap.Nodes, nodesBefore)
	assert.Len(t, snap.Edges, edgesBefore)
	assert.Len(t, s.Graph().Nodes, nodesBefore+1)
}

func TestSearchNodes(t *testing.T) {
	s := loadedStore()

	res := s.SearchNodes("max")
	require.Len(t, res, 1)
	assert.Equal(t, "maxwell", res[0].ID)

	// Case-insensitive substring match on the label.
	assert.Len(t, s.SearchNodes("GHISLAINE"), 1)
	assert.Len(t, s.SearchNodes("i"), 4)
	assert.Empty(t, s.SearchNodes("zzz"))
	assert.Empty(t, s.SearchNodes("   "))
}

func TestSubscribe(t *testing.T) {
	s := NewStore()
	var calls int
	unsub := s.Subscribe(func() { calls++ })

	s.Load(testGraph())
	s.SelectNode("epstein")
	s.SetHoveredEdge("e1")
	assert.Equal(t, 3, calls)

	unsub()
	s.SelectNode("")
	assert.Equal(t, 3, calls)
}

func TestCloseInfoPanel(t *testing.T) {
	s := loadedStore()
	s.SelectNode("epstein")
	s.CloseInfoPanel()
	st := s.Snapshot()
	assert.False(t, st.InfoPanelOpen)
	assert.Empty(t, st.SelectedNode)
	assert.Empty(t, st.SelectedEdge)
}
