package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSizeMonotonicAndClamped(t *testing.T) {
	prev := 0.0
	for degree := 0; degree <= 200; degree++ {
		size := NodeSizeForDegree(degree)
		assert.GreaterOrEqual(t, size, MinNodeSize)
		assert.LessOrEqual(t, size, MaxNodeSize)
		assert.GreaterOrEqual(t, size, prev, "size must be non-decreasing in degree")
		prev = size
	}
	assert.Equal(t, MaxNodeSize, NodeSizeForDegree(10000))
}

func TestEdgeSizeNeverExceedsSmallerEndpoint(t *testing.T) {
	for _, pair := range [][2]int{{0, 0}, {1, 3}, {5, 1}, {40, 2}, {100, 100}} {
		a := NodeSizeForDegree(pair[0])
		b := NodeSizeForDegree(pair[1])
		size := EdgeSizeFor(a, b)
		assert.LessOrEqual(t, size, math.Min(a, b))
		assert.GreaterOrEqual(t, size, MinEdgeSize)
		assert.LessOrEqual(t, size, MaxEdgeSize)
	}
}

func TestSelectionFadeScenario(t *testing.T) {
	// Concrete scenario: selecting maxwell keeps epstein and e1 at full
	// visibility and fades everything outside the neighborhood.
	styler := NewStyler(testGraph(), "epstein")
	st := State{SelectedNode: "maxwell"}

	sel := styler.NodeStyle("maxwell", st)
	assert.False(t, sel.Faded)
	assert.True(t, sel.ForceLabel)

	neighbor := styler.NodeStyle("epstein", st)
	assert.False(t, neighbor.Faded)
	assert.True(t, neighbor.ForceLabel)

	far := styler.NodeStyle("visoski", st)
	assert.True(t, far.Faded)
	assert.Empty(t, far.Label, "faded node label is suppressed")

	connected := styler.EdgeStyle("e1", st)
	assert.False(t, connected.Faded)

	unconnected := styler.EdgeStyle("e2", st)
	assert.True(t, unconnected.Faded)
}

func TestHoverRestoresFadedNode(t *testing.T) {
	styler := NewStyler(testGraph(), "epstein")

	faded := styler.NodeStyle("visoski", State{SelectedNode: "maxwell"})
	require.True(t, faded.Faded)

	// Hover wins over the selection fade for the hovered entity.
	restored := styler.NodeStyle("visoski", State{SelectedNode: "maxwell", HoveredNode: "visoski"})
	assert.False(t, restored.Faded)
	assert.True(t, restored.ForceLabel)
	assert.Equal(t, "Larry Visoski", restored.Label)
	assert.NotEqual(t, nodeFadedColor, restored.Color)
}

func TestHoverHighlightsConnectedEdges(t *testing.T) {
	styler := NewStyler(testGraph(), "epstein")

	st := State{HoveredNode: "maxwell"}
	hot := styler.EdgeStyle("e1", st)
	assert.Equal(t, edgeHighlight, hot.Color)

	cold := styler.EdgeStyle("e2", st)
	assert.Equal(t, edgeDefaultColor, cold.Color)

	// Hovering the edge itself highlights only that edge.
	one := styler.EdgeStyle("e2", State{HoveredEdge: "e2"})
	assert.Equal(t, edgeHighlight, one.Color)
}

func TestHighlightedEdgeCappedBySmallerEndpoint(t *testing.T) {
	g := testGraph()
	styler := NewStyler(g, "epstein")
	for _, e := range g.Edges {
		r := styler.EdgeStyle(e.ID, State{HoveredNode: e.Source})
		smaller := math.Min(styler.endpointSize(e.Source), styler.endpointSize(e.Target))
		assert.LessOrEqual(t, r.Size, smaller)
	}
}

func TestRootNodeLabelAlwaysForced(t *testing.T) {
	styler := NewStyler(testGraph(), "epstein")
	for _, st := range []State{
		{},
		{SelectedNode: "loner"},
		{SelectedNode: "loner", HoveredNode: "maxwell"},
		{SelectedEdge: "e1"},
	} {
		assert.True(t, styler.NodeStyle("epstein", st).ForceLabel, "state %+v", st)
	}
}

func TestReducersAreTotal(t *testing.T) {
	// Unknown ids, unknown groups and a nil graph all fall back to
	// defaults instead of failing.
	styler := NewStyler(testGraph(), "epstein")
	unknown := styler.NodeStyle("ghost", State{SelectedNode: "maxwell", HoveredEdge: "nope"})
	assert.Equal(t, nodeFadedColor, unknown.Color)

	loner := styler.NodeStyle("loner", State{})
	assert.Equal(t, DefaultNodeColor, loner.Color, "unknown group falls back to default color")

	empty := NewStyler(nil, "")
	n := empty.NodeStyle("anything", State{HoveredNode: "anything"})
	assert.Equal(t, MinNodeSize*hoverSizeFactor, n.Size)
	e := empty.EdgeStyle("anything", State{})
	assert.Equal(t, MinEdgeSize, e.Size)
}

func TestGroupColors(t *testing.T) {
	styler := NewStyler(testGraph(), "")
	assert.Equal(t, "#3388bb", styler.NodeStyle("visoski", State{}).Color)
	assert.Equal(t, "#4a4a6a", styler.NodeStyle("epstein", State{}).Color)
}

func TestDegreeBasedSizing(t *testing.T) {
	g := testGraph()
	styler := NewStyler(g, "")

	// epstein has degree 2, everyone else at most 1.
	hub := styler.NodeStyle("epstein", State{}).Size
	leaf := styler.NodeStyle("maxwell", State{}).Size
	isolated := styler.NodeStyle("loner", State{}).Size
	assert.Greater(t, hub, leaf)
	assert.Greater(t, leaf, isolated)
	assert.Equal(t, MinNodeSize, isolated)
}
