package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectionType(t *testing.T) {
	assert.Equal(t, ConnectionFlight, ParseConnectionType("flight record"))
	assert.Equal(t, ConnectionDocument, ParseConnectionType("  Named In Document "))

	// Lenient by design: unknown values coerce to "other" instead of failing.
	assert.Equal(t, ConnectionOther, ParseConnectionType("bogus"))
	assert.Equal(t, ConnectionOther, ParseConnectionType(""))
}

func TestParseGroup(t *testing.T) {
	assert.Equal(t, GroupAccuser, ParseGroup("accuser"))
	assert.Equal(t, GroupLegal, ParseGroup("LEGAL"))

	// Lenient by design: outside the allow-list coerces to "associate".
	assert.Equal(t, GroupAssociate, ParseGroup("villain"))
	assert.Equal(t, GroupAssociate, ParseGroup(""))
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, "female", ParseGender("Female"))
	assert.Equal(t, "male", ParseGender("male"))
	assert.Equal(t, "male", ParseGender("unknown"))
	assert.Equal(t, "male", ParseGender(""))
}

func TestGraphLookups(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "epstein", Label: "Jeffrey Epstein"},
			{ID: "maxwell", Label: "Ghislaine Maxwell"},
		},
		Edges: []Edge{
			{ID: "e1", Source: "epstein", Target: "maxwell", ConnectionType: ConnectionDocument},
		},
	}

	n, ok := g.NodeByID("maxwell")
	require.True(t, ok)
	assert.Equal(t, "Ghislaine Maxwell", n.Label)

	_, ok = g.NodeByID("missing")
	assert.False(t, ok)

	e, ok := g.EdgeByID("e1")
	require.True(t, ok)
	assert.True(t, e.Touches("epstein"))
	assert.True(t, e.Touches("maxwell"))
	assert.False(t, e.Touches("other"))

	assert.True(t, g.HasLabel("ghislaine maxwell"))
	assert.True(t, g.HasLabel("  JEFFREY EPSTEIN "))
	assert.False(t, g.HasLabel("nobody"))
}

func TestEmptyGraph(t *testing.T) {
	g := Empty()
	assert.NotNil(t, g.Groups)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
	assert.False(t, g.HasNode("anything"))
}
