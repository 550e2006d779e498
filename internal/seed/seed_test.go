package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/epstein-graph/graph-backend/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `{
  "groups": {
    "associate": {"color": "#4a4a6a", "label": "Associate"}
  },
  "nodes": [
    {"id": "epstein", "label": "Jeffrey Epstein", "group": "associate"},
    {"id": "maxwell", "label": "Ghislaine Maxwell", "group": "associate"}
  ],
  "edges": [
    {"id": "e1", "source": "epstein", "target": "maxwell", "connection_type": "named in document", "doj_link": "https://justice.gov/d/1", "document_title": "Court filing"}
  ]
}`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	g, err := LoadFile(writeSeed(t, sampleSeed))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)
	assert.Len(t, g.Edges, 1)
	assert.Equal(t, graph.ConnectionDocument, g.Edges[0].ConnectionType)
	assert.Equal(t, "Associate", g.Groups["associate"].Label)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeSeed(t, "{not json"))
	assert.Error(t, err)
}

func TestProviderFallsBackToEmpty(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "missing.json"))
	g := p.Graph()
	require.NotNil(t, g)
	assert.Empty(t, g.Nodes)
}

func TestProviderReload(t *testing.T) {
	path := writeSeed(t, sampleSeed)
	p := NewProvider(path)
	require.Len(t, p.Graph().Nodes, 2)

	// A failed reload keeps the previous graph in place.
	require.NoError(t, os.Remove(path))
	assert.Error(t, p.Reload())
	assert.Len(t, p.Graph().Nodes, 2)

	// A successful reload swaps wholesale.
	require.NoError(t, os.WriteFile(path, []byte(`{"groups":{},"nodes":[],"edges":[]}`), 0o644))
	require.NoError(t, p.Reload())
	assert.Empty(t, p.Graph().Nodes)
}
