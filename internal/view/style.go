package view

import (
	"math"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

// Color palette for the dark investigative theme.
const (
	DefaultNodeColor = "#4a4a6a"
	nodeFadedColor   = "#1c1c30"
	edgeDefaultColor = "#2a2a44"
	edgeHighlight    = "#00aadd"
	edgeFadedColor   = "#111122"
)

// Node sizing: size = clamp(base + scale*sqrt(degree), min, max). Hubs get
// visibly larger without unbounded growth.
const (
	baseNodeSize = 4.0
	sizeScale    = 2.2
	MinNodeSize  = 4.0
	MaxNodeSize  = 20.0
)

// Edge sizing derives from the smaller endpoint so an edge never visually
// overpowers the smaller node it touches.
const (
	edgeSizeRatio = 0.25
	MinEdgeSize   = 0.5
	MaxEdgeSize   = 3.0

	hoverSizeFactor     = 1.3
	hoverEdgeSizeFactor = 2.5
)

// NodeRender is the full set of render attributes for one node at one
// redraw. Label == "" means the label is suppressed.
type NodeRender struct {
	Color      string
	Size       float64
	Label      string
	ForceLabel bool
	ZIndex     int
	Faded      bool
}

// EdgeRender is the render attributes for one edge.
type EdgeRender struct {
	Color  string
	Size   float64
	ZIndex int
	Faded  bool
}

// NodeSizeForDegree applies the degree-based size formula.
func NodeSizeForDegree(degree int) float64 {
	return clamp(baseNodeSize+sizeScale*math.Sqrt(float64(degree)), MinNodeSize, MaxNodeSize)
}

// EdgeSizeFor derives an edge's size from its two endpoint sizes.
func EdgeSizeFor(a, b float64) float64 {
	return clamp(math.Min(a, b)*edgeSizeRatio, MinEdgeSize, MaxEdgeSize)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Styler evaluates the style reducers over a fixed graph. Degrees, sizes
// and adjacency are computed once at construction and the graph is treated
// as immutable afterward; rebuild the styler when the graph changes.
type Styler struct {
	g         *graph.Graph
	rootID    string
	nodeSize  map[string]float64
	edgeSize  map[string]float64
	neighbors map[string]map[string]struct{}
	edgesOf   map[string]map[string]struct{}
}

// NewStyler precomputes sizes and adjacency for g. rootID names the
// distinguished central subject whose label is always forced; it may be ""
// and g may be nil (every reducer then renders defaults).
func NewStyler(g *graph.Graph, rootID string) *Styler {
	s := &Styler{
		g:         g,
		rootID:    rootID,
		nodeSize:  map[string]float64{},
		edgeSize:  map[string]float64{},
		neighbors: map[string]map[string]struct{}{},
		edgesOf:   map[string]map[string]struct{}{},
	}
	if g == nil {
		return s
	}

	degree := map[string]int{}
	for _, e := range g.Edges {
		degree[e.Source]++
		degree[e.Target]++
		addSet(s.neighbors, e.Source, e.Target)
		addSet(s.neighbors, e.Target, e.Source)
		addSet(s.edgesOf, e.Source, e.ID)
		addSet(s.edgesOf, e.Target, e.ID)
	}
	for _, n := range g.Nodes {
		s.nodeSize[n.ID] = NodeSizeForDegree(degree[n.ID])
	}
	for _, e := range g.Edges {
		s.edgeSize[e.ID] = EdgeSizeFor(s.endpointSize(e.Source), s.endpointSize(e.Target))
	}
	return s
}

func addSet(m map[string]map[string]struct{}, key, val string) {
	set, ok := m[key]
	if !ok {
		set = map[string]struct{}{}
		m[key] = set
	}
	set[val] = struct{}{}
}

func (s *Styler) endpointSize(nodeID string) float64 {
	if sz, ok := s.nodeSize[nodeID]; ok {
		return sz
	}
	return MinNodeSize
}

func (s *Styler) isNeighbor(of, id string) bool {
	_, ok := s.neighbors[of][id]
	return ok
}

func (s *Styler) isConnected(nodeID, edgeID string) bool {
	_, ok := s.edgesOf[nodeID][edgeID]
	return ok
}

// NodeStyle computes the render attributes for one node. Precedence:
// baseline, then selection fade, then hover (hover restores a faded node),
// then the root node's forced label. Total over all reachable states; an
// unknown group or missing node falls back to defaults.
func (s *Styler) NodeStyle(id string, st State) NodeRender {
	res := NodeRender{
		Color: s.groupColor(id),
		Size:  s.endpointSize(id),
	}
	if s.g != nil {
		if n, ok := s.g.NodeByID(id); ok {
			res.Label = n.Label
		}
	}
	baseColor, baseLabel, baseSize := res.Color, res.Label, res.Size

	// Selection layer: fade everything outside the selected node's
	// neighborhood.
	if sel := st.SelectedNode; sel != "" {
		switch {
		case id == sel:
			res.ForceLabel = true
			res.ZIndex = 2
			res.Size = baseSize * hoverSizeFactor
		case s.isNeighbor(sel, id):
			res.ForceLabel = true
			res.ZIndex = 1
		default:
			res.Color = nodeFadedColor
			res.Label = ""
			res.Faded = true
		}
	}

	// Hover layer: the hovered node always wins visually, even over a
	// selection fade.
	if hov := st.HoveredNode; hov != "" {
		if id == hov {
			res.ForceLabel = true
			res.ZIndex = 2
			res.Size = baseSize * hoverSizeFactor
			res.Color = baseColor
			res.Label = baseLabel
			res.Faded = false
		} else if s.isNeighbor(hov, id) {
			res.ForceLabel = true
		}
	}

	if id == s.rootID && s.rootID != "" {
		res.ForceLabel = true
	}
	return res
}

// EdgeStyle computes the render attributes for one edge. Selection fades
// non-connected edges; hover highlights the edges of the hovered node, or
// the single hovered edge. The highlighted size is still capped by the
// smaller endpoint's size.
func (s *Styler) EdgeStyle(id string, st State) EdgeRender {
	res := EdgeRender{
		Color: edgeDefaultColor,
		Size:  s.baseEdgeSize(id),
	}
	baseSize := res.Size

	if sel := st.SelectedNode; sel != "" && !s.isConnected(sel, id) {
		res.Color = edgeFadedColor
		res.Faded = true
	}

	highlight := false
	if hov := st.HoveredNode; hov != "" {
		highlight = s.isConnected(hov, id)
	} else if st.HoveredEdge == id && id != "" {
		highlight = true
	}
	if highlight {
		res.Color = edgeHighlight
		res.Size = math.Min(baseSize*hoverEdgeSizeFactor, s.smallerEndpointSize(id))
		res.ZIndex = 2
		res.Faded = false
	}
	return res
}

func (s *Styler) baseEdgeSize(id string) float64 {
	if sz, ok := s.edgeSize[id]; ok {
		return sz
	}
	return MinEdgeSize
}

func (s *Styler) smallerEndpointSize(edgeID string) float64 {
	if s.g == nil {
		return MinNodeSize
	}
	e, ok := s.g.EdgeByID(edgeID)
	if !ok {
		return MinNodeSize
	}
	return math.Min(s.endpointSize(e.Source), s.endpointSize(e.Target))
}

func (s *Styler) groupColor(nodeID string) string {
	if s.g == nil {
		return DefaultNodeColor
	}
	n, ok := s.g.NodeByID(nodeID)
	if !ok {
		return DefaultNodeColor
	}
	if gs, ok := s.g.Groups[string(n.Group)]; ok && gs.Color != "" {
		return gs.Color
	}
	return DefaultNodeColor
}
