package view

import "sort"

// Camera is the narrow contract to the rendering layer for recentring.
// Implementations animate; the controller only issues commands.
type Camera interface {
	CenterOn(nodeID string)
	Reset()
}

// NopCamera satisfies Camera without doing anything, for headless use.
type NopCamera struct{}

func (NopCamera) CenterOn(string) {}
func (NopCamera) Reset()          {}

// Controller binds pointer and keyboard events to store mutations. All
// side effects are synchronous; camera movement is delegated through the
// Camera contract.
type Controller struct {
	store  *Store
	camera Camera

	searchFocused  bool
	highlightIndex int
}

func NewController(store *Store, camera Camera) *Controller {
	if camera == nil {
		camera = NopCamera{}
	}
	return &Controller{store: store, camera: camera}
}

// ClickNode selects the node and recenters the camera on it.
func (c *Controller) ClickNode(id string) {
	c.store.SelectNode(id)
	c.camera.CenterOn(id)
}

// ClickEdge selects the edge.
func (c *Controller) ClickEdge(id string) {
	c.store.SelectEdge(id)
}

// ClickBackground clears both selections.
func (c *Controller) ClickBackground() {
	c.store.SelectNode("")
	c.store.SelectEdge("")
}

func (c *Controller) EnterNode(id string) { c.store.SetHoveredNode(id) }
func (c *Controller) LeaveNode()          { c.store.SetHoveredNode("") }
func (c *Controller) EnterEdge(id string) { c.store.SetHoveredEdge(id) }
func (c *Controller) LeaveEdge()          { c.store.SetHoveredEdge("") }

// FocusSearch moves keyboard focus to the search field.
func (c *Controller) FocusSearch() {
	c.searchFocused = true
}

// BlurSearch drops keyboard focus from the search field.
func (c *Controller) BlurSearch() {
	c.searchFocused = false
}

// SearchFocused reports whether the search field has focus.
func (c *Controller) SearchFocused() bool { return c.searchFocused }

// SearchInput updates the query; results recompute synchronously on every
// keystroke, no debouncing.
func (c *Controller) SearchInput(query string) {
	c.highlightIndex = 0
	c.store.SetSearchQuery(query)
}

// HighlightNext moves the search highlight down, clamped to the result
// list.
func (c *Controller) HighlightNext() {
	if n := len(c.store.SearchNodes(c.store.Snapshot().SearchQuery)); c.highlightIndex < n-1 {
		c.highlightIndex++
	}
}

// HighlightPrev moves the search highlight up.
func (c *Controller) HighlightPrev() {
	if c.highlightIndex > 0 {
		c.highlightIndex--
	}
}

// SubmitSearch selects the highlighted match (first by default), recenters
// on it and clears the query. No-op when nothing matches.
func (c *Controller) SubmitSearch() {
	results := c.store.SearchNodes(c.store.Snapshot().SearchQuery)
	if len(results) == 0 {
		return
	}
	idx := c.highlightIndex
	if idx < 0 || idx >= len(results) {
		idx = 0
	}
	target := results[idx]
	c.store.SetSearchQuery("")
	c.highlightIndex = 0
	c.searchFocused = false
	c.store.SelectNode(target.ID)
	c.camera.CenterOn(target.ID)
}

// NextNeighbor steps the selection to the next neighbor of the selected
// node, wrapping at the end.
func (c *Controller) NextNeighbor() { c.stepNeighbor(1) }

// PrevNeighbor steps backwards, wrapping at the start.
func (c *Controller) PrevNeighbor() { c.stepNeighbor(-1) }

func (c *Controller) stepNeighbor(dir int) {
	sel := c.store.Snapshot().SelectedNode
	if sel == "" {
		return
	}
	set := c.store.NeighborsOf(sel)
	if len(set) == 0 {
		return
	}
	neighbors := make([]string, 0, len(set))
	for id := range set {
		neighbors = append(neighbors, id)
	}
	sort.Strings(neighbors)

	// The selected node is normally not its own neighbor, so stepping
	// starts from the edge of the list.
	cur := -1
	for i, id := range neighbors {
		if id == sel {
			cur = i
			break
		}
	}
	next := cur + dir
	if next >= len(neighbors) {
		next = 0
	}
	if next < 0 {
		next = len(neighbors) - 1
	}
	c.ClickNode(neighbors[next])
}

// Escape clears the search when it has focus, otherwise resets the camera
// to the overview and clears the selection.
func (c *Controller) Escape() {
	if c.searchFocused {
		c.SearchInput("")
		c.BlurSearch()
		return
	}
	c.store.SelectNode("")
	c.camera.Reset()
}

// Key dispatches a raw keyboard event name to the bound action. "ctrl+k"
// and "/" focus the search field.
func (c *Controller) Key(key string) {
	switch key {
	case "/", "ctrl+k":
		c.FocusSearch()
	case "Enter":
		if c.searchFocused {
			c.SubmitSearch()
		}
	case "ArrowDown":
		if c.searchFocused {
			c.HighlightNext()
		}
	case "ArrowUp":
		if c.searchFocused {
			c.HighlightPrev()
		}
	case "ArrowRight":
		if !c.searchFocused {
			c.NextNeighbor()
		}
	case "ArrowLeft":
		if !c.searchFocused {
			c.PrevNeighbor()
		}
	case "Escape":
		c.Escape()
	}
}
