// Package graph holds the domain model for the connection graph: people as
// nodes, documented connections as edges, and the closed vocabularies
// (groups, genders, connection types) with their lenient coercion rules.
package graph

import "strings"

// ConnectionType classifies how two people are linked. The set is closed;
// anything outside it coerces to ConnectionOther.
type ConnectionType string

const (
	ConnectionDocument  ConnectionType = "named in document"
	ConnectionFlight    ConnectionType = "flight record"
	ConnectionTestimony ConnectionType = "testimony mention"
	ConnectionFinancial ConnectionType = "financial record"
	ConnectionPhoto     ConnectionType = "photograph"
	ConnectionOther     ConnectionType = "other"
)

// ConnectionTypes lists the closed set in display order.
var ConnectionTypes = []ConnectionType{
	ConnectionDocument,
	ConnectionFlight,
	ConnectionTestimony,
	ConnectionFinancial,
	ConnectionPhoto,
	ConnectionOther,
}

// ParseConnectionType coerces free input to a member of the closed set.
// Unknown values become ConnectionOther rather than failing; invalid
// submissions are accepted but normalized.
func ParseConnectionType(s string) ConnectionType {
	v := ConnectionType(strings.ToLower(strings.TrimSpace(s)))
	for _, ct := range ConnectionTypes {
		if v == ct {
			return ct
		}
	}
	return ConnectionOther
}

// Group tags a node with its cluster in the network.
type Group string

const (
	GroupAssociate     Group = "associate"
	GroupStaff         Group = "staff"
	GroupAccuser       Group = "accuser"
	GroupLegal         Group = "legal"
	GroupAviation      Group = "aviation"
	GroupProsecution   Group = "prosecution"
	GroupInternational Group = "international"
)

var Groups = []Group{
	GroupAssociate,
	GroupStaff,
	GroupAccuser,
	GroupLegal,
	GroupAviation,
	GroupProsecution,
	GroupInternational,
}

// ParseGroup coerces free input to a member of the group allow-list,
// defaulting to GroupAssociate.
func ParseGroup(s string) Group {
	v := Group(strings.ToLower(strings.TrimSpace(s)))
	for _, g := range Groups {
		if v == g {
			return g
		}
	}
	return GroupAssociate
}

// ParseGender coerces input to "male" or "female"; anything other than
// "female" becomes the default "male".
func ParseGender(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == "female" {
		return "female"
	}
	return "male"
}

// GroupStyle is the legend entry for one group: display label and node color.
type GroupStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Node is a person in the graph. Identity is ID; Label uniqueness
// (case-insensitive) is a business rule enforced at write time.
type Node struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Role   string  `json:"role,omitempty"`
	Group  Group   `json:"group,omitempty"`
	Gender string  `json:"gender,omitempty"`
	Image  string  `json:"image,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// Edge is a documented connection between two nodes. Source and target must
// differ and must reference existing node ids at creation time; no cascade
// rule exists afterward.
type Edge struct {
	ID             string         `json:"id"`
	Source         string         `json:"source"`
	Target         string         `json:"target"`
	ConnectionType ConnectionType `json:"connection_type"`
	DOJLink        string         `json:"doj_link"`
	DocumentTitle  string         `json:"document_title"`
	QuoteSnippet   string         `json:"quote_snippet,omitempty"`
}

// Touches reports whether the edge has nodeID as either endpoint.
func (e Edge) Touches(nodeID string) bool {
	return e.Source == nodeID || e.Target == nodeID
}

// Graph is the served dataset: group legend plus ordered node and edge
// sequences. The served graph is a read-time union of the immutable seed
// graph and the append-only user-submitted rows.
type Graph struct {
	Groups map[string]GroupStyle `json:"groups"`
	Nodes  []Node                `json:"nodes"`
	Edges  []Edge                `json:"edges"`
}

// Empty returns a graph with no nodes or edges, used as the fallback when
// the seed file is unreadable.
func Empty() *Graph {
	return &Graph{
		Groups: map[string]GroupStyle{},
		Nodes:  []Node{},
		Edges:  []Edge{},
	}
}

// NodeByID returns the node with the given id, or false on miss.
func (g *Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgeByID returns the edge with the given id, or false on miss.
func (g *Graph) EdgeByID(id string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return Edge{}, false
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.NodeByID(id)
	return ok
}

// HasLabel reports whether a node with the given label exists,
// case-insensitively.
func (g *Graph) HasLabel(label string) bool {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, n := range g.Nodes {
		if strings.ToLower(n.Label) == want {
			return true
		}
	}
	return false
}
