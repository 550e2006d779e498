package graph

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Validation errors surfaced to the API layer. Handlers map these to HTTP
// status codes (400 for malformed input, 409 for duplicates).
var (
	ErrLabelLength     = errors.New("label must be between 2 and 100 characters")
	ErrDuplicateLabel  = errors.New("a person with that name already exists")
	ErrMissingEndpoint = errors.New("source and target are required")
	ErrSameEndpoints   = errors.New("source and target must differ")
	ErrUnknownEndpoint = errors.New("source and target must reference existing people")
)

const (
	minLabelLen = 2
	maxLabelLen = 100

	maxLinkLen  = 500
	maxTitleLen = 300
	maxQuoteLen = 1000
)

// NodeSubmission is a user-submitted node before validation. Group and
// Gender are free text here; they coerce to the closed sets, never reject.
type NodeSubmission struct {
	Label  string
	Role   string
	Group  string
	Gender string
}

// Validate normalizes the submission into a Node (without ID or Image,
// which the caller assigns). The only rejection is label length; group and
// gender silently coerce to their defaults.
func (s NodeSubmission) Validate() (Node, error) {
	label := strings.TrimSpace(s.Label)
	if n := utf8.RuneCountInString(label); n < minLabelLen || n > maxLabelLen {
		return Node{}, ErrLabelLength
	}
	return Node{
		Label:  label,
		Role:   strings.TrimSpace(s.Role),
		Group:  ParseGroup(s.Group),
		Gender: ParseGender(s.Gender),
	}, nil
}

// EdgeSubmission is a user-submitted edge before validation.
type EdgeSubmission struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	ConnectionType string `json:"connection_type"`
	DOJLink        string `json:"doj_link"`
	DocumentTitle  string `json:"document_title"`
	QuoteSnippet   string `json:"quote_snippet"`
}

// Validate normalizes the submission into an Edge (without ID). Endpoint
// existence is checked by the caller against the seed/user union; here only
// shape rules apply. Free-text fields are capped by truncation, not
// rejection.
func (s EdgeSubmission) Validate() (Edge, error) {
	source := strings.TrimSpace(s.Source)
	target := strings.TrimSpace(s.Target)
	if source == "" || target == "" {
		return Edge{}, ErrMissingEndpoint
	}
	if source == target {
		return Edge{}, ErrSameEndpoints
	}
	return Edge{
		Source:         source,
		Target:         target,
		ConnectionType: ParseConnectionType(s.ConnectionType),
		DOJLink:        truncate(strings.TrimSpace(s.DOJLink), maxLinkLen),
		DocumentTitle:  truncate(strings.TrimSpace(s.DocumentTitle), maxTitleLen),
		QuoteSnippet:   truncate(strings.TrimSpace(s.QuoteSnippet), maxQuoteLen),
	}, nil
}

// truncate caps s to max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
