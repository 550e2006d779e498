package graph

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// NewNodeID builds a node id from the label slug plus a short random hex
// suffix. The suffix makes ids collision-resistant without a duplicate-id
// check against existing rows.
func NewNodeID(label string) string {
	s := slugify(label)
	if s == "" {
		s = "node"
	}
	return s + "-" + randHex(4)
}

// NewEdgeID returns a random token suitable as an edge id.
func NewEdgeID() string {
	return "ue-" + uuid.NewString()
}

// NewUploadName returns a unique image filename preserving the extension.
func NewUploadName(ext string) string {
	return uuid.NewString() + strings.ToLower(ext)
}

func slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
