// Package anchor turns the inbound links of a page into "anchor" fields of
// its index document.
package anchor

import (
	"golang.org/x/text/cases"

	"github.com/msto63/textkit/foundation/utils/mapx"
)

// Field is the document field anchors are added to
const Field = "anchor"

// Filter adds inlink anchor texts to a document
type Filter struct {
	// Deduplicate drops anchors equal to an earlier one under case folding
	Deduplicate bool
}

// NewFilter creates a filter
func NewFilter(deduplicate bool) *Filter {
	return &Filter{Deduplicate: deduplicate}
}

// Apply adds every non-empty anchor of inlinks (url to anchor text) to doc
// and returns doc. Inlinks are visited in url order.
func (f *Filter) Apply(doc *Document, inlinks map[string]string) *Document {
	var (
		seen   map[string]struct{}
		folder cases.Caser
	)
	if f.Deduplicate {
		seen = make(map[string]struct{})
		folder = cases.Fold()
	}

	for _, u := range mapx.SortedKeys(inlinks) {
		text := inlinks[u]
		if text == "" {
			continue
		}
		if f.Deduplicate {
			key := folder.String(text)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		doc.Add(Field, text)
	}
	return doc
}
