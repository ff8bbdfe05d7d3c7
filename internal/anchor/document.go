package anchor

import "github.com/msto63/textkit/foundation/utils/mapx"

// Document is a multi-valued field set built up for indexing one page
type Document struct {
	URL    string
	fields map[string][]string
}

// NewDocument creates an empty document for url
func NewDocument(url string) *Document {
	return &Document{URL: url, fields: make(map[string][]string)}
}

// Add appends value to field
func (d *Document) Add(field, value string) {
	if d.fields == nil {
		d.fields = make(map[string][]string)
	}
	d.fields[field] = append(d.fields[field], value)
}

// Values returns a copy of the values of field in insertion order
func (d *Document) Values(field string) []string {
	return append([]string(nil), d.fields[field]...)
}

// Fields returns the field names in sorted order
func (d *Document) Fields() []string {
	return mapx.SortedKeys(d.fields)
}
