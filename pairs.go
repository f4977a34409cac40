package dtoform

import (
	"net/url"
	"strings"
)

// Pair is a single form field name and its rendered value, before escaping.
type Pair struct {
	Name  string
	Value string
}

// Pairs is an ordered list of form fields.
type Pairs []Pair

// Encode returns the pairs in application/x-www-form-urlencoded form. Unlike
// [url.Values.Encode], the order of the pairs is preserved.
func (p Pairs) Encode() string {
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// Values returns the pairs as [url.Values]. Values are grouped by name, and
// url.Values does not remember the order of the names.
func (p Pairs) Values() url.Values {
	values := make(url.Values, len(p))
	for _, pair := range p {
		values.Add(pair.Name, pair.Value)
	}
	return values
}
