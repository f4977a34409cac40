package dtoform

import (
	"reflect"
	"strings"
)

// FieldDescriptor describes one exported field of a struct being flattened.
type FieldDescriptor struct {
	Name  string
	Type  reflect.Type
	Tag   reflect.StructTag
	Index []int
}

// FieldNamer computes the external name of a field at a single level of
// nesting. Implementations must be deterministic and must not escape the
// returned name; percent-encoding happens when the pairs are encoded.
type FieldNamer interface {
	NameOf(f FieldDescriptor) string
}

// NamerFunc adapts an ordinary function to a [FieldNamer].
type NamerFunc func(f FieldDescriptor) string

func (fn NamerFunc) NameOf(f FieldDescriptor) string {
	return fn(f)
}

// DefaultNamer names every field after its Go identifier.
type DefaultNamer struct{}

func (DefaultNamer) NameOf(f FieldDescriptor) string {
	return f.Name
}

// TagNamer names fields from a struct tag, falling back to [DefaultNamer] when
// the tag is missing or its name part is empty. Key defaults to "form", so
// `form:"first_name,omitempty"` names the field first_name.
type TagNamer struct {
	Key string
}

func (n TagNamer) NameOf(f FieldDescriptor) string {
	key := n.Key
	if key == "" {
		key = formTag
	}

	name, _, _ := strings.Cut(f.Tag.Get(key), ",")
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return DefaultNamer{}.NameOf(f)
}
