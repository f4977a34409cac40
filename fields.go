package dtoform

import (
	"reflect"
	"strings"
	"sync"
)

const (
	formTag      = "form"
	converterTag = "formconv"
)

// cache of walkable fields to avoid repeated reflection over the same struct
// type across multiple traversals. The key is the [reflect.Type] of the
// struct, and the value is a []field in declaration order.
//
// This cache is safe for concurrent use.
var structFieldCache sync.Map

type field struct {
	FieldDescriptor

	// Converter is the registered converter name from the formconv tag, or
	// empty when the field uses the default rendering.
	Converter string
}

// fields returns the exported, non-ignored fields of the struct type t.
func fields(t reflect.Type) []field {
	if cached, ok := structFieldCache.Load(t); ok {
		return cached.([]field)
	}

	fs := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || ignored(f.Tag.Get(formTag)) {
			continue
		}
		fs = append(fs, field{
			FieldDescriptor: FieldDescriptor{
				Name:  f.Name,
				Type:  f.Type,
				Tag:   f.Tag,
				Index: f.Index,
			},
			Converter: strings.TrimSpace(f.Tag.Get(converterTag)),
		})
	}

	actual, _ := structFieldCache.LoadOrStore(t, fs)
	return actual.([]field)
}

// ignored reports whether a form tag excludes its field from encoding, either
// with a bare "-" or with the ignore flag.
func ignored(tag string) bool {
	parts := strings.Split(tag, ",")
	if strings.TrimSpace(parts[0]) == "-" {
		return true
	}
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "ignore" {
			return true
		}
	}
	return false
}

// hasExportedFields reports whether the struct type t exposes anything to
// walk. Structs without exported fields, such as time.Time, are opaque and
// treated as scalars.
func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
