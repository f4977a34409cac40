// Package dtoform flattens Go values into application/x-www-form-urlencoded
// form data.
//
// A struct (or string-keyed map) is walked depth-first and every scalar field
// becomes one name/value pair. Nested fields use the bracket convention common
// to web forms, so a field Value inside Nested inside Child is submitted as
// Child[Nested][Value]. Field names come from a pluggable [FieldNamer] and the
// string form of a field may be overridden per field with a registered
// [ValueConverter]:
//
//	type Event struct {
//		Title string    `form:"title"`
//		At    time.Time `form:"at" formconv:"rfc3339"`
//	}
//
//	body, err := dtoform.Marshal(ev,
//		dtoform.WithNamer(dtoform.TagNamer{}),
//		dtoform.WithConverter("rfc3339", dtoform.TimeConverter(time.RFC3339)),
//	)
//
// Nil pointers, interfaces and maps are omitted from the output. A pointer or
// map reached twice during one traversal is reported as a [CycleError], even
// when the graph is a diamond rather than a true cycle.
package dtoform
