package dtoform

import (
	"errors"
	"fmt"
	"time"
)

// ErrOmit may be returned by a [ValueConverter] to leave its field out of the
// encoded form, the same way a nil value is left out.
var ErrOmit = errors.New("form: omit value")

// ValueConverter renders the raw value of a field as a string. It is called
// for every field it is attached to, including fields whose value is nil, in
// which case v is nil. Implementations should not url-encode the result.
type ValueConverter interface {
	ConvertForm(v any) (string, error)
}

// ConverterFunc adapts an ordinary function to a [ValueConverter].
type ConverterFunc func(v any) (string, error)

func (fn ConverterFunc) ConvertForm(v any) (string, error) {
	return fn(v)
}

// ConverterFactory produces a ready-to-use [ValueConverter]. A new converter is
// requested for every value rendered, so converters may keep per-value state.
type ConverterFactory func() ValueConverter

// Converter returns a factory that always yields c. It suits stateless
// converters.
func Converter(c ValueConverter) ConverterFactory {
	return func() ValueConverter { return c }
}

// TimeConverter returns a factory for converters that format time.Time values
// (or pointers to them) with layout. Nil values are omitted.
func TimeConverter(layout string) ConverterFactory {
	return Converter(ConverterFunc(func(v any) (string, error) {
		switch t := v.(type) {
		case nil:
			return "", ErrOmit
		case time.Time:
			return t.Format(layout), nil
		case *time.Time:
			if t == nil {
				return "", ErrOmit
			}
			return t.Format(layout), nil
		default:
			return "", fmt.Errorf("time converter cannot format %T", v)
		}
	}))
}
