package dtoform

import (
	"errors"
	"reflect"
	"strconv"
)

// ErrNilArgument is returned when the value passed to [Flatten] (or any of the
// functions built on it) is nil, a nil pointer or a nil map.
var ErrNilArgument = errors.New("form: nil argument")

// ErrCycle is matched by every [CycleError] through [errors.Is].
var ErrCycle = errors.New("form: object contains cycles and cannot be encoded")

// InvalidArgumentError describes a value that cannot be walked because it has
// no named fields, such as a bare string or number at the top level.
type InvalidArgumentError struct {
	Type   reflect.Type
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	msg := "form: " + e.Reason
	if e.Type != nil {
		msg += ", got " + e.Type.String()
	}
	return msg
}

// CycleError is returned when a pointer or map is reached a second time
// during a single traversal. Shared references that do not form a loop are
// reported too.
type CycleError struct {
	Path string
	Type reflect.Type
}

func (e *CycleError) Error() string {
	return ErrCycle.Error() + " (field " + e.Path + " of type " + e.Type.String() + ")"
}

// Is reports whether target is [ErrCycle].
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// UnsupportedTypeError is returned when a field holds a value that has no
// default string form and no converter was attached to it.
type UnsupportedTypeError struct {
	Path string
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "form: unsupported type " + e.Type.String() + " for field " + e.Path
}

// UnknownConverterError is returned when a field refers to a converter name
// that was never registered with [WithConverter].
type UnknownConverterError struct {
	Path string
	Name string
}

func (e *UnknownConverterError) Error() string {
	return "form: unknown converter " + strconv.Quote(e.Name) + " for field " + e.Path
}
