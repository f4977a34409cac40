package dtoform

import (
	"iter"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Slot is one field produced by [Flatten]: its path from the root, its raw
// value and the converter attached to it, if any. A nil Value marks a field
// with no value, which is left out of the encoded form unless its converter
// decides otherwise.
type Slot struct {
	Path      []string
	Value     any
	Converter ConverterFactory
}

// Flatten walks v depth-first and yields one [Slot] per scalar or nil field,
// in declaration order. Struct fields are visited in the order they are
// declared and map entries in sorted key order.
//
// v must be a struct, a string-keyed map, or a pointer to either. Any error
// is yielded once with a zero Slot, after which iteration ends. Breaking out
// of the loop stops the traversal.
func Flatten(v any, opts ...Option) iter.Seq2[Slot, error] {
	return newConfig(opts).flatten(v)
}

// identity distinguishes pointers of different types that share an address,
// such as a pointer to a struct and a pointer to its first field.
type identity struct {
	typ  reflect.Type
	addr uintptr
}

type walker struct {
	cfg   *config
	seen  map[identity]struct{}
	yield func(Slot, error) bool
}

func (c *config) flatten(v any) iter.Seq2[Slot, error] {
	return func(yield func(Slot, error) bool) {
		w := &walker{
			cfg:   c,
			seen:  make(map[identity]struct{}),
			yield: yield,
		}

		root, ptr, err := rootValue(v)
		if err != nil {
			w.fail(err)
			return
		}
		if id, ok := identityOf(root, ptr); ok {
			w.seen[id] = struct{}{}
		}
		w.walk(nil, root)
	}
}

// rootValue validates the top-level value and dereferences it.
func rootValue(v any) (reflect.Value, reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, reflect.Value{}, ErrNilArgument
	}

	rv, ptr, ok := indirect(reflect.ValueOf(v))
	if !ok || (rv.Kind() == reflect.Map && rv.IsNil()) {
		return reflect.Value{}, reflect.Value{}, ErrNilArgument
	}

	switch {
	case rv.Kind() == reflect.String:
		return reflect.Value{}, reflect.Value{}, &InvalidArgumentError{
			Type:   rv.Type(),
			Reason: "root must be a composite object",
		}
	case !isComposite(rv.Type()):
		return reflect.Value{}, reflect.Value{}, &InvalidArgumentError{
			Type:   rv.Type(),
			Reason: "root must be a struct or map",
		}
	}
	return rv, ptr, nil
}

func (w *walker) walk(path []string, v reflect.Value) bool {
	if v.Kind() == reflect.Map {
		return w.walkMap(path, v)
	}
	return w.walkStruct(path, v)
}

func (w *walker) walkStruct(path []string, v reflect.Value) bool {
	for _, f := range fields(v.Type()) {
		name := w.cfg.namer.NameOf(f.FieldDescriptor)
		if !w.walkField(appendPath(path, name), v.FieldByIndex(f.Index), f.Converter) {
			return false
		}
	}
	return true
}

func (w *walker) walkMap(path []string, v reflect.Value) bool {
	if v.Type().Key().Kind() != reflect.String {
		return w.fail(&InvalidArgumentError{
			Type:   v.Type(),
			Reason: "map keys must be strings",
		})
	}

	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, k := range keys {
		if !w.walkField(appendPath(path, k.String()), v.MapIndex(k), "") {
			return false
		}
	}
	return true
}

func (w *walker) walkField(path []string, v reflect.Value, converter string) bool {
	var factory ConverterFactory
	if converter != "" {
		factory = w.cfg.converters[converter]
		if factory == nil {
			return w.fail(&UnknownConverterError{Path: JoinPath(path), Name: converter})
		}
	}

	rv, ptr, ok := indirect(v)
	if !ok || (rv.Kind() == reflect.Map && rv.IsNil()) {
		return w.yield(Slot{Path: path, Converter: factory}, nil)
	}

	// A converter takes the value whole, whatever its shape.
	if factory != nil || !isComposite(rv.Type()) {
		return w.yield(Slot{Path: path, Value: rv.Interface(), Converter: factory}, nil)
	}

	if id, ok := identityOf(rv, ptr); ok {
		if _, seen := w.seen[id]; seen {
			return w.fail(&CycleError{Path: JoinPath(path), Type: rv.Type()})
		}
		w.seen[id] = struct{}{}
	}
	return w.walk(path, rv)
}

func (w *walker) fail(err error) bool {
	w.cfg.logger.Debug("flatten aborted", zap.Error(err))
	w.yield(Slot{}, err)
	return false
}

// indirect follows pointers and interfaces down to a concrete value. It also
// returns the last pointer followed, which identifies the value for cycle
// detection, and reports false if a nil was found on the way.
func indirect(v reflect.Value) (reflect.Value, reflect.Value, bool) {
	var ptr reflect.Value
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Pointer:
			if v.IsNil() {
				return reflect.Value{}, reflect.Value{}, false
			}
			ptr = v
			v = v.Elem()
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, reflect.Value{}, false
			}
			v = v.Elem()
		default:
			return v, ptr, true
		}
	}
	return reflect.Value{}, reflect.Value{}, false
}

// identityOf returns the identity of a composite value. Structs held by value
// have none. Zero-sized values are skipped because distinct allocations of
// them may share an address.
func identityOf(v, ptr reflect.Value) (identity, bool) {
	switch {
	case v.Kind() == reflect.Map:
		return identity{typ: v.Type(), addr: v.Pointer()}, true
	case ptr.IsValid() && v.Type().Size() > 0:
		return identity{typ: ptr.Type(), addr: ptr.Pointer()}, true
	}
	return identity{}, false
}

func isComposite(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		return !isScalarStruct(t) && hasExportedFields(t)
	}
	return false
}

func appendPath(path []string, name string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = name
	return p
}
