package dtoform

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// isScalarStruct reports whether a struct type has a default string form and
// must not be walked into.
func isScalarStruct(t reflect.Type) bool {
	return t == decimalType
}

// Render returns the string form of a slot's value. The second result is
// false when the field has no value and should be left out of the form.
//
// A slot's converter always takes precedence. Without one, strings, integers,
// floats and decimals are formatted directly and anything else yields an
// [UnsupportedTypeError].
func Render(s Slot) (string, bool, error) {
	if s.Converter != nil {
		str, err := s.Converter().ConvertForm(s.Value)
		switch {
		case errors.Is(err, ErrOmit):
			return "", false, nil
		case err != nil:
			return "", false, fmt.Errorf("form: field %s: %w", JoinPath(s.Path), err)
		}
		return str, true, nil
	}

	if s.Value == nil {
		return "", false, nil
	}

	v := reflect.ValueOf(s.Value)
	str, ok := formatScalar(v)
	if !ok {
		return "", false, &UnsupportedTypeError{Path: JoinPath(s.Path), Type: v.Type()}
	}
	return str, true, nil
}

// ToPairs flattens v and renders every field, returning the name/value pairs
// in traversal order. Fields without a value are omitted.
func ToPairs(v any, opts ...Option) (Pairs, error) {
	return newConfig(opts).pairs(v)
}

func (c *config) pairs(v any) (Pairs, error) {
	out := Pairs{}
	for s, err := range c.flatten(v) {
		if err != nil {
			return nil, err
		}

		name := JoinPath(s.Path)
		val, ok, err := Render(s)
		if err != nil {
			c.logger.Debug("render failed", zap.String("field", name), zap.Error(err))
			return nil, err
		}
		if !ok {
			c.logger.Debug("omitting field without value", zap.String("field", name))
			continue
		}
		out = append(out, Pair{Name: name, Value: val})
	}
	return out, nil
}

func formatScalar(v reflect.Value) (string, bool) {
	if v.Type() == decimalType {
		return v.Interface().(decimal.Decimal).String(), true
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), true
	default:
		return "", false
	}
}
