package dtoform

// EncodeToString is a convenience function that returns the form encoding of v
// as a string.
func EncodeToString(v any, opts ...Option) (string, error) {
	b, err := Marshal(v, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal returns the form encoding of v. See [Flatten] for the values that
// can be encoded and [ToPairs] for how fields are rendered.
func Marshal(v any, opts ...Option) ([]byte, error) {
	pairs, err := ToPairs(v, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(pairs.Encode()), nil
}
