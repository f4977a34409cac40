package dtoform

import (
	"io"
)

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder creates a new [Encoder] that writes to w. The options apply to
// every value encoded.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode encodes v as form-urlencoded data and writes it to the underlying
// [io.Writer]. Nothing is written if v cannot be encoded.
func (e *Encoder) Encode(v any) error {
	data, err := Marshal(v, e.opts...)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	return err
}
