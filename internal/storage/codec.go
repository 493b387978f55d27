package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

var jsonNull = []byte("null")

// DecodeJSON decodes raw into T. A bare null, unknown fields, trailing data
// and type mismatches are reported as ErrMalformed so callers can fall back
// to a default.
func DecodeJSON[T any](raw string) (T, error) {
	var out T
	if bytes.Equal(bytes.TrimSpace([]byte(raw)), jsonNull) {
		return out, fmt.Errorf("%w: null", ErrMalformed)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		var zero T
		return zero, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	return out, nil
}

// EncodeJSON encodes v as compact JSON without HTML escaping.
func EncodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
