// Package jsonutil provides shared JSON helpers: strict decoding for
// documents read from disk and pretty encoding, both wrapping errors with a
// context message.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UnmarshalStrict unmarshals JSON data into v, rejecting unknown fields and
// anything but whitespace after the first value. Errors are wrapped with the
// provided context message.
func UnmarshalStrict(data []byte, v interface{}, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: trailing data after JSON value", context)
	}
	return nil
}

// MarshalPretty encodes v as two-space indented JSON with a trailing newline.
func MarshalPretty(v interface{}, context string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return append(data, '\n'), nil
}
