package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// Marshal serialises the value using sonic's default configuration.
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// MarshalIndent serialises the value with the supplied prefix and indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return sonic.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses JSON-encoded data into the provided value.
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// Encode streams the value as JSON into the writer, terminated by a newline.
func Encode(w io.Writer, v any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// Decode parses a single JSON value from the reader into the provided value.
func Decode(r io.Reader, v any) error {
	return sonic.ConfigDefault.NewDecoder(r).Decode(v)
}
