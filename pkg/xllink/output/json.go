// Package output serializes reports to JSON.
package output

import (
	"encoding/json"
	"io"
	"os"
)

// ToJSON serializes v to JSON. If pretty is true, output is indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Write serializes v to w followed by a newline.
func Write(w io.Writer, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteFile serializes v to the file at path, or to stdout if path is empty.
func WriteFile(path string, v any, pretty bool) error {
	if path == "" {
		return Write(os.Stdout, v, pretty)
	}
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
