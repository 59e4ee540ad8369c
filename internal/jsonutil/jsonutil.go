// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling, pretty-printing, and the keep-last-valid parse used by
// the plan config editor.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// PrettyObject renders an object as indented JSON for display in an editor.
// Falls back to "{}" if the object cannot be marshaled (cyclic values etc.).
func PrettyObject(v map[string]interface{}) string {
	if v == nil {
		return "{}"
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// ParseObject parses text as a JSON object. Returns (object, true) on success
// and (nil, false) otherwise. Invalid input never panics or returns an error;
// callers keep their previous valid object when ok is false.
func ParseObject(text string) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	if obj == nil {
		// "null" parses but is not an object.
		return nil, false
	}
	return obj, true
}
