package msg

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Payload is the application-defined data carried with a message. The
// engine treats it as opaque apart from defaulting a nil payload to an
// empty one.
type Payload map[string]any

// New returns an empty payload.
func New() Payload {
	return Payload{}
}

// Clone returns a deep copy of the payload. Nested maps and slices are
// copied recursively; other values are copied by assignment.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Payload:
		return val.Clone()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether two payloads are deeply equal.
func (p Payload) Equal(other Payload) bool {
	if len(p) == 0 && len(other) == 0 {
		return true
	}
	return reflect.DeepEqual(p, other)
}

// Get returns the value at a dotted path within the payload, using gjson
// path syntax. The second result is false when the path does not resolve.
func Get(p Payload, path string) (any, bool) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, false
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

// GetString returns the string at path, or "" when absent or not a string.
func GetString(p Payload, path string) string {
	v, ok := Get(p, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set returns a copy of the payload with path set to value, using sjson
// path syntax. The receiver is not modified.
func Set(p Payload, path string, value any) (Payload, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	data, err = sjson.SetBytes(data, path, value)
	if err != nil {
		return nil, fmt.Errorf("setting payload path %s: %w", path, err)
	}
	var out Payload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return out, nil
}

// Delete returns a copy of the payload with path removed.
func Delete(p Payload, path string) (Payload, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	data, err = sjson.DeleteBytes(data, path)
	if err != nil {
		return nil, fmt.Errorf("deleting payload path %s: %w", path, err)
	}
	var out Payload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return out, nil
}
