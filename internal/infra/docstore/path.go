package docstore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Path joins a collection and a key
func Path(collection, key string) string {
	return collection + "/" + key
}

// SplitPath splits "<collection>/<key>" into its parts
func SplitPath(path string) (collection, key string, err error) {
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return parts[0], parts[1], nil
}

// NewKey returns a new time-ordered document key
func NewKey() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: generate key: %v", ErrEncode, err)
	}
	return id.String(), nil
}

// Encode serializes a document value. Raw JSON is passed through.
func Encode(value interface{}) (json.RawMessage, error) {
	switch v := value.(type) {
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, fmt.Errorf("%w: invalid raw json", ErrEncode)
		}
		return v, nil
	case []byte:
		if !json.Valid(v) {
			return nil, fmt.Errorf("%w: invalid raw json", ErrEncode)
		}
		return json.RawMessage(v), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// MergeFields applies fields on top of an object document.
// A nil field value removes the field.
func MergeFields(doc json.RawMessage, fields map[string]interface{}) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil || obj == nil {
		return nil, ErrNotObject
	}

	for name, value := range fields {
		if value == nil {
			delete(obj, name)
			continue
		}
		encoded, err := Encode(value)
		if err != nil {
			return nil, err
		}
		obj[name] = encoded
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		cp := make(json.RawMessage, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
