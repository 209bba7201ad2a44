package schema

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Map is an immutable keyword->value mapping that preserves the member order
// of the JSON document it was decoded from. Values are *Map, []any, string,
// json.Number, bool, or nil. Callers must not modify returned slices.
type Map struct {
	keys   []string
	values map[string]any
}

// Len returns the number of members.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the member names in document order.
func (m *Map) Keys() []string {
	return m.keys
}

// Has reports whether key is a member.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]

	return ok
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]

	return v, ok
}

// GetMap returns the value for key when it is a nested Map.
func (m *Map) GetMap(key string) (*Map, bool) {
	v, ok := m.values[key]
	if !ok {
		return nil, false
	}

	nested, ok := v.(*Map)

	return nested, ok
}

// GetString returns the value for key when it is a string.
func (m *Map) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// GetSlice returns the value for key when it is an array.
func (m *Map) GetSlice(key string) ([]any, bool) {
	v, ok := m.values[key]
	if !ok {
		return nil, false
	}

	arr, ok := v.([]any)

	return arr, ok
}

// LoadFile loads and parses a JSON schema document from the given path.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses JSON data into a Map, preserving member order. Numbers are
// kept as json.Number so integers survive re-emission verbatim.
func Parse(data []byte) (*Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	v, err := decodeValue(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("schema document must be a JSON object, got %T", v)
	}

	return m, nil
}

// MustParse is Parse for static documents; it panics on error.
func MustParse(data []byte) *Map {
	m, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return m
}

func decodeValue(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

func decodeObject(dec *json.Decoder) (*Map, error) {
	m := &Map{values: make(map[string]any)}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		v, err := decodeValue(dec, valTok)
		if err != nil {
			return nil, err
		}

		// Duplicate members keep their first position, last value wins.
		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}

		m.values[key] = v
	}

	// Closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		v, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}

		arr = append(arr, v)
	}

	// Closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}
