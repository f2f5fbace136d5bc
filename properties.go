// FILE: lixenwraith/logconf/properties.go
package logconf

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Properties is an ordered string to string mapping, the raw input of the
// parser. Keys iterate in insertion order.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty Properties.
func NewProperties() *Properties {
	return &Properties{
		values: make(map[string]string),
	}
}

// PropertiesFromMap copies m into a Properties with keys in lexical order.
func PropertiesFromMap(m map[string]string) *Properties {
	p := NewProperties()
	for _, key := range sortedKeys(m) {
		p.Set(key, m[key])
	}
	return p
}

// PropertiesFromNested flattens a nested map into dot-notation keys,
// e.g. {"logger": {"com": {"foo": "warn"}}} becomes "logger.com.foo".
// Scalar leaves are converted to strings; booleans become "1" or "0".
// A dotted key that names the same path as a nested one, such as
// "logger.com" next to {"logger": {"com": ...}}, is rejected.
func PropertiesFromNested(nested map[string]any) (*Properties, error) {
	flat := make(map[string]any)
	if err := flattenMap(nested, "", flat); err != nil {
		return nil, err
	}

	p := NewProperties()
	for _, key := range sortedKeys(flat) {
		value, err := scalarString(flat[key])
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidNested, key, err)
		}
		p.Set(key, value)
	}
	return p, nil
}

// Set stores value under key. An existing key keeps its position.
func (p *Properties) Set(key, value string) {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it exists.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, exists := p.values[key]
	return value, exists
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// flattenMap adds the leaves of nested to flat under dot-notation paths.
// It fails when two leaves flatten to the same path.
func flattenMap(nested map[string]any, prefix string, flat map[string]any) error {
	for _, key := range sortedKeys(nested) {
		value := nested[key]
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			if err := flattenMap(nestedMap, newPath, flat); err != nil {
				return err
			}
			continue
		}

		if _, exists := flat[newPath]; exists {
			return fmt.Errorf("%w: key %q is defined more than once", ErrInvalidNested, newPath)
		}
		flat[newPath] = value
	}

	return nil
}

// scalarString converts a leaf value to its property text.
func scalarString(value any) (string, error) {
	var s string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return "", fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return "", err
	}
	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
