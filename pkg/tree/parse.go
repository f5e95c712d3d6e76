package tree

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

var ErrNotAnObject = errors.New("configuration document is not an object")

// Parse decodes a JSON or YAML document whose top level is a mapping, keeping key order.
// An empty document is an empty object.
func Parse(data []byte) (*Object, error) {
	value, err := ParseValue(data)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case nil:
		return NewObject(), nil
	case *Object:
		return v, nil
	}

	return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, value)
}

// ParseValue decodes any JSON or YAML value (scalar, sequence or mapping) and normalizes it.
func ParseValue(data []byte) (any, error) {
	var value any

	err := yaml.UnmarshalWithOptions(data, &value, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return Normalize(value), nil
}
