package tree

import (
	"bytes"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/zhulik/eagerbind/pkg/core"
)

// Object is a configuration mapping that remembers the order its keys were first set in.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{
		values: map[string]any{},
	}
}

// Set stores a normalized copy of value under key. Overwriting an existing key keeps
// its original position.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = Normalize(value)
}

// SetPath stores value at a dotted path, creating intermediate objects and replacing
// non-object intermediates on the way.
func (o *Object) SetPath(path string, value any) {
	segments := strings.Split(path, core.PathSeparator)
	current := o

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current.values[segment].(*Object)
		if !ok {
			next = NewObject()
			current.Set(segment, next)
		}

		current = next
	}

	current.Set(segments[len(segments)-1], value)
}

func (o *Object) Get(key string) (any, bool) {
	value, ok := o.values[key]

	return value, ok
}

// Lookup resolves a dotted path relative to o. An empty path resolves to o itself.
func (o *Object) Lookup(path string) (any, bool) {
	if path == "" {
		return o, true
	}

	var current any = o

	for _, segment := range strings.Split(path, core.PathSeparator) {
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}

		current, ok = obj.Get(segment)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Each(fn func(key string, value any)) {
	for _, key := range o.keys {
		fn(key, o.values[key])
	}
}

// Clone returns a deep copy of o. Arrays are copied, scalars are shared.
func (o *Object) Clone() *Object {
	clone := NewObject()

	o.Each(func(key string, value any) {
		clone.keys = append(clone.keys, key)
		clone.values[key] = cloneValue(value)
	})

	return clone
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		valueJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (o *Object) String() string {
	data, err := o.MarshalJSON()
	if err != nil {
		return "{}"
	}

	return string(data)
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case *Object:
		return v.Clone()
	case []any:
		clone := make([]any, len(v))
		for i, item := range v {
			clone[i] = cloneValue(item)
		}

		return clone
	}

	return value
}
