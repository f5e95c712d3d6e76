package tree

import (
	"fmt"

	"github.com/zhulik/eagerbind/pkg/core"
)

// Source is an in-memory core.ConfigSource.
type Source struct {
	root *Object
}

func NewSource(root *Object) *Source {
	if root == nil {
		root = NewObject()
	}

	return &Source{root: root}
}

func FromMap(m map[string]any) *Source {
	return NewSource(Normalize(m).(*Object)) //nolint:forcetypeassert
}

func (s *Source) Root() *Object {
	return s.root
}

func (s *Source) Has(path string) bool {
	_, ok := s.root.Lookup(path)

	return ok
}

func (s *Source) Get(path string) (any, error) {
	value, ok := s.root.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", core.ErrPathNotFound, path)
	}

	return value, nil
}
