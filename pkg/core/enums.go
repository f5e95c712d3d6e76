package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTypeHint = errors.New("unknown type hint")

// TypeHint labels the element type of an array bound at a specific path.
type TypeHint int

const (
	TypeHintUnknown TypeHint = iota
	TypeHintString
	TypeHintNumber
)

type TypeHints map[string]TypeHint

func ParseTypeHint(s string) (TypeHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return TypeHintString, nil
	case "number":
		return TypeHintNumber, nil
	}

	return TypeHintUnknown, fmt.Errorf("%w: %q, allowed values are string, number", ErrUnknownTypeHint, s)
}

func (h TypeHint) String() string {
	switch h {
	case TypeHintString:
		return "string"
	case TypeHintNumber:
		return "number"
	case TypeHintUnknown:
	}

	return "unknown"
}

func (h *TypeHint) UnmarshalText(text []byte) error {
	hint, err := ParseTypeHint(string(text))
	if err != nil {
		return err
	}

	*h = hint

	return nil
}

func (h TypeHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
