package json

import (
	"errors"
	"fmt"

	libJSON "github.com/goccy/go-json"
)

var ErrCodec = errors.New("json codec error")

func Unmarshal[T any](data []byte) (T, error) {
	var result T

	err := libJSON.Unmarshal(data, &result)
	if err != nil {
		return result, fmt.Errorf("%w: failed to unmarshal: %w", ErrCodec, err)
	}

	return result, nil
}

func Marshal(data any) ([]byte, error) {
	bytes, err := libJSON.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal %T: %w", ErrCodec, data, err)
	}

	return bytes, nil
}

func MarshalIndent(data any) ([]byte, error) {
	bytes, err := libJSON.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal %T: %w", ErrCodec, data, err)
	}

	return bytes, nil
}

// Compact returns the single line JSON form of data.
func Compact(data any) (string, error) {
	bytes, err := Marshal(data)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}
