package iter

import (
	"fmt"
)

// MapErr stops at the first failing item, the error carries its index.
func MapErr[F any, T any](items []F, fun func(F) (T, error)) ([]T, error) {
	result := make([]T, 0, len(items))

	for i, item := range items {
		mapped, err := fun(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		result = append(result, mapped)
	}

	return result, nil
}
