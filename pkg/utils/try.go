package utils

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrPanicked = errors.New("panic")

// Try runs fun and converts a panic into an error wrapping ErrPanicked. Panic values
// that are errors stay reachable through errors.Is/As.
func Try[T any](fun func() (T, error)) (res T, err error) { //nolint:nonamedreturns
	defer func() {
		if r := recover(); r != nil {
			res = lo.Empty[T]()

			if rErr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrPanicked, rErr)

				return
			}

			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	return fun()
}

func Try0(fun func() error) error {
	_, err := Try(func() (struct{}, error) {
		return struct{}{}, fun()
	})

	return err
}
