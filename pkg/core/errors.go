package core

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors.
	ErrConfiguration = errors.New("configuration error")
	ErrMissingRoot   = fmt.Errorf("%w: missing root", ErrConfiguration)
	ErrPathNotFound  = errors.New("path not found")

	// Container errors.
	ErrBindingNotFound = errors.New("binding not found")
	ErrModuleNotLoaded = errors.New("module is not loaded")
)
