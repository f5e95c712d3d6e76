package binder

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/zhulik/eagerbind/pkg/configsource"
	"github.com/zhulik/eagerbind/pkg/container"
)

// Default builds a binder with default settings over the configuration found through
// the process environment (CONFIG_DIR, APP_ENV, CONFIG_JSON).
func Default() (*Binder, error) {
	source, err := configsource.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return New(source, nil)
}

func DefaultModule() (*container.Module, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}

	return b.Module(), nil
}

func MustDefaultModule() *container.Module {
	return lo.Must(DefaultModule())
}
