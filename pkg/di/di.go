package di

import (
	"github.com/samber/do"
	"github.com/zhulik/eagerbind/pkg/config"
	"github.com/zhulik/eagerbind/pkg/configsource"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/log"
)

// New builds an injector with config, logger and configuration source services.
// A nil cfg means the config is parsed from the environment.
func New(cfg core.Config) (*do.Injector, error) {
	if cfg == nil {
		parsed, err := config.Parse()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		cfg = parsed
	}

	logger, err := log.New(cfg.LogLevel())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.WithField("component", "di").Tracef(format, args...)
		},
	})

	do.ProvideValue(injector, cfg)
	log.Register(injector, logger)
	configsource.Register(injector)

	do.Provide(injector, func(injector *do.Injector) (*container.Container, error) {
		return container.New(injector), nil
	})

	return injector, nil
}
