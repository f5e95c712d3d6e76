package configsource

import (
	"context"
	"time"

	"github.com/samber/do"
	"github.com/zhulik/eagerbind/pkg/configsource/nats"
	"github.com/zhulik/eagerbind/pkg/core"
)

const natsLoadTimeout = 10 * time.Second

// Register provides core.ConfigSource: a NATS KV bucket when one is configured,
// configuration files otherwise.
func Register(injector *do.Injector) {
	do.Provide(injector, nats.NewClient)

	do.Provide(injector, func(injector *do.Injector) (core.ConfigSource, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if config.NatsBucket() == "" {
			return Load(OptionsFromConfig(config))
		}

		client, err := do.Invoke[*nats.Client](injector)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		ctx, cancel := context.WithTimeout(context.Background(), natsLoadTimeout)
		defer cancel()

		return client.LoadBucket(ctx, config.NatsBucket())
	})
}
