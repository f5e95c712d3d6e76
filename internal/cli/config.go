package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/eagerbind/internal/cli/flags"
	"github.com/zhulik/eagerbind/pkg/binder"
	"github.com/zhulik/eagerbind/pkg/config"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/di"
	"github.com/zhulik/eagerbind/pkg/iter"
)

var errMalformedTypeHint = errors.New("type hint must be PATH=TYPE or PATH:TYPE")

func initDI(cmd *cli.Command) (*do.Injector, error) {
	cfg := config.Config{
		ConfigDir_:   cmd.String(flags.FlagNameConfigDir),
		Environment_: cmd.String(flags.FlagNameEnv),
		ConfigJSON_:  cmd.String(flags.FlagNameConfigJSON),
		LogLevel_:    cmd.String(flags.FlagNameLogLevel),
		HTTPPort_:    int(cmd.Int(flags.FlagNameServerPort)),
		NATSURL:      cmd.String(flags.FlagNameNATSURL),
		NATSBucket:   cmd.String(flags.FlagNameNATSBucket),
	}

	return di.New(cfg) //nolint:wrapcheck
}

// bind loads the configuration source, builds a binder from the command flags and loads
// it into the container. Both are provided to the injector afterwards.
func bind(cmd *cli.Command, injector *do.Injector) (*binder.Binder, *container.Container, error) {
	settings, err := settingsFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	source, err := do.Invoke[core.ConfigSource](injector)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	b, err := binder.New(source, settings, binder.WithLogger(logger))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	c := do.MustInvoke[*container.Container](injector)

	err = c.Load(b.Module())
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	do.ProvideValue(injector, b)

	return b, c, nil
}

// settingsFromFlags starts from the EAGERBIND_* environment, flags win over it.
// Type hints from both are merged.
func settingsFromFlags(cmd *cli.Command) (*binder.Settings, error) {
	settings, err := binder.SettingsFromEnv()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	type hint struct {
		path string
		hint core.TypeHint
	}

	hints, err := iter.MapErr(cmd.StringSlice(flags.FlagNameTypeHint), func(raw string) (hint, error) {
		path, kind, ok := cutTypeHint(raw)
		if !ok || path == "" {
			return hint{}, fmt.Errorf("%w: %q", errMalformedTypeHint, raw)
		}

		typeHint, err := core.ParseTypeHint(kind)
		if err != nil {
			return hint{}, err //nolint:wrapcheck
		}

		return hint{path: path, hint: typeHint}, nil
	})
	if err != nil {
		return nil, err
	}

	settings.Root = cmd.String(flags.FlagNameRoot)
	settings.Prefix = cmd.String(flags.FlagNamePrefix)
	settings.Objects = cmd.Bool(flags.FlagNameObjects)
	settings.Log = true

	if settings.TypeHints == nil {
		settings.TypeHints = core.TypeHints{}
	}

	for _, h := range hints {
		settings.TypeHints[h.path] = h.hint
	}

	return settings, nil
}

// cutTypeHint accepts both PATH=TYPE and the PATH:TYPE form used by EAGERBIND_TYPE_HINTS.
func cutTypeHint(raw string) (string, string, bool) {
	if path, kind, ok := strings.Cut(raw, "="); ok {
		return path, kind, true
	}

	return strings.Cut(raw, ":")
}
