package binder

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/zhulik/eagerbind/pkg/core"
)

// Settings controls which part of the configuration is bound and under which names.
// The zero value binds every leaf of the whole tree under its own path.
type Settings struct {
	// Root is the dotted path of the subtree to bind, empty means the whole tree.
	Root string `env:"ROOT"`
	// Prefix is prepended to every binding name.
	Prefix string `env:"PREFIX"`
	// Log enables the binding log.
	Log bool `env:"LOG"`
	// TypeHints label arrays at specific (prefixed) paths, eg "cfg.db.seeds:string".
	// A string array holds scalars as text and anything else as its JSON text, null
	// included. A number array holds numbers and numeric strings, NaN for the rest.
	TypeHints core.TypeHints `env:"TYPE_HINTS"`
	// Objects additionally binds every intermediate object under its own path.
	Objects bool `env:"OBJECTS"`
}

// SettingsFromEnv reads settings from EAGERBIND_* environment variables.
func SettingsFromEnv() (*Settings, error) {
	var settings Settings

	err := env.ParseWithOptions(&settings, env.Options{
		Prefix: core.EnvPrefixBinder,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(core.TypeHintUnknown): func(v string) (any, error) {
				return core.ParseTypeHint(v)
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse binder settings: %w", err)
	}

	return &settings, nil
}

func normalizeSettings(settings *Settings) Settings {
	if settings == nil {
		return Settings{TypeHints: core.TypeHints{}}
	}

	normalized := *settings

	normalized.TypeHints = core.TypeHints{}
	maps.Copy(normalized.TypeHints, settings.TypeHints)

	return normalized
}
