package configsource

import (
	"fmt"

	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/tree"
)

const (
	keyName   = "__name"
	keyFormat = "__format"

	formatJSON = "json"
	formatYAML = "yaml"
)

// resolveEnvironmentVariables turns a custom-environment-variables mapping into a tree of
// overrides. A leaf is either the name of a variable, or an object with __name and an
// optional __format (json or yaml) telling how to decode the variable. Unset and empty
// variables are ignored.
func resolveEnvironmentVariables(mapping *tree.Object, lookupEnv func(string) (string, bool)) (*tree.Object, error) {
	overrides := tree.NewObject()

	err := walkMapping(mapping, "", func(path, name, format string) error {
		raw, ok := lookupEnv(name)
		if !ok || raw == "" {
			return nil
		}

		var value any = raw

		if format == formatJSON || format == formatYAML {
			parsed, err := tree.ParseValue([]byte(raw))
			if err != nil {
				return fmt.Errorf("failed to parse environment variable %s: %w", name, err)
			}

			value = parsed
		}

		overrides.SetPath(path, value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return overrides, nil
}

func walkMapping(obj *tree.Object, prefix string, fn func(path, name, format string) error) error {
	var err error

	obj.Each(func(key string, value any) {
		if err != nil {
			return
		}

		path := key
		if prefix != "" {
			path = prefix + core.PathSeparator + key
		}

		switch v := value.(type) {
		case string:
			err = fn(path, v, "")
		case *tree.Object:
			name, ok := v.Get(keyName)
			if !ok {
				err = walkMapping(v, path, fn)

				return
			}

			format, _ := v.Get(keyFormat)
			err = fn(path, fmt.Sprint(name), fmt.Sprint(format))
		}
	})

	return err
}
