package configsource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/zhulik/eagerbind/pkg/config"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/tree"
)

const (
	baseNameDefault = "default"
	baseNameLocal   = "local"

	customEnvironmentVariables = "custom-environment-variables"
)

var (
	ErrValidationFailed = errors.New("configuration source options validation failed")
	validate            = validator.New() //nolint:gochecknoglobals

	extensions = []string{".json", ".yaml", ".yml"} //nolint:gochecknoglobals
)

type Options struct {
	Dir         string `validate:"required"`
	Environment string `validate:"required"`
	// JSON is merged last, on top of files and environment variables.
	JSON string

	// LookupEnv resolves custom environment variables, os.LookupEnv when nil.
	LookupEnv func(key string) (string, bool) `validate:"-"`
}

func OptionsFromConfig(cfg core.Config) Options {
	return Options{
		Dir:         cfg.ConfigDir(),
		Environment: cfg.Environment(),
		JSON:        cfg.ConfigJSON(),
	}
}

// Load builds a configuration tree by merging, in order:
//
//	default.*, <environment>.*, local.*, local-<environment>.*
//	custom-environment-variables.* resolved against the environment
//	opts.JSON
//
// For every base name the .json, .yaml and .yml files are merged in that order. Missing
// files, and a missing directory, are skipped.
func Load(opts Options) (*tree.Source, error) {
	err := validate.Struct(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	root := tree.NewObject()

	baseNames := []string{
		baseNameDefault,
		opts.Environment,
		baseNameLocal,
		baseNameLocal + "-" + opts.Environment,
	}

	for _, baseName := range baseNames {
		err := mergeFiles(root, opts.Dir, baseName)
		if err != nil {
			return nil, err
		}
	}

	mapping := tree.NewObject()

	err = mergeFiles(mapping, opts.Dir, customEnvironmentVariables)
	if err != nil {
		return nil, err
	}

	overrides, err := resolveEnvironmentVariables(mapping, opts.LookupEnv)
	if err != nil {
		return nil, err
	}

	tree.Merge(root, overrides)

	if opts.JSON != "" {
		obj, err := tree.Parse([]byte(opts.JSON))
		if err != nil {
			return nil, fmt.Errorf("failed to parse configuration override: %w", err)
		}

		tree.Merge(root, obj)
	}

	return tree.NewSource(root), nil
}

// LoadFromEnv loads configuration using CONFIG_DIR, APP_ENV and CONFIG_JSON.
func LoadFromEnv() (*tree.Source, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return Load(OptionsFromConfig(cfg))
}

func mergeFiles(dst *tree.Object, dir, baseName string) error {
	for _, ext := range extensions {
		obj, err := ParseFile(filepath.Join(dir, baseName+ext))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return err
		}

		tree.Merge(dst, obj)
	}

	return nil
}
