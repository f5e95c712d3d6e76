package nats

import (
	"context"
	"fmt"
	"slices"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/samber/lo"
	"github.com/zhulik/eagerbind/pkg/tree"
)

// Load reads every key of a KV bucket. Keys are dotted configuration paths, values are
// JSON or YAML documents, so "1234" is a number and "[a, b]" an array.
// Make sure to use it only for small buckets.
func Load(ctx context.Context, kv jetstream.KeyValue) (*tree.Source, error) {
	lister, err := kv.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	defer lister.Stop() //nolint:errcheck

	entries := map[string][]byte{}

	for key := range lister.Keys() {
		entry, err := kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get value of %s: %w", key, err)
		}

		entries[key] = entry.Value()
	}

	root, err := Build(entries)
	if err != nil {
		return nil, err
	}

	return tree.NewSource(root), nil
}

// Build assembles a configuration tree from dotted keys. Keys are applied in sorted
// order, so a deeper key replaces a scalar stored at its parent path.
func Build(entries map[string][]byte) (*tree.Object, error) {
	root := tree.NewObject()

	keys := lo.Keys(entries)
	slices.Sort(keys)

	for _, key := range keys {
		value, err := tree.ParseValue(entries[key])
		if err != nil {
			return nil, fmt.Errorf("failed to parse value of %s: %w", key, err)
		}

		root.SetPath(key, value)
	}

	return root, nil
}
