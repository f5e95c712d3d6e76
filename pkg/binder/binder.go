package binder

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/tree"
)

const moduleName = "eagerbind"

type Option func(b *Binder)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(b *Binder) {
		b.logger = logger.WithField("component", "binder.Binder")
	}
}

// Binder walks a configuration tree and registers every value it finds as a named
// constant through a container's bind capability.
type Binder struct {
	settings Settings
	root     any

	logger logrus.FieldLogger

	logMu sync.Mutex
	logs  []string
}

// New resolves the configured root in source. It fails with core.ErrMissingRoot when
// a non-empty root does not exist.
func New(source core.ConfigSource, settings *Settings, opts ...Option) (*Binder, error) {
	normalized := normalizeSettings(settings)

	root, err := resolveRoot(source, normalized.Root)
	if err != nil {
		return nil, err
	}

	b := &Binder{
		settings: normalized,
		root:     tree.Normalize(root),
		logger:   logrus.StandardLogger().WithField("component", "binder.Binder"),
		logs:     []string{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

func resolveRoot(source core.ConfigSource, root string) (any, error) {
	if root == "" {
		value, err := source.Get("")
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}

		return value, nil
	}

	if !source.Has(root) {
		return nil, fmt.Errorf("%w: could not find configuration root '%s'", core.ErrMissingRoot, root)
	}

	value, err := source.Get(root)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read configuration root '%s': %w", core.ErrMissingRoot, root, err)
	}

	return value, nil
}

func (b *Binder) Settings() Settings {
	return b.settings
}

// ProduceBindings performs one full traversal of the root, calling bind once per
// discovered value. Calling it again re-registers the same names.
func (b *Binder) ProduceBindings(bind core.BindFunc) {
	b.bindAllInObject(bind, b.root, b.settings.Prefix)
}

func (b *Binder) Register(bind core.BindFunc, _ core.UnbindFunc) {
	b.ProduceBindings(bind)
}

func (b *Binder) ModuleFunc() core.ModuleFunc {
	return b.Register
}

func (b *Binder) Module() *container.Module {
	return container.NewModule(moduleName, b.ModuleFunc())
}

// BindingLog returns the entries recorded so far, in binding order.
func (b *Binder) BindingLog() []string {
	b.logMu.Lock()
	defer b.logMu.Unlock()

	return slices.Clone(b.logs)
}

func (b *Binder) bindValue(bind core.BindFunc, value any, path string) {
	switch Classify(value) {
	case KindString:
		b.bind(bind, path, "string", value)
	case KindNumber:
		b.bind(bind, path, "number", value)
	case KindBoolean:
		b.bind(bind, path, "boolean", value)
	case KindArray:
		b.bindArray(bind, value.([]any), path) //nolint:forcetypeassert
	case KindObject:
		b.bindAllInObject(bind, value, path)
	case KindOther:
	}
}

func (b *Binder) bindArray(bind core.BindFunc, items []any, path string) {
	switch b.settings.TypeHints[path] {
	case core.TypeHintString:
		b.bind(bind, path, "string[]", toStrings(items))
	case core.TypeHintNumber:
		b.bind(bind, path, "number[]", toNumbers(items))
	case core.TypeHintUnknown:
		fallthrough
	default: // unrecognized hints label the array as any[]
		b.bind(bind, path, "any[]", toPlainArray(items))
	}
}

func (b *Binder) bindAllInObject(bind core.BindFunc, value any, path string) {
	obj, ok := value.(*tree.Object)
	if !ok {
		return
	}

	// An object is bound only under a non-empty name.
	if b.settings.Objects && path != "" {
		b.record(path, "Object", obj)
		bind(path).ToConstantValue(tree.Plain(obj))
	}

	if path != "" {
		path += core.PathSeparator
	}

	obj.Each(func(key string, child any) {
		b.bindValue(bind, child, path+key)
	})
}

func (b *Binder) bind(bind core.BindFunc, path, kind string, value any) {
	b.record(path, kind, value)
	bind(path).ToConstantValue(value)
}

func (b *Binder) record(path, kind string, value any) {
	b.logger.WithField("path", path).Debugf("Binding to %s", kind)

	if !b.settings.Log {
		return
	}

	b.logMu.Lock()
	defer b.logMu.Unlock()

	b.logs = append(b.logs, fmt.Sprintf("Binding '%s' to %s '%s'", path, kind, render(value)))
}
