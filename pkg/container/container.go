package container

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/utils"
)

// Container exposes the bind/unbind capabilities of a do.Injector to registrars and
// keeps track of what was bound through it.
type Container struct {
	injector *do.Injector
	logger   logrus.FieldLogger

	mu      sync.Mutex
	keys    []string
	values  map[string]any
	modules map[uuid.UUID][]string
}

func New(injector *do.Injector) *Container {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		logger = logrus.StandardLogger()
	}

	return &Container{
		injector: injector,
		logger:   logger.WithField("component", "container.Container"),
		values:   map[string]any{},
		modules:  map[uuid.UUID][]string{},
	}
}

func (c *Container) Injector() *do.Injector {
	return c.injector
}

func (c *Container) Bind(path string) core.Binding {
	return &binding{
		container: c,
		name:      path,
	}
}

// Unbind removes a binding. Unknown names are logged and ignored.
func (c *Container) Unbind(path string) {
	err := do.ShutdownNamed(c.injector, path)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("Failed to unbind")
	}

	c.forget(path)
}

// Load registers every module in order. Errors raised by the injector while binding,
// such as a name being provided twice, are returned and stop loading.
func (c *Container) Load(modules ...core.Registrar) error {
	for _, module := range modules {
		var bound []string

		bind := func(path string) core.Binding {
			return &binding{
				container: c,
				name:      path,
				onBound: func(name string) {
					bound = append(bound, name)
				},
			}
		}

		err := utils.Try0(func() error {
			module.Register(bind, c.Unbind)

			return nil
		})

		if m, ok := module.(*Module); ok {
			c.mu.Lock()
			c.modules[m.ID()] = append(c.modules[m.ID()], bound...)
			c.mu.Unlock()

			c.logger.WithField("module", m.String()).Infof("Module loaded, %d bindings", len(bound))
		}

		if err != nil {
			return fmt.Errorf("failed to load module: %w", err)
		}
	}

	return nil
}

// Unload removes every binding made by the given modules.
func (c *Container) Unload(modules ...*Module) error {
	for _, module := range modules {
		c.mu.Lock()
		bound, ok := c.modules[module.ID()]
		delete(c.modules, module.ID())
		c.mu.Unlock()

		if !ok {
			return fmt.Errorf("%w: %s", core.ErrModuleNotLoaded, module)
		}

		for _, name := range lo.Reverse(bound) {
			c.Unbind(name)
		}

		c.logger.WithField("module", module.String()).Info("Module unloaded")
	}

	return nil
}

// Keys returns bound names in binding order.
func (c *Container) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.keys)
}

// Lookup returns the value bound under path without going through the injector.
func (c *Container) Lookup(path string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.values[path]

	return value, ok
}

func (c *Container) remember(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		c.keys = append(c.keys, name)
	}

	c.values[name] = value
}

func (c *Container) forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return
	}

	delete(c.values, name)
	c.keys = lo.Without(c.keys, name)
}

// Get resolves the value bound under path. T must be the type the value was bound with.
func Get[T any](c *Container, path string) (T, error) {
	value, err := do.InvokeNamed[T](c.injector, path)
	if err != nil {
		return value, fmt.Errorf("%w: '%s': %w", core.ErrBindingNotFound, path, err)
	}

	return value, nil
}

func MustGet[T any](c *Container, path string) T {
	return lo.Must(Get[T](c, path))
}
