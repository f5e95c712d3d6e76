package core

import (
	"github.com/samber/do"
)

type ServiceDependency interface {
	do.Healthcheckable
	do.Shutdownable
}

type Config interface {
	ConfigDir() string
	Environment() string
	ConfigJSON() string

	LogLevel() string

	HTTPPort() int // For the info server

	NatsURL() string
	NatsBucket() string // Empty means files are used as the configuration source
}

// ConfigSource is a read-only view over a configuration tree addressed by dotted paths.
// Get with an empty path returns the whole tree.
type ConfigSource interface {
	Has(path string) bool
	Get(path string) (any, error)
}

// Binding registers a constant value under the name it was created for.
type Binding interface {
	ToConstantValue(value any)
}

type BindFunc func(path string) Binding

type UnbindFunc func(path string)

// Registrar is something a container can load: it receives the container's bind and
// unbind capabilities and registers its values through them.
type Registrar interface {
	Register(bind BindFunc, unbind UnbindFunc)
}

type ModuleFunc func(bind BindFunc, unbind UnbindFunc)

func (f ModuleFunc) Register(bind BindFunc, unbind UnbindFunc) {
	f(bind, unbind)
}
