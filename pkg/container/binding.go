package container

import (
	"github.com/samber/do"
)

type binding struct {
	container *Container
	name      string

	onBound func(name string)
}

// ToConstantValue registers value under the binding's name with its concrete type, so
// it can be resolved with Get[string], Get[float64], Get[[]string] and so on.
// A name that is already provided makes the injector panic.
func (b *binding) ToConstantValue(value any) {
	provide(b.container.injector, b.name, value)

	b.container.remember(b.name, value)

	if b.onBound != nil {
		b.onBound(b.name)
	}
}

func provide(injector *do.Injector, name string, value any) {
	switch v := value.(type) {
	case string:
		do.ProvideNamedValue(injector, name, v)
	case float64:
		do.ProvideNamedValue(injector, name, v)
	case bool:
		do.ProvideNamedValue(injector, name, v)
	case []string:
		do.ProvideNamedValue(injector, name, v)
	case []float64:
		do.ProvideNamedValue(injector, name, v)
	case []any:
		do.ProvideNamedValue(injector, name, v)
	case map[string]any:
		do.ProvideNamedValue(injector, name, v)
	default:
		do.ProvideNamedValue[any](injector, name, v)
	}
}
