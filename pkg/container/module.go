package container

import (
	"github.com/google/uuid"
	"github.com/zhulik/eagerbind/pkg/core"
)

// Module is a named, identifiable unit of registrations that can be loaded into and
// unloaded from a Container.
type Module struct {
	id   uuid.UUID
	name string
	fn   core.ModuleFunc
}

func NewModule(name string, fn core.ModuleFunc) *Module {
	return &Module{
		id:   uuid.New(),
		name: name,
		fn:   fn,
	}
}

func (m *Module) ID() uuid.UUID {
	return m.id
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) String() string {
	return m.name + "(" + m.id.String() + ")"
}

func (m *Module) Register(bind core.BindFunc, unbind core.UnbindFunc) {
	m.fn(bind, unbind)
}
