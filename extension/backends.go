package extension

import (
	"sync"

	"github.com/codelab/tutor/model/types"
	"github.com/viant/x"
)

// DataTypeIniter is implemented by backends that register additional data
// types with the shared registry on registration.
type DataTypeIniter interface {
	InitTypes(types *Types)
}

// Backends is the registry of execution backend services keyed by name.
type Backends struct {
	types    *Types
	services map[string]types.Service
	mux      sync.RWMutex
}

func (b *Backends) Types() *Types {
	return b.types
}

// Lookup returns a backend service by name
func (b *Backends) Lookup(name string) types.Service {
	b.mux.RLock()
	defer b.mux.RUnlock()
	return b.services[name]
}

// Register registers a backend service
func (b *Backends) Register(service types.Service) {
	b.mux.Lock()
	defer b.mux.Unlock()

	if typer, ok := service.(DataTypeIniter); ok {
		typer.InitTypes(b.types)
	}
	b.services[service.Name()] = service
}

// NewBackends creates a backend registry seeded with the supplied Go types.
func NewBackends(goTypes ...*x.Type) *Backends {
	ret := &Backends{
		types:    NewTypes(),
		services: make(map[string]types.Service),
	}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
