package core

import (
	"reflect"
	"sync"
)

// builder is the type-erased side of a Constructor, used to build nested
// records from generic values.
type builder interface {
	build(positional []any, keywords map[string]any) (reflect.Value, error)
}

var (
	registryMu sync.RWMutex
	builders   = map[reflect.Type]builder{}
)

// register records b as the constructor for t. The latest definition wins.
func register(t reflect.Type, b builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	builders[t] = b
}

func lookupBuilder(t reflect.Type) (builder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := builders[t]
	return b, ok
}
